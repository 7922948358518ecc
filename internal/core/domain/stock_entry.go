package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry records one received batch of a material and when it expires.
// Entries describe stock; they never change RawMaterial.Quantity.
type StockEntry struct {
	ID             int64
	MaterialID     int64
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	AddedAt        time.Time
}

// MaterialWithEntries is a material and its stock entries, newest first.
type MaterialWithEntries struct {
	RawMaterial
	Entries []StockEntry
}
