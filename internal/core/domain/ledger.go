package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReasonAddons          = "Auto Deduction(Addons)"
	ReasonMainIngredients = "Auto Deduction(Main Ingredients)"
	ReasonOrder           = "Auto Deduction(Order)"
)

// LedgerEntry is an append-only record of one stock change. Deductions carry
// a negative delta and no expiration date.
type LedgerEntry struct {
	ID             int64
	MaterialID     int64
	QuantityDelta  decimal.Decimal
	Unit           string
	Reason         string
	UserID         int64
	ExpirationDate *time.Time
	CreatedAt      time.Time
}
