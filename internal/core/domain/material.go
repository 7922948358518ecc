package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// QuantityScale is the number of fractional digits a stored quantity keeps.
const QuantityScale = 3

// WithinScale reports whether q is stored without rounding.
func WithinScale(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(QuantityScale))
}

// ValidQuantity reports whether q can be debited as given: positive and
// within QuantityScale.
func ValidQuantity(q decimal.Decimal) bool {
	return q.IsPositive() && WithinScale(q)
}

type RawMaterial struct {
	ID        int64
	Name      string
	Unit      string
	Quantity  decimal.Decimal // never negative
	UpdatedAt time.Time
}

// RecipeLine links a sellable item to one raw material it consumes.
// ID is the menu-ingredient id used by the ingredient deduction path.
type RecipeLine struct {
	ID              int64
	ItemID          int64
	MaterialID      int64
	QuantityPerUnit decimal.Decimal
}

// RequirementLine is the amount of a material one check or deduction needs.
type RequirementLine struct {
	MaterialID int64
	Quantity   decimal.Decimal
}

type Shortfall struct {
	MaterialID int64
	Name       string
	Needed     decimal.Decimal
	Available  decimal.Decimal
}

// Aggregate sums lines that reference the same material. The result is
// ordered by material id so every writer touches rows in the same order.
func Aggregate(lines []RequirementLine) []RequirementLine {
	totals := make(map[int64]decimal.Decimal, len(lines))
	for _, l := range lines {
		if cur, ok := totals[l.MaterialID]; ok {
			totals[l.MaterialID] = cur.Add(l.Quantity)
			continue
		}
		totals[l.MaterialID] = l.Quantity
	}

	out := make([]RequirementLine, 0, len(totals))
	for id, qty := range totals {
		out = append(out, RequirementLine{MaterialID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialID < out[j].MaterialID })
	return out
}
