package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

type AvailabilityResult struct {
	Sufficient bool
	Shortfalls []domain.Shortfall
}

// AvailabilityChecker compares requirements against current stock without
// locking or writing. A sufficient result is advisory: stock can change
// before the caller deducts, and only DeductionEngine.Deduct is authoritative.
type AvailabilityChecker struct {
	materials port.MaterialReader
}

func NewAvailabilityChecker(materials port.MaterialReader) *AvailabilityChecker {
	return &AvailabilityChecker{materials: materials}
}

// Check expects requirements already aggregated by material. A material
// that does not exist counts as a shortfall with zero available.
func (c *AvailabilityChecker) Check(ctx context.Context, reqs []domain.RequirementLine) (AvailabilityResult, error) {
	res := AvailabilityResult{Sufficient: true}

	for _, req := range reqs {
		m, err := c.materials.GetMaterial(ctx, req.MaterialID)
		if err != nil {
			return AvailabilityResult{}, fmt.Errorf("read material %d: %w", req.MaterialID, err)
		}

		available := decimal.Zero
		name := ""
		if m != nil {
			available = m.Quantity
			name = m.Name
		}

		if available.LessThan(req.Quantity) {
			res.Sufficient = false
			res.Shortfalls = append(res.Shortfalls, domain.Shortfall{
				MaterialID: req.MaterialID,
				Name:       name,
				Needed:     req.Quantity,
				Available:  available,
			})
		}
	}

	return res, nil
}
