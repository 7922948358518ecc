package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

// RecipeResolver expands sellable items into the raw materials they consume.
type RecipeResolver struct {
	catalog port.Catalog
}

func NewRecipeResolver(catalog port.Catalog) *RecipeResolver {
	return &RecipeResolver{catalog: catalog}
}

// Resolve returns one requirement per recipe line of the item. Items without
// recipe lines consume no tracked stock and resolve to an empty slice.
func (r *RecipeResolver) Resolve(ctx context.Context, itemID int64, quantity int) ([]domain.RequirementLine, error) {
	if itemID <= 0 || quantity <= 0 {
		return nil, fmt.Errorf("item %d quantity %d: %w", itemID, quantity, domain.ErrInvalidInput)
	}

	lines, err := r.catalog.RecipeLinesFor(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("recipe lines for item %d: %w", itemID, err)
	}

	qty := decimal.NewFromInt(int64(quantity))
	reqs := make([]domain.RequirementLine, 0, len(lines))
	for _, l := range lines {
		if !domain.WithinScale(l.QuantityPerUnit) {
			return nil, fmt.Errorf("recipe line %d quantity %s: %w", l.ID, l.QuantityPerUnit, domain.ErrInvalidInput)
		}
		reqs = append(reqs, domain.RequirementLine{
			MaterialID: l.MaterialID,
			Quantity:   l.QuantityPerUnit.Mul(qty),
		})
	}
	return reqs, nil
}

// ResolveOrder resolves every item and aggregates by material, so a
// material shared by several items is checked and debited once.
func (r *RecipeResolver) ResolveOrder(ctx context.Context, items []domain.OrderItem) ([]domain.RequirementLine, error) {
	var all []domain.RequirementLine
	for _, it := range items {
		reqs, err := r.Resolve(ctx, it.ItemID, it.Quantity)
		if err != nil {
			return nil, err
		}
		all = append(all, reqs...)
	}
	return domain.Aggregate(all), nil
}

// ResolveAddon maps a named add-on straight to a raw material.
func (r *RecipeResolver) ResolveAddon(ctx context.Context, name string, amount decimal.Decimal) (domain.RequirementLine, *domain.RawMaterial, error) {
	m, err := r.catalog.MaterialByName(ctx, name)
	if err != nil {
		return domain.RequirementLine{}, nil, fmt.Errorf("material %q: %w", name, err)
	}
	if m == nil {
		return domain.RequirementLine{}, nil, domain.ErrMaterialNotFound
	}
	return domain.RequirementLine{MaterialID: m.ID, Quantity: amount}, m, nil
}

// ResolveIngredient maps a menu-ingredient id to the material behind it.
func (r *RecipeResolver) ResolveIngredient(ctx context.Context, menuIngredientID int64, amount decimal.Decimal) (domain.RequirementLine, error) {
	l, err := r.catalog.RecipeLine(ctx, menuIngredientID)
	if err != nil {
		return domain.RequirementLine{}, fmt.Errorf("menu ingredient %d: %w", menuIngredientID, err)
	}
	if l == nil {
		return domain.RequirementLine{}, domain.ErrMaterialNotFound
	}
	return domain.RequirementLine{MaterialID: l.MaterialID, Quantity: amount}, nil
}
