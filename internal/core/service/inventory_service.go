package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

type IngredientAmount struct {
	MenuIngredientID int64
	Amount           decimal.Decimal
}

// InventoryService runs the batch deduction flows and serves stock reads.
type InventoryService struct {
	resolver  *RecipeResolver
	engine    *DeductionEngine
	materials port.MaterialReader
	log       *zap.Logger
}

func NewInventoryService(resolver *RecipeResolver, engine *DeductionEngine, materials port.MaterialReader, log *zap.Logger) *InventoryService {
	return &InventoryService{
		resolver:  resolver,
		engine:    engine,
		materials: materials,
		log:       log,
	}
}

// batchLine is one caller line resolved to a material.
type batchLine struct {
	index int
	name  string
	req   domain.RequirementLine
}

// DeductForAddons deducts named add-ons. Every pair is evaluated even after
// a failure; if any pair fails the whole batch rolls back and the returned
// *domain.BatchError lists each failing pair. It returns the number of
// pairs applied.
func (s *InventoryService) DeductForAddons(ctx context.Context, names []string, amounts []decimal.Decimal, userID int64, reason string) (int, error) {
	if len(names) == 0 || len(names) != len(amounts) {
		return 0, fmt.Errorf("names and amounts must be non-empty and the same length: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		reason = domain.ReasonAddons
	}
	if err := s.engine.checkUser(ctx, userID); err != nil {
		return 0, err
	}

	var (
		lines    []batchLine
		failures []domain.LineError
	)
	for i := range names {
		name := strings.TrimSpace(names[i])
		if name == "" || !domain.ValidQuantity(amounts[i]) {
			failures = append(failures, domain.LineError{Index: i, Name: name, Err: domain.ErrInvalidInput})
			continue
		}

		req, _, err := s.resolver.ResolveAddon(ctx, name, amounts[i])
		if err != nil {
			if !errors.Is(err, domain.ErrMaterialNotFound) {
				return 0, fmt.Errorf("%w: %w", domain.ErrStorage, err)
			}
			failures = append(failures, domain.LineError{Index: i, Name: name, Err: domain.ErrMaterialNotFound})
			continue
		}
		lines = append(lines, batchLine{index: i, name: name, req: req})
	}

	if err := s.runBatch(ctx, lines, failures, reason, userID); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// DeductForIngredients deducts menu ingredients by id with the same
// all-or-nothing semantics as DeductForAddons.
func (s *InventoryService) DeductForIngredients(ctx context.Context, items []IngredientAmount, userID int64, reason string) error {
	if len(items) == 0 {
		return fmt.Errorf("no ingredients to deduct: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		reason = domain.ReasonMainIngredients
	}
	if err := s.engine.checkUser(ctx, userID); err != nil {
		return err
	}

	var (
		lines    []batchLine
		failures []domain.LineError
	)
	for i, it := range items {
		name := fmt.Sprintf("ingredient %d", it.MenuIngredientID)
		if it.MenuIngredientID <= 0 || !domain.ValidQuantity(it.Amount) {
			failures = append(failures, domain.LineError{Index: i, Name: name, Err: domain.ErrInvalidInput})
			continue
		}

		req, err := s.resolver.ResolveIngredient(ctx, it.MenuIngredientID, it.Amount)
		if err != nil {
			if !errors.Is(err, domain.ErrMaterialNotFound) {
				return fmt.Errorf("%w: %w", domain.ErrStorage, err)
			}
			failures = append(failures, domain.LineError{Index: i, Name: name, Err: domain.ErrMaterialNotFound})
			continue
		}
		lines = append(lines, batchLine{index: i, name: name, req: req})
	}

	return s.runBatch(ctx, lines, failures, reason, userID)
}

// runBatch debits the resolved lines in one transaction and rolls back when
// resolution or the debits produced any failure.
func (s *InventoryService) runBatch(ctx context.Context, lines []batchLine, failures []domain.LineError, reason string, userID int64) error {
	reqs := make([]domain.RequirementLine, len(lines))
	for i, l := range lines {
		reqs[i] = l.req
	}

	err := s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		out, err := s.engine.apply(ctx, tx, reqs, reason, userID)
		if err != nil {
			return err
		}

		all := append([]domain.LineError(nil), failures...)
		all = append(all, lineFailures(lines, out)...)
		if len(all) == 0 {
			return nil
		}
		sort.SliceStable(all, func(i, j int) bool { return all[i].Index < all[j].Index })
		return &domain.BatchError{Lines: all}
	})
	if err != nil {
		s.log.Warn("batch deduction rolled back",
			zap.Int64("user_id", userID),
			zap.String("reason", reason),
			zap.Int("lines", len(lines)+len(failures)),
			zap.Error(err),
		)
		return err
	}

	s.log.Info("batch deducted",
		zap.Int64("user_id", userID),
		zap.String("reason", reason),
		zap.Int("lines", len(lines)),
	)
	return nil
}

// lineFailures maps per-material failures back onto every caller line that
// referenced the material.
func lineFailures(lines []batchLine, out applyOutcome) []domain.LineError {
	if !out.failed() {
		return nil
	}

	failed := make(map[int64]error)
	for _, id := range out.missing {
		failed[id] = domain.ErrMaterialNotFound
	}
	for _, sf := range out.shortfalls {
		failed[sf.MaterialID] = domain.ErrInsufficientStock
	}

	var errs []domain.LineError
	for _, l := range lines {
		if err, ok := failed[l.req.MaterialID]; ok {
			errs = append(errs, domain.LineError{Index: l.index, Name: l.name, Err: err})
		}
	}
	return errs
}

// ListMaterials returns every material with its stock entries, newest
// entry first.
func (s *InventoryService) ListMaterials(ctx context.Context) ([]domain.MaterialWithEntries, error) {
	ms, err := s.materials.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list materials: %w", domain.ErrStorage, err)
	}
	entries, err := s.materials.StockEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list stock entries: %w", domain.ErrStorage, err)
	}

	byMaterial := make(map[int64][]domain.StockEntry)
	for _, e := range entries {
		byMaterial[e.MaterialID] = append(byMaterial[e.MaterialID], e)
	}

	out := make([]domain.MaterialWithEntries, len(ms))
	for i, m := range ms {
		out[i] = domain.MaterialWithEntries{RawMaterial: m, Entries: byMaterial[m.ID]}
	}
	return out, nil
}

// AddStockEntry records a received batch for a material. The material's
// quantity is left as is.
func (s *InventoryService) AddStockEntry(ctx context.Context, materialID int64, qty decimal.Decimal, expiration *time.Time) (*domain.StockEntry, error) {
	if materialID <= 0 || !domain.ValidQuantity(qty) {
		return nil, fmt.Errorf("material id and positive quantity required: %w", domain.ErrInvalidInput)
	}

	m, err := s.materials.GetMaterial(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("%w: get material %d: %w", domain.ErrStorage, materialID, err)
	}
	if m == nil {
		return nil, domain.ErrMaterialNotFound
	}

	entry := &domain.StockEntry{
		MaterialID:     materialID,
		Quantity:       qty,
		ExpirationDate: expiration,
		AddedAt:        s.engine.now().UTC(),
	}
	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		return tx.AddStockEntry(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: add stock entry: %w", domain.ErrStorage, err)
	}

	s.log.Info("stock entry added",
		zap.Int64("entry_id", entry.ID),
		zap.Int64("material_id", materialID),
		zap.String("quantity", qty.String()),
	)
	return entry, nil
}

// UpdateStockEntry rewrites an entry's quantity and expiration date.
func (s *InventoryService) UpdateStockEntry(ctx context.Context, id int64, qty decimal.Decimal, expiration *time.Time) error {
	if id <= 0 || !domain.ValidQuantity(qty) {
		return fmt.Errorf("entry id and positive quantity required: %w", domain.ErrInvalidInput)
	}

	var found bool
	err := s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		var err error
		found, err = tx.UpdateStockEntry(ctx, id, qty, expiration)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: update stock entry %d: %w", domain.ErrStorage, id, err)
	}
	if !found {
		return domain.ErrEntryNotFound
	}

	s.log.Info("stock entry updated", zap.Int64("entry_id", id), zap.String("quantity", qty.String()))
	return nil
}

// Ledger returns a material's audit entries, newest first.
func (s *InventoryService) Ledger(ctx context.Context, materialID int64) ([]domain.LedgerEntry, error) {
	m, err := s.materials.GetMaterial(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("%w: get material %d: %w", domain.ErrStorage, materialID, err)
	}
	if m == nil {
		return nil, domain.ErrMaterialNotFound
	}

	entries, err := s.materials.LedgerEntries(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("%w: ledger for material %d: %w", domain.ErrStorage, materialID, err)
	}
	return entries, nil
}
