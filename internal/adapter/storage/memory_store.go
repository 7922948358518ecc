package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

// MemoryStore keeps everything in process. Transactions hold the write lock
// for their whole duration, so they are serialised, and undo their changes
// when the callback fails or panics.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]struct{}
	materials map[int64]domain.RawMaterial
	byName    map[string]int64
	recipes   map[int64]domain.RecipeLine
	ledger    []domain.LedgerEntry
	orders    map[string]domain.Order
	entries   map[int64]domain.StockEntry

	lastMaterialID int64
	lastRecipeID   int64
	lastLedgerID   int64
	lastEntryID    int64
}

var _ port.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[int64]struct{}),
		materials: make(map[int64]domain.RawMaterial),
		byName:    make(map[string]int64),
		recipes:   make(map[int64]domain.RecipeLine),
		orders:    make(map[string]domain.Order),
		entries:   make(map[int64]domain.StockEntry),
	}
}

func (s *MemoryStore) AddUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = struct{}{}
}

// AddMaterial registers a material and returns its id. Names are unique.
func (s *MemoryStore) AddMaterial(name, unit string, quantity decimal.Decimal) (int64, error) {
	if quantity.IsNegative() || !domain.WithinScale(quantity) {
		return 0, fmt.Errorf("material %q quantity %s: %w", name, quantity, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return 0, fmt.Errorf("material %q already exists: %w", name, domain.ErrInvalidInput)
	}
	s.lastMaterialID++
	id := s.lastMaterialID
	s.materials[id] = domain.RawMaterial{
		ID:        id,
		Name:      name,
		Unit:      unit,
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}
	s.byName[name] = id
	return id, nil
}

// AddRecipeLine links an item to a material and returns the menu-ingredient id.
func (s *MemoryStore) AddRecipeLine(itemID, materialID int64, perUnit decimal.Decimal) (int64, error) {
	if !domain.ValidQuantity(perUnit) {
		return 0, fmt.Errorf("recipe line quantity %s: %w", perUnit, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[materialID]; !ok {
		return 0, fmt.Errorf("material %d: %w", materialID, domain.ErrMaterialNotFound)
	}
	s.lastRecipeID++
	id := s.lastRecipeID
	s.recipes[id] = domain.RecipeLine{
		ID:              id,
		ItemID:          itemID,
		MaterialID:      materialID,
		QuantityPerUnit: perUnit,
	}
	return id, nil
}

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: begin tx: %w", domain.ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{store: s}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
	}()
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *MemoryStore) UserExists(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *MemoryStore) GetMaterial(_ context.Context, id int64) (*domain.RawMaterial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *MemoryStore) MaterialByName(_ context.Context, name string) (*domain.RawMaterial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return nil, nil
	}
	m := s.materials[id]
	return &m, nil
}

func (s *MemoryStore) ListMaterials(_ context.Context) ([]domain.RawMaterial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RawMaterial, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) LedgerEntries(_ context.Context, materialID int64) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.LedgerEntry
	for i := len(s.ledger) - 1; i >= 0; i-- {
		if s.ledger[i].MaterialID == materialID {
			out = append(out, s.ledger[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) StockEntries(_ context.Context) ([]domain.StockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StockEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.After(out[j].AddedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) RecipeLinesFor(_ context.Context, itemID int64) ([]domain.RecipeLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.RecipeLine
	for _, l := range s.recipes {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) RecipeLine(_ context.Context, id int64) (*domain.RecipeLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	o = cloneOrder(o)
	return &o, nil
}

func (s *MemoryStore) ListOrders(_ context.Context, userID int64) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if userID == 0 || o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}

// memoryTx runs with the store's write lock held.
type memoryTx struct {
	store *MemoryStore
	undo  []func()
}

func (t *memoryTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memoryTx) DebitMaterial(_ context.Context, materialID int64, qty decimal.Decimal) (port.Debit, error) {
	s := t.store
	m, ok := s.materials[materialID]
	if !ok {
		return port.Debit{}, nil
	}
	if m.Quantity.LessThan(qty) {
		return port.Debit{Material: &m}, nil
	}

	prev := m
	m.Quantity = m.Quantity.Sub(qty)
	m.UpdatedAt = time.Now().UTC()
	s.materials[materialID] = m
	t.undo = append(t.undo, func() { s.materials[materialID] = prev })

	return port.Debit{Applied: true, Material: &m}, nil
}

func (t *memoryTx) AppendLedger(_ context.Context, entry *domain.LedgerEntry) error {
	s := t.store
	s.lastLedgerID++
	entry.ID = s.lastLedgerID
	s.ledger = append(s.ledger, *entry)

	n := len(s.ledger) - 1
	t.undo = append(t.undo, func() {
		s.ledger = s.ledger[:n]
		s.lastLedgerID--
	})
	return nil
}

func (t *memoryTx) CreateOrder(_ context.Context, order domain.Order) error {
	s := t.store
	if _, ok := s.orders[order.ID]; ok {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	s.orders[order.ID] = cloneOrder(order)
	t.undo = append(t.undo, func() { delete(s.orders, order.ID) })
	return nil
}

func (t *memoryTx) AddStockEntry(_ context.Context, entry *domain.StockEntry) error {
	s := t.store
	if _, ok := s.materials[entry.MaterialID]; !ok {
		return fmt.Errorf("material %d: %w", entry.MaterialID, domain.ErrMaterialNotFound)
	}
	s.lastEntryID++
	entry.ID = s.lastEntryID
	s.entries[entry.ID] = *entry

	id := entry.ID
	t.undo = append(t.undo, func() {
		delete(s.entries, id)
		s.lastEntryID--
	})
	return nil
}

func (t *memoryTx) UpdateStockEntry(_ context.Context, id int64, qty decimal.Decimal, expiration *time.Time) (bool, error) {
	s := t.store
	e, ok := s.entries[id]
	if !ok {
		return false, nil
	}
	prev := e
	e.Quantity = qty
	e.ExpirationDate = expiration
	s.entries[id] = e
	t.undo = append(t.undo, func() { s.entries[id] = prev })
	return true, nil
}

// mutateOrder applies fn to a stored order and records the undo step.
func (t *memoryTx) mutateOrder(orderID string, fn func(o *domain.Order) bool) bool {
	s := t.store
	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	prev := cloneOrder(o)
	if !fn(&o) {
		return false
	}
	o.UpdatedAt = time.Now().UTC()
	s.orders[orderID] = o
	t.undo = append(t.undo, func() { s.orders[orderID] = prev })
	return true
}

func (t *memoryTx) UpdateOrderStatus(_ context.Context, orderID string, from, to domain.OrderStatus) (bool, error) {
	return t.mutateOrder(orderID, func(o *domain.Order) bool {
		if o.Status != from {
			return false
		}
		o.Status = to
		return true
	}), nil
}

func (t *memoryTx) MarkStockDeducted(_ context.Context, orderID string) (bool, error) {
	return t.mutateOrder(orderID, func(o *domain.Order) bool {
		if o.StockDeducted {
			return false
		}
		o.StockDeducted = true
		return true
	}), nil
}

func (t *memoryTx) SetOrderAvailability(_ context.Context, orderID string, availability domain.Availability) error {
	t.mutateOrder(orderID, func(o *domain.Order) bool {
		o.Availability = availability
		return true
	})
	return nil
}

func (t *memoryTx) UpdatePayment(_ context.Context, orderID, method string, from, to domain.PaymentStatus) (bool, error) {
	return t.mutateOrder(orderID, func(o *domain.Order) bool {
		if o.PaymentStatus != from {
			return false
		}
		o.PaymentMethod = method
		o.PaymentStatus = to
		return true
	}), nil
}
