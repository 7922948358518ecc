package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
)

// Debit is the outcome of a guarded debit. Material is nil when the row
// does not exist; otherwise it holds the quantity after the statement ran.
type Debit struct {
	Applied  bool
	Material *domain.RawMaterial
}

// Tx is a single request's unit of work. All stock and order mutations go
// through it so they commit or roll back together.
type Tx interface {
	// DebitMaterial decrements quantity only if quantity >= qty at write time
	DebitMaterial(ctx context.Context, materialID int64, qty decimal.Decimal) (Debit, error)

	// AppendLedger inserts an audit entry and assigns its ID
	AppendLedger(ctx context.Context, entry *domain.LedgerEntry) error

	CreateOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderStatus moves an order from one status to another, returns false if it was not in from
	UpdateOrderStatus(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error)

	// MarkStockDeducted flags the order as debited, returns false if it already was
	MarkStockDeducted(ctx context.Context, orderID string) (bool, error)

	SetOrderAvailability(ctx context.Context, orderID string, availability domain.Availability) error

	// UpdatePayment sets method and status, returns false if the order was not in from
	UpdatePayment(ctx context.Context, orderID, method string, from, to domain.PaymentStatus) (bool, error)

	// AddStockEntry inserts an entry and assigns its ID
	AddStockEntry(ctx context.Context, entry *domain.StockEntry) error

	// UpdateStockEntry rewrites quantity and expiration, returns false if the entry does not exist
	UpdateStockEntry(ctx context.Context, id int64, qty decimal.Decimal, expiration *time.Time) (bool, error)
}

type UnitOfWork interface {
	// WithinTx runs fn in one transaction: commit when fn returns nil, roll back otherwise
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Catalog interface {
	RecipeLinesFor(ctx context.Context, itemID int64) ([]domain.RecipeLine, error)

	// RecipeLine returns nil when the menu ingredient does not exist
	RecipeLine(ctx context.Context, id int64) (*domain.RecipeLine, error)

	// MaterialByName is a case-sensitive exact match, nil when absent
	MaterialByName(ctx context.Context, name string) (*domain.RawMaterial, error)
}

type MaterialReader interface {
	// GetMaterial returns nil when the material does not exist
	GetMaterial(ctx context.Context, id int64) (*domain.RawMaterial, error)
	ListMaterials(ctx context.Context) ([]domain.RawMaterial, error)

	// LedgerEntries lists a material's entries, newest first
	LedgerEntries(ctx context.Context, materialID int64) ([]domain.LedgerEntry, error)

	// StockEntries lists every material's stock entries, newest first
	StockEntries(ctx context.Context) ([]domain.StockEntry, error)
}

type OrderReader interface {
	// GetOrder returns nil when the order does not exist
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// ListOrders lists newest first; userID 0 lists every user's orders
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

type UserDirectory interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// Store is everything the services need from persistence.
type Store interface {
	UnitOfWork
	Catalog
	MaterialReader
	OrderReader
	UserDirectory
}
