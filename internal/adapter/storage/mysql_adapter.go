package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

//go:embed schema.sql
var schemaSQL string

const (
	debitMaterialSQL = `UPDATE raw_materials
		SET quantity = quantity - CAST(? AS DECIMAL(14,3)), updated_at = NOW()
		WHERE id = ? AND quantity >= CAST(? AS DECIMAL(14,3))`

	selectMaterialSQL = `SELECT id, name, unit, quantity, updated_at FROM raw_materials WHERE id = ?`

	selectMaterialByNameSQL = `SELECT id, name, unit, quantity, updated_at FROM raw_materials WHERE name = ?`

	listMaterialsSQL = `SELECT id, name, unit, quantity, updated_at FROM raw_materials ORDER BY id`

	insertLedgerSQL = `INSERT INTO inventory_log
		(material_id, quantity, unit, expiration_date, reason, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	listLedgerSQL = `SELECT id, material_id, quantity, unit, expiration_date, reason, user_id, created_at
		FROM inventory_log WHERE material_id = ? ORDER BY created_at DESC, id DESC`

	listStockEntriesSQL = `SELECT id, material_id, quantity, expiration_date, added_at
		FROM raw_material_stock_entries ORDER BY added_at DESC, id DESC`

	insertStockEntrySQL = `INSERT INTO raw_material_stock_entries
		(material_id, quantity, expiration_date, added_at) VALUES (?, ?, ?, ?)`

	updateStockEntrySQL = `UPDATE raw_material_stock_entries SET quantity = ?, expiration_date = ? WHERE id = ?`

	stockEntryExistsSQL = `SELECT 1 FROM raw_material_stock_entries WHERE id = ?`

	recipeLinesSQL = `SELECT id, menu_id, material_id, quantity FROM menu_ingredients WHERE menu_id = ? ORDER BY id`

	recipeLineSQL = `SELECT id, menu_id, material_id, quantity FROM menu_ingredients WHERE id = ?`

	userExistsSQL = `SELECT 1 FROM users WHERE id = ?`

	insertOrderSQL = `INSERT INTO customer_orders
		(id, user_id, order_items, total_amount, status, availability, payment_method, payment_status, stock_deducted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	orderColumns = `id, user_id, order_items, total_amount, status, availability,
		payment_method, payment_status, stock_deducted, created_at, updated_at`

	selectOrderSQL = `SELECT ` + orderColumns + ` FROM customer_orders WHERE id = ?`

	listOrdersSQL = `SELECT ` + orderColumns + ` FROM customer_orders ORDER BY created_at DESC, id DESC`

	listUserOrdersSQL = `SELECT ` + orderColumns + ` FROM customer_orders WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	updateOrderStatusSQL = `UPDATE customer_orders SET status = ?, updated_at = NOW(6) WHERE id = ? AND status = ?`

	markStockDeductedSQL = `UPDATE customer_orders SET stock_deducted = TRUE, updated_at = NOW(6) WHERE id = ? AND stock_deducted = FALSE`

	setAvailabilitySQL = `UPDATE customer_orders SET availability = ? WHERE id = ?`

	updatePaymentSQL = `UPDATE customer_orders SET payment_method = ?, payment_status = ?, updated_at = NOW(6)
		WHERE id = ? AND payment_status = ?`
)

type MySQLAdapter struct {
	db *sql.DB
}

var _ port.Store = (*MySQLAdapter)(nil)

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// Migrate creates the tables if they do not exist.
func (m *MySQLAdapter) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// WithinTx runs fn in a READ COMMITTED transaction. Stock safety comes from
// the guarded debit statement, not the isolation level; READ COMMITTED lets
// a failed debit report the latest committed quantity.
func (m *MySQLAdapter) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", domain.ErrStorage, err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &mysqlTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrStorage, err)
	}
	return nil
}

func (m *MySQLAdapter) UserExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := m.db.QueryRowContext(ctx, userExistsSQL, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return true, nil
}

func (m *MySQLAdapter) GetMaterial(ctx context.Context, id int64) (*domain.RawMaterial, error) {
	return scanMaterial(m.db.QueryRowContext(ctx, selectMaterialSQL, id))
}

func (m *MySQLAdapter) MaterialByName(ctx context.Context, name string) (*domain.RawMaterial, error) {
	return scanMaterial(m.db.QueryRowContext(ctx, selectMaterialByNameSQL, name))
}

func (m *MySQLAdapter) ListMaterials(ctx context.Context) ([]domain.RawMaterial, error) {
	rows, err := m.db.QueryContext(ctx, listMaterialsSQL)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	var out []domain.RawMaterial
	for rows.Next() {
		var mat domain.RawMaterial
		if err := rows.Scan(&mat.ID, &mat.Name, &mat.Unit, &mat.Quantity, &mat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, mat)
	}
	return out, rows.Err()
}

func (m *MySQLAdapter) LedgerEntries(ctx context.Context, materialID int64) ([]domain.LedgerEntry, error) {
	rows, err := m.db.QueryContext(ctx, listLedgerSQL, materialID)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerEntry
	for rows.Next() {
		var (
			e   domain.LedgerEntry
			exp sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.MaterialID, &e.QuantityDelta, &e.Unit, &exp, &e.Reason, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		if exp.Valid {
			t := exp.Time
			e.ExpirationDate = &t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (m *MySQLAdapter) StockEntries(ctx context.Context) ([]domain.StockEntry, error) {
	rows, err := m.db.QueryContext(ctx, listStockEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("query stock entries: %w", err)
	}
	defer rows.Close()

	var out []domain.StockEntry
	for rows.Next() {
		var (
			e   domain.StockEntry
			exp sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.MaterialID, &e.Quantity, &exp, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		if exp.Valid {
			t := exp.Time
			e.ExpirationDate = &t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (m *MySQLAdapter) RecipeLinesFor(ctx context.Context, itemID int64) ([]domain.RecipeLine, error) {
	rows, err := m.db.QueryContext(ctx, recipeLinesSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("query recipe lines: %w", err)
	}
	defer rows.Close()

	var out []domain.RecipeLine
	for rows.Next() {
		var l domain.RecipeLine
		if err := rows.Scan(&l.ID, &l.ItemID, &l.MaterialID, &l.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (m *MySQLAdapter) RecipeLine(ctx context.Context, id int64) (*domain.RecipeLine, error) {
	var l domain.RecipeLine
	err := m.db.QueryRowContext(ctx, recipeLineSQL, id).Scan(&l.ID, &l.ItemID, &l.MaterialID, &l.QuantityPerUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe line: %w", err)
	}
	return &l, nil
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(m.db.QueryRowContext(ctx, selectOrderSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (m *MySQLAdapter) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if userID > 0 {
		rows, err = m.db.QueryContext(ctx, listUserOrdersSQL, userID)
	} else {
		rows, err = m.db.QueryContext(ctx, listOrdersSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*domain.RawMaterial, error) {
	var mat domain.RawMaterial
	err := row.Scan(&mat.ID, &mat.Name, &mat.Unit, &mat.Quantity, &mat.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query material: %w", err)
	}
	return &mat, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &items, &o.TotalAmount, &o.Status, &o.Availability,
		&o.PaymentMethod, &o.PaymentStatus, &o.StockDeducted, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items of order %s: %w", o.ID, err)
	}
	return &o, nil
}

type mysqlTx struct {
	tx *sql.Tx
}

// DebitMaterial is the single guarded debit used by every deduction path.
func (t *mysqlTx) DebitMaterial(ctx context.Context, materialID int64, qty decimal.Decimal) (port.Debit, error) {
	result, err := t.tx.ExecContext(ctx, debitMaterialSQL, qty, materialID, qty)
	if err != nil {
		return port.Debit{}, fmt.Errorf("debit material: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return port.Debit{}, fmt.Errorf("debit material: %w", err)
	}

	mat, err := scanMaterial(t.tx.QueryRowContext(ctx, selectMaterialSQL, materialID))
	if err != nil {
		return port.Debit{}, err
	}
	if mat == nil {
		return port.Debit{}, nil
	}
	return port.Debit{Applied: rows == 1, Material: mat}, nil
}

func (t *mysqlTx) AppendLedger(ctx context.Context, e *domain.LedgerEntry) error {
	result, err := t.tx.ExecContext(ctx, insertLedgerSQL,
		e.MaterialID, e.QuantityDelta, e.Unit, e.ExpirationDate, e.Reason, e.UserID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	e.ID = id
	return nil
}

func (t *mysqlTx) CreateOrder(ctx context.Context, o domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	_, err = t.tx.ExecContext(ctx, insertOrderSQL,
		o.ID, o.UserID, string(items), o.TotalAmount, string(o.Status), string(o.Availability),
		o.PaymentMethod, string(o.PaymentStatus), o.StockDeducted, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (t *mysqlTx) UpdateOrderStatus(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error) {
	return t.execGuarded(ctx, updateOrderStatusSQL, string(to), orderID, string(from))
}

func (t *mysqlTx) MarkStockDeducted(ctx context.Context, orderID string) (bool, error) {
	return t.execGuarded(ctx, markStockDeductedSQL, orderID)
}

func (t *mysqlTx) SetOrderAvailability(ctx context.Context, orderID string, availability domain.Availability) error {
	if _, err := t.tx.ExecContext(ctx, setAvailabilitySQL, string(availability), orderID); err != nil {
		return fmt.Errorf("update availability: %w", err)
	}
	return nil
}

func (t *mysqlTx) UpdatePayment(ctx context.Context, orderID, method string, from, to domain.PaymentStatus) (bool, error) {
	return t.execGuarded(ctx, updatePaymentSQL, method, string(to), orderID, string(from))
}

func (t *mysqlTx) AddStockEntry(ctx context.Context, e *domain.StockEntry) error {
	result, err := t.tx.ExecContext(ctx, insertStockEntrySQL, e.MaterialID, e.Quantity, e.ExpirationDate, e.AddedAt)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	e.ID = id
	return nil
}

// UpdateStockEntry falls back to an existence check because the driver
// reports changed rows, and rewriting identical values changes none.
func (t *mysqlTx) UpdateStockEntry(ctx context.Context, id int64, qty decimal.Decimal, expiration *time.Time) (bool, error) {
	result, err := t.tx.ExecContext(ctx, updateStockEntrySQL, qty, expiration, id)
	if err != nil {
		return false, fmt.Errorf("update stock entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update stock entry: %w", err)
	}
	if rows == 1 {
		return true, nil
	}

	var one int
	err = t.tx.QueryRowContext(ctx, stockEntryExistsSQL, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query stock entry: %w", err)
	}
	return true, nil
}

// execGuarded runs a conditional UPDATE and reports whether a row matched.
func (t *mysqlTx) execGuarded(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	return rows == 1, nil
}
