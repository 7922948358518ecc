package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/core/service"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/stockledger?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := NewMySQLAdapter(db).Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedMaterial inserts a uniquely named material and returns its id.
func seedMaterial(t *testing.T, db *sql.DB, prefix, qty string) (int64, string) {
	t.Helper()
	name := fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	res, err := db.Exec(`INSERT INTO raw_materials (name, unit, quantity) VALUES (?, 'kg', ?)`, name, qty)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id, name
}

func seedUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (email) VALUES (?)`, fmt.Sprintf("u%d@test", time.Now().UnixNano()))
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func newIntegrationServices(db *sql.DB) (*service.InventoryService, *service.OrderService, *MySQLAdapter) {
	store := NewMySQLAdapter(db)
	log := zap.NewNop()
	resolver := service.NewRecipeResolver(store)
	checker := service.NewAvailabilityChecker(store)
	engine := service.NewDeductionEngine(store, store, log)
	return service.NewInventoryService(resolver, engine, store, log),
		service.NewOrderService(resolver, checker, engine, store, nil, log),
		store
}

func TestIntegration_AddonDeductionAndLedger(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	inv, _, store := newIntegrationServices(db)
	userID := seedUser(t, db)
	id, name := seedMaterial(t, db, "cheese", "5.000")

	n, err := inv.DeductForAddons(ctx, []string{name}, []decimal.Decimal{dec("3.0")}, userID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, err := store.GetMaterial(ctx, id)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(dec("2")))

	entries, err := store.LedgerEntries(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].QuantityDelta.Equal(dec("-3")))
	assert.Equal(t, domain.ReasonAddons, entries[0].Reason)
	assert.Nil(t, entries[0].ExpirationDate)

	_, err = inv.DeductForAddons(ctx, []string{name}, []decimal.Decimal{dec("3.0")}, userID, "")
	var batchErr *domain.BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	m, _ = store.GetMaterial(ctx, id)
	assert.True(t, m.Quantity.Equal(dec("2")))
	entries, _ = store.LedgerEntries(ctx, id)
	assert.Len(t, entries, 1)
}

func TestIntegration_ConcurrentDeductionsNeverOversell(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	inv, _, store := newIntegrationServices(db)
	userID := seedUser(t, db)
	id, name := seedMaterial(t, db, "race", "10.000")

	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := inv.DeductForAddons(ctx, []string{name}, []decimal.Decimal{dec("6")}, userID, ""); err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successCount.Load())
	m, err := store.GetMaterial(ctx, id)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(dec("4")))
}

func TestIntegration_CreateOrderRollsBackOnShortfall(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	_, orders, store := newIntegrationServices(db)
	userID := seedUser(t, db)
	dough, _ := seedMaterial(t, db, "dough", "10.000")
	sauce, _ := seedMaterial(t, db, "sauce", "0.500")

	menuID := time.Now().UnixNano() % 1_000_000_000
	_, err := db.Exec(`INSERT INTO menu_ingredients (menu_id, material_id, quantity) VALUES (?, ?, 1.0), (?, ?, 1.0)`,
		menuID, dough, menuID, sauce)
	require.NoError(t, err)

	_, err = orders.CreateOrder(ctx, service.CreateOrderInput{
		UserID: userID,
		Items:  []domain.OrderItem{{ItemID: menuID, Quantity: 1}},
	})
	var sfErr *domain.ShortfallError
	require.True(t, errors.As(err, &sfErr))
	require.Len(t, sfErr.Shortfalls, 1)
	assert.Equal(t, sauce, sfErr.Shortfalls[0].MaterialID)

	m, _ := store.GetMaterial(ctx, dough)
	assert.True(t, m.Quantity.Equal(dec("10")), "dough debit must be rolled back")

	list, err := store.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
