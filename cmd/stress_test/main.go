package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/adapter/storage"
	"github.com/rl1809/stockledger/internal/config"
	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/core/service"
	"github.com/rl1809/stockledger/internal/port"
)

const (
	initialStock  = 20
	perRequest    = "1.5"
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store, userID, material, cleanup, err := setup(ctx, cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer cleanup()

	logger := zap.NewNop()
	resolver := service.NewRecipeResolver(store)
	engine := service.NewDeductionEngine(store, store, logger)
	inventory := service.NewInventoryService(resolver, engine, store, logger)

	// Counters
	var successCount atomic.Int32
	var shortCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent requests
	var wg sync.WaitGroup
	amount := decimal.RequireFromString(perRequest)
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := inventory.DeductForAddons(ctx, []string{material}, []decimal.Decimal{amount}, userID, "")
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				shortCount.Add(1)
			default:
				failCount.Add(1)
				log.Printf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	short := shortCount.Load()
	expected := decimal.NewFromInt(initialStock).Div(amount).IntPart()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Store:            %s\n", cfg.Store)
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Per Request:      %s\n", perRequest)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Short:            %d\n", short)
	fmt.Printf("Errors:           %d\n", failCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if int64(success) == expected {
		fmt.Printf("PASS: exactly %d deductions succeeded\n", expected)
	} else {
		fmt.Printf("FAIL: expected %d successful deductions, got %d\n", expected, success)
	}

	m, err := store.MaterialByName(ctx, material)
	if err != nil || m == nil {
		log.Fatalf("read final stock: %v", err)
	}
	want := decimal.NewFromInt(initialStock).Sub(amount.Mul(decimal.NewFromInt(int64(success))))
	fmt.Printf("Final Stock:      %s\n", m.Quantity)
	if m.Quantity.Equal(want) && !m.Quantity.IsNegative() {
		fmt.Println("PASS: stock matches successful deductions and is non-negative")
	} else {
		fmt.Printf("FAIL: expected stock %s, got %s\n", want, m.Quantity)
	}

	entries, err := store.LedgerEntries(ctx, m.ID)
	if err != nil {
		log.Fatalf("read ledger: %v", err)
	}
	if len(entries) == int(success) {
		fmt.Println("PASS: one ledger entry per successful deduction")
	} else {
		fmt.Printf("FAIL: expected %d ledger entries, got %d\n", success, len(entries))
	}
}

// setup seeds one user and one material in the configured store.
func setup(ctx context.Context, cfg config.Config) (port.Store, int64, string, func(), error) {
	name := fmt.Sprintf("stress-%d", time.Now().UnixNano())

	if cfg.Store == config.StoreMemory {
		store := storage.NewMemoryStore()
		store.AddUser(1)
		if _, err := store.AddMaterial(name, "kg", decimal.NewFromInt(initialStock)); err != nil {
			return nil, 0, "", nil, err
		}
		return store, 1, name, func() {}, nil
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, 0, "", nil, err
	}
	db.SetMaxOpenConns(cfg.MySQLMaxOpenConns)
	adapter := storage.NewMySQLAdapter(db)
	if err := adapter.Migrate(ctx); err != nil {
		db.Close()
		return nil, 0, "", nil, err
	}

	res, err := db.ExecContext(ctx, `INSERT INTO users (email) VALUES (?)`, name+"@stress.local")
	if err != nil {
		db.Close()
		return nil, 0, "", nil, err
	}
	userID, err := res.LastInsertId()
	if err != nil {
		db.Close()
		return nil, 0, "", nil, err
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO raw_materials (name, unit, quantity) VALUES (?, 'kg', ?)`, name, initialStock); err != nil {
		db.Close()
		return nil, 0, "", nil, err
	}
	return adapter, userID, name, func() { db.Close() }, nil
}
