package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/stockledger/internal/core/domain"
)

// Mock CacheRepository
type mockCacheRepo struct {
	mu             sync.Mutex
	idempotencySet map[string]bool
	released       []string
	setErr         error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{idempotencySet: make(map[string]bool)}
}

func (m *mockCacheRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setErr != nil {
		return false, m.setErr
	}
	if m.idempotencySet[key] {
		return false, nil
	}
	m.idempotencySet[key] = true
	return true, nil
}

func (m *mockCacheRepo) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idempotencySet, key)
	m.released = append(m.released, key)
	return nil
}

const (
	pizzaID int64 = 100
	pastaID int64 = 200
)

// pizzaShop seeds two menu items that share dough.
func pizzaShop(t *testing.T, f *fixture, dough, sauce, cheese string) (int64, int64, int64) {
	t.Helper()
	doughID := f.material(t, "Dough", dough)
	sauceID := f.material(t, "Sauce", sauce)
	cheeseID := f.material(t, "Cheese", cheese)
	f.recipe(t, pizzaID, doughID, "1.0")
	f.recipe(t, pizzaID, sauceID, "0.2")
	f.recipe(t, pizzaID, cheeseID, "0.15")
	f.recipe(t, pastaID, doughID, "1.0")
	return doughID, sauceID, cheeseID
}

func TestCreateOrder_Success(t *testing.T) {
	f := newFixture(t)
	doughID, sauceID, cheeseID := pizzaShop(t, f, "10", "2", "1")

	o, err := f.orders.CreateOrder(context.Background(), CreateOrderInput{
		UserID:      testUser,
		Items:       []domain.OrderItem{{ItemID: pizzaID, Quantity: 2}},
		TotalAmount: dec("25.00"),
	})

	require.NoError(t, err)
	require.NotNil(t, o)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, domain.AvailabilityAvailable, o.Availability)
	assert.Equal(t, domain.PaymentUnpaid, o.PaymentStatus)
	assert.Equal(t, domain.DefaultPaymentMethod, o.PaymentMethod)
	assert.True(t, o.StockDeducted)

	assert.True(t, f.quantity(t, doughID).Equal(dec("8")))
	assert.True(t, f.quantity(t, sauceID).Equal(dec("1.6")))
	assert.True(t, f.quantity(t, cheeseID).Equal(dec("0.7")))

	entries := f.ledger(t, doughID)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ReasonOrder, entries[0].Reason)

	stored, err := f.orders.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(dec("25")))
}

func TestCreateOrder_SharedMaterialAggregated(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "2.0", "5", "5")

	_, err := f.orders.CreateOrder(context.Background(), CreateOrderInput{
		UserID: testUser,
		Items: []domain.OrderItem{
			{ItemID: pizzaID, Quantity: 1},
			{ItemID: pastaID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.True(t, f.quantity(t, doughID).IsZero())
	entries := f.ledger(t, doughID)
	require.Len(t, entries, 1, "one debit for the aggregated requirement")
	assert.True(t, entries[0].QuantityDelta.Equal(dec("-2.0")))
}

func TestCreateOrder_ShortfallStoresNothing(t *testing.T) {
	f := newFixture(t)
	doughID, sauceID, _ := pizzaShop(t, f, "10", "0.1", "5")

	o, err := f.orders.CreateOrder(context.Background(), CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pizzaID, Quantity: 1}},
	})

	assert.Nil(t, o)
	var sfErr *domain.ShortfallError
	require.True(t, errors.As(err, &sfErr))
	require.Len(t, sfErr.Shortfalls, 1)
	assert.Equal(t, sauceID, sfErr.Shortfalls[0].MaterialID)
	assert.Equal(t, "Sauce", sfErr.Shortfalls[0].Name)

	assert.True(t, f.quantity(t, doughID).Equal(dec("10")))
	assert.Empty(t, f.ledger(t, doughID))
	orders, err := f.orders.ListOrders(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_InvalidInput(t *testing.T) {
	f := newFixture(t)
	pizzaShop(t, f, "10", "10", "10")
	ctx := context.Background()

	_, err := f.orders.CreateOrder(ctx, CreateOrderInput{UserID: testUser})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pizzaID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: 0,
		Items:  []domain.OrderItem{{ItemID: pizzaID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUser)

	_, err = f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: 77,
		Items:  []domain.OrderItem{{ItemID: pizzaID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
}

func TestCreateOrder_DuplicateRequest(t *testing.T) {
	cache := newMockCacheRepo()
	f := newFixtureWith(t, nil, cache)
	doughID, _, _ := pizzaShop(t, f, "10", "10", "10")
	in := CreateOrderInput{
		RequestID: "req-1",
		UserID:    testUser,
		Items:     []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	}

	_, err := f.orders.CreateOrder(context.Background(), in)
	require.NoError(t, err)

	_, err = f.orders.CreateOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	assert.True(t, f.quantity(t, doughID).Equal(dec("9")))
}

func TestCreateOrder_FailureReleasesRequestID(t *testing.T) {
	cache := newMockCacheRepo()
	f := newFixtureWith(t, nil, cache)
	doughID, _, _ := pizzaShop(t, f, "0.5", "10", "10")
	in := CreateOrderInput{
		RequestID: "req-2",
		UserID:    testUser,
		Items:     []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	}

	_, err := f.orders.CreateOrder(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, []string{idempotencyKeyPrefix + "req-2"}, cache.released)

	_, err = f.orders.CreateOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "retry is not treated as a duplicate")
	assert.True(t, f.quantity(t, doughID).Equal(dec("0.5")))
}

func TestCreateOrder_CacheFailure(t *testing.T) {
	cache := newMockCacheRepo()
	cache.setErr = errors.New("redis down")
	f := newFixtureWith(t, nil, cache)
	doughID, _, _ := pizzaShop(t, f, "10", "10", "10")

	_, err := f.orders.CreateOrder(context.Background(), CreateOrderInput{
		RequestID: "req-3",
		UserID:    testUser,
		Items:     []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	})

	assert.Error(t, err)
	assert.True(t, f.quantity(t, doughID).Equal(dec("10")))
}

func TestCreateOrder_ConcurrentOrdersNeverOversell(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "10", "10", "10")

	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.orders.CreateOrder(context.Background(), CreateOrderInput{
				UserID: testUser,
				Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
			})
			if err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), successCount.Load())
	assert.True(t, f.quantity(t, doughID).IsZero())
	assert.Len(t, f.ledger(t, doughID), 10)
}

func TestPlaceOrder_RecordsAvailabilityWithoutDeducting(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "1", "10", "10")
	ctx := context.Background()

	ok, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityAvailable, ok.Availability)
	assert.False(t, ok.StockDeducted)

	short, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityUnavailable, short.Availability)

	assert.True(t, f.quantity(t, doughID).Equal(dec("1")))
	assert.Empty(t, f.ledger(t, doughID))
}

func TestProcessOrder_DeductsOnce(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "5", "10", "10")
	ctx := context.Background()

	placed, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 2}},
	})
	require.NoError(t, err)

	processed, err := f.orders.ProcessOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, processed.Status)
	assert.True(t, processed.StockDeducted)
	assert.True(t, f.quantity(t, doughID).Equal(dec("3")))

	_, err = f.orders.ProcessOrder(ctx, placed.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.True(t, f.quantity(t, doughID).Equal(dec("3")))
	assert.Len(t, f.ledger(t, doughID), 1)
}

func TestProcessOrder_AlreadyDeductedSkipsDebit(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "5", "10", "10")
	ctx := context.Background()

	created, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.orders.ProcessOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, f.quantity(t, doughID).Equal(dec("4")))
	assert.Len(t, f.ledger(t, doughID), 1)
}

func TestProcessOrder_ShortfallKeepsOrderPending(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "1", "10", "10")
	ctx := context.Background()

	placed, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = f.orders.ProcessOrder(ctx, placed.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	o, err := f.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.False(t, o.StockDeducted)
	assert.True(t, f.quantity(t, doughID).Equal(dec("1")))
}

func TestUpdateOrderStatus_ProcessingDeductsPlacedOrder(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "10", "10", "10")
	ctx := context.Background()

	placed, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.False(t, placed.StockDeducted)

	require.NoError(t, f.orders.UpdateOrderStatus(ctx, placed.ID, "processing"))

	o, err := f.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, o.Status)
	assert.True(t, o.StockDeducted)
	assert.True(t, f.quantity(t, doughID).Equal(dec("8")))
	require.Len(t, f.ledger(t, doughID), 1)

	require.NoError(t, f.orders.UpdateOrderStatus(ctx, placed.ID, "completed"))
	assert.True(t, f.quantity(t, doughID).Equal(dec("8")))
	assert.Len(t, f.ledger(t, doughID), 1)
}

func TestUpdateOrderStatus_ProcessingRefusedOnShortfall(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "1", "10", "10")
	ctx := context.Background()

	placed, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 2}},
	})
	require.NoError(t, err)

	err = f.orders.UpdateOrderStatus(ctx, placed.ID, "processing")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	err = f.orders.UpdateOrderStatus(ctx, placed.ID, "completed")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	o, err := f.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.False(t, o.StockDeducted)
	assert.True(t, f.quantity(t, doughID).Equal(dec("1")))
	assert.Empty(t, f.ledger(t, doughID))
}

func TestCheckAvailability_UpdatesOrder(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "2", "10", "10")
	ctx := context.Background()

	placed, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.AvailabilityAvailable, placed.Availability)

	_, err = f.engine.Deduct(ctx, []domain.RequirementLine{req(doughID, "1")}, domain.ReasonAddons, testUser)
	require.NoError(t, err)

	report, err := f.orders.CheckAvailability(ctx, placed.ID)
	require.NoError(t, err)
	assert.False(t, report.Sufficient)
	assert.Equal(t, domain.AvailabilityUnavailable, report.Availability)
	require.Len(t, report.Shortfalls, 1)
	assert.True(t, report.Shortfalls[0].Needed.Equal(dec("2")))
	assert.True(t, report.Shortfalls[0].Available.Equal(dec("1")))

	o, err := f.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityUnavailable, o.Availability)
	assert.True(t, f.quantity(t, doughID).Equal(dec("1")), "check never debits")
}

func TestUpdateOrderStatus_Transitions(t *testing.T) {
	f := newFixture(t)
	pizzaShop(t, f, "10", "10", "10")
	ctx := context.Background()

	o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.orders.UpdateOrderStatus(ctx, o.ID, "shipped"), domain.ErrInvalidStatus)
	assert.ErrorIs(t, f.orders.UpdateOrderStatus(ctx, o.ID, "completed"), domain.ErrInvalidTransition)
	assert.NoError(t, f.orders.UpdateOrderStatus(ctx, o.ID, "pending"), "same status is a no-op")

	require.NoError(t, f.orders.UpdateOrderStatus(ctx, o.ID, "processing"))
	require.NoError(t, f.orders.UpdateOrderStatus(ctx, o.ID, "completed"))
	assert.ErrorIs(t, f.orders.UpdateOrderStatus(ctx, o.ID, "cancelled"), domain.ErrInvalidTransition)

	got, err := f.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, got.Status)

	assert.ErrorIs(t, f.orders.UpdateOrderStatus(ctx, "missing", "processing"), domain.ErrOrderNotFound)
}

func TestUpdateOrderStatus_CancelDoesNotRestock(t *testing.T) {
	f := newFixture(t)
	doughID, _, _ := pizzaShop(t, f, "10", "10", "10")
	ctx := context.Background()

	o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, f.orders.UpdateOrderStatus(ctx, o.ID, "cancelled"))
	assert.True(t, f.quantity(t, doughID).Equal(dec("7")))
	assert.Len(t, f.ledger(t, doughID), 1)
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newFixture(t)
	pizzaShop(t, f, "10", "10", "10")
	ctx := context.Background()

	o, err := f.orders.CreateOrder(ctx, CreateOrderInput{
		UserID: testUser,
		Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.orders.UpdatePaymentStatus(ctx, o.ID, "", "paid"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.orders.UpdatePaymentStatus(ctx, o.ID, "Card", "refunded"), domain.ErrInvalidStatus)

	require.NoError(t, f.orders.UpdatePaymentStatus(ctx, o.ID, "Card", "paid"))
	require.NoError(t, f.orders.UpdatePaymentStatus(ctx, o.ID, "Card", "paid"))
	assert.ErrorIs(t, f.orders.UpdatePaymentStatus(ctx, o.ID, "Card", "unpaid"), domain.ErrInvalidTransition)

	got, err := f.orders.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Card", got.PaymentMethod)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
}

func TestListOrders(t *testing.T) {
	f := newFixture(t)
	pizzaShop(t, f, "10", "10", "10")
	f.store.AddUser(2)
	ctx := context.Background()

	for _, uid := range []int64{testUser, 2, testUser} {
		_, err := f.orders.PlaceOrder(ctx, CreateOrderInput{
			UserID: uid,
			Items:  []domain.OrderItem{{ItemID: pastaID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	mine, err := f.orders.ListOrders(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := f.orders.ListOrders(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.orders.ListOrders(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOrder_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.GetOrder(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.GetOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
