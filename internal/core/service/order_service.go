package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

const idempotencyKeyPrefix = "order:request:"

type CreateOrderInput struct {
	RequestID     string
	UserID        int64
	Items         []domain.OrderItem
	TotalAmount   decimal.Decimal
	PaymentMethod string
}

type AvailabilityReport struct {
	OrderID      string
	Sufficient   bool
	Availability domain.Availability
	Shortfalls   []domain.Shortfall
}

// OrderService drives the order lifecycle: resolve, check, deduct, record,
// then status and payment transitions.
type OrderService struct {
	resolver *RecipeResolver
	checker  *AvailabilityChecker
	engine   *DeductionEngine
	orders   port.OrderReader
	cache    port.CacheRepository
	log      *zap.Logger
	now      func() time.Time
}

// NewOrderService wires the lifecycle. cache may be nil, in which case
// request ids are not checked for replays.
func NewOrderService(
	resolver *RecipeResolver,
	checker *AvailabilityChecker,
	engine *DeductionEngine,
	orders port.OrderReader,
	cache port.CacheRepository,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		resolver: resolver,
		checker:  checker,
		engine:   engine,
		orders:   orders,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

// CreateOrder deducts the order's materials and records the order in one
// transaction. On any shortfall no order is stored and the returned error
// is a *domain.ShortfallError.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (order *domain.Order, err error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}
	if err := s.engine.checkUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	if in.RequestID != "" && s.cache != nil {
		key := idempotencyKeyPrefix + in.RequestID
		ok, setErr := s.cache.SetIdempotency(ctx, key)
		if setErr != nil {
			return nil, fmt.Errorf("idempotency check failed: %w", setErr)
		}
		if !ok {
			return nil, domain.ErrDuplicateRequest
		}
		defer func() {
			if err == nil {
				return
			}
			if relErr := s.cache.ReleaseIdempotency(context.WithoutCancel(ctx), key); relErr != nil {
				s.log.Error("release idempotency key", zap.String("key", key), zap.Error(relErr))
			}
		}()
	}

	reqs, err := s.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	o := s.newOrder(in)
	o.Availability = domain.AvailabilityAvailable
	o.StockDeducted = true

	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		out, err := s.engine.apply(ctx, tx, reqs, domain.ReasonOrder, in.UserID)
		if err != nil {
			return err
		}
		if err := out.err(); err != nil {
			return err
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("%w: insert order: %w", domain.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("order rejected", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Int64("user_id", o.UserID),
		zap.Int("materials", len(reqs)),
	)
	return &o, nil
}

// PlaceOrder records an order without touching stock. Availability is set
// from an advisory check; ProcessOrder performs the deduction later.
func (s *OrderService) PlaceOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}
	if err := s.engine.checkUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	reqs, err := s.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	res, err := s.checker.Check(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	o := s.newOrder(in)
	o.Availability = availabilityOf(res)

	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		if err := tx.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("%w: insert order: %w", domain.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("availability", string(o.Availability)),
	)
	return &o, nil
}

// ProcessOrder moves a pending order to processing, deducting its stock in
// the same transaction when it was placed without deduction.
func (s *OrderService) ProcessOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", o.ID, o.Status, domain.ErrInvalidTransition)
	}

	var reqs []domain.RequirementLine
	if !o.StockDeducted {
		if reqs, err = s.resolveItems(ctx, o.Items); err != nil {
			return nil, err
		}
	}

	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		marked, err := tx.MarkStockDeducted(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("%w: mark order %s: %w", domain.ErrStorage, o.ID, err)
		}
		if marked {
			out, err := s.engine.apply(ctx, tx, reqs, domain.ReasonOrder, o.UserID)
			if err != nil {
				return err
			}
			if err := out.err(); err != nil {
				return err
			}
		}

		moved, err := tx.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusPending, domain.OrderStatusProcessing)
		if err != nil {
			return fmt.Errorf("%w: update order %s: %w", domain.ErrStorage, o.ID, err)
		}
		if !moved {
			return fmt.Errorf("order %s changed concurrently: %w", o.ID, domain.ErrInvalidTransition)
		}
		if err := tx.SetOrderAvailability(ctx, o.ID, domain.AvailabilityAvailable); err != nil {
			return fmt.Errorf("%w: update order %s: %w", domain.ErrStorage, o.ID, err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("order processing rejected", zap.String("order_id", o.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("order processing", zap.String("order_id", o.ID))
	return s.GetOrder(ctx, o.ID)
}

// CheckAvailability re-derives an existing order's availability from current
// stock. It never debits; the classification is advisory.
func (s *OrderService) CheckAvailability(ctx context.Context, orderID string) (*AvailabilityReport, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	reqs, err := s.resolveItems(ctx, o.Items)
	if err != nil {
		return nil, err
	}
	res, err := s.checker.Check(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	av := availabilityOf(res)
	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		if err := tx.SetOrderAvailability(ctx, o.ID, av); err != nil {
			return fmt.Errorf("%w: update order %s: %w", domain.ErrStorage, o.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AvailabilityReport{
		OrderID:      o.ID,
		Sufficient:   res.Sufficient,
		Availability: av,
		Shortfalls:   res.Shortfalls,
	}, nil
}

// UpdateOrderStatus applies a status change allowed by the state machine.
// Setting the current status again is a no-op. Moving to processing goes
// through ProcessOrder so the order's stock is always debited first.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	next, err := domain.ParseOrderStatus(strings.TrimSpace(status))
	if err != nil {
		return fmt.Errorf("status %q: %w", status, err)
	}

	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Status == next {
		return nil
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("order %s: %s -> %s: %w", o.ID, o.Status, next, domain.ErrInvalidTransition)
	}
	// Entering processing must debit stock for orders placed without it.
	if next == domain.OrderStatusProcessing {
		_, err := s.ProcessOrder(ctx, o.ID)
		return err
	}

	err = s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		moved, err := tx.UpdateOrderStatus(ctx, o.ID, o.Status, next)
		if err != nil {
			return fmt.Errorf("%w: update order %s: %w", domain.ErrStorage, o.ID, err)
		}
		if !moved {
			return fmt.Errorf("order %s changed concurrently: %w", o.ID, domain.ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("order status updated",
		zap.String("order_id", o.ID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(next)),
	)
	return nil
}

// UpdatePaymentStatus records the payment method and status. A paid order
// cannot go back to unpaid.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID, method, status string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return fmt.Errorf("payment method required: %w", domain.ErrInvalidInput)
	}
	next, err := domain.ParsePaymentStatus(strings.TrimSpace(status))
	if err != nil {
		return fmt.Errorf("payment status %q: %w", status, err)
	}

	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if o.PaymentStatus == domain.PaymentPaid && next == domain.PaymentUnpaid {
		return fmt.Errorf("order %s already paid: %w", o.ID, domain.ErrInvalidTransition)
	}
	if o.PaymentStatus == next && o.PaymentMethod == method {
		return nil
	}

	return s.engine.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		ok, err := tx.UpdatePayment(ctx, o.ID, method, o.PaymentStatus, next)
		if err != nil {
			return fmt.Errorf("%w: update payment %s: %w", domain.ErrStorage, o.ID, err)
		}
		if !ok {
			return fmt.Errorf("order %s changed concurrently: %w", o.ID, domain.ErrInvalidTransition)
		}
		return nil
	})
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("order id required: %w", domain.ErrInvalidInput)
	}
	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: get order %s: %w", domain.ErrStorage, orderID, err)
	}
	if o == nil {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	return o, nil
}

// ListOrders returns a user's orders, or every order when userID is 0.
func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	if userID < 0 {
		return nil, fmt.Errorf("user id %d: %w", userID, domain.ErrInvalidInput)
	}
	orders, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %w", domain.ErrStorage, err)
	}
	return orders, nil
}

func (s *OrderService) resolveItems(ctx context.Context, items []domain.OrderItem) ([]domain.RequirementLine, error) {
	reqs, err := s.resolver.ResolveOrder(ctx, items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return reqs, nil
}

func (s *OrderService) newOrder(in CreateOrderInput) domain.Order {
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = domain.DefaultPaymentMethod
	}
	now := s.now().UTC()
	return domain.Order{
		ID:            uuid.New().String(),
		UserID:        in.UserID,
		Items:         in.Items,
		TotalAmount:   in.TotalAmount,
		Status:        domain.OrderStatusPending,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func validateOrderInput(in CreateOrderInput) error {
	if in.UserID <= 0 {
		return domain.ErrInvalidUser
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("order has no items: %w", domain.ErrInvalidInput)
	}
	for i, it := range in.Items {
		if it.ItemID <= 0 || it.Quantity <= 0 {
			return fmt.Errorf("item %d: id and quantity must be positive: %w", i, domain.ErrInvalidInput)
		}
	}
	if in.TotalAmount.IsNegative() {
		return fmt.Errorf("negative total amount: %w", domain.ErrInvalidInput)
	}
	return nil
}

func availabilityOf(res AvailabilityResult) domain.Availability {
	if res.Sufficient {
		return domain.AvailabilityAvailable
	}
	return domain.AvailabilityUnavailable
}
