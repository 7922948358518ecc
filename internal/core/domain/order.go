package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

const DefaultPaymentMethod = "Cash"

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether the state machine allows moving to next.
// Completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch ps := PaymentStatus(s); ps {
	case PaymentUnpaid, PaymentPaid:
		return ps, nil
	}
	return "", ErrInvalidStatus
}

type OrderItem struct {
	ItemID   int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type Order struct {
	ID            string
	UserID        int64
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	Availability  Availability
	PaymentMethod string
	PaymentStatus PaymentStatus
	StockDeducted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
