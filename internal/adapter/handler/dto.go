package handler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/core/domain"
)

const dateLayout = "2006-01-02"

type OrderItemRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderRequest struct {
	RequestID     string             `json:"request_id"`
	UserID        int64              `json:"user_id"`
	Items         []OrderItemRequest `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdatePaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}

type DeductAddonsRequest struct {
	Names   []string          `json:"names"`
	Amounts []decimal.Decimal `json:"amounts"`
	UserID  int64             `json:"user_id"`
	Reason  string            `json:"reason"`
}

type IngredientRequest struct {
	MenuIngredientID int64           `json:"menu_ingredient_id"`
	Amount           decimal.Decimal `json:"amount"`
}

type DeductIngredientsRequest struct {
	Items  []IngredientRequest `json:"items"`
	UserID int64               `json:"user_id"`
	Reason string              `json:"reason"`
}

// StockEntryRequest carries an expiration date as YYYY-MM-DD; empty means
// no expiry.
type StockEntryRequest struct {
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	UserID        int64              `json:"user_id"`
	Items         []OrderItemRequest `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        string             `json:"status"`
	Availability  string             `json:"availability"`
	PaymentMethod string             `json:"payment_method"`
	PaymentStatus string             `json:"payment_status"`
	StockDeducted bool               `json:"stock_deducted"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type ShortfallResponse struct {
	MaterialID int64           `json:"material_id"`
	Name       string          `json:"name"`
	Needed     decimal.Decimal `json:"needed"`
	Available  decimal.Decimal `json:"available"`
}

type AvailabilityResponse struct {
	OrderID             string              `json:"order_id"`
	Sufficient          bool                `json:"sufficient"`
	UpdatedAvailability string              `json:"updated_availability"`
	Shortfalls          []ShortfallResponse `json:"shortfalls,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Applied int    `json:"applied,omitempty"`
}

type MaterialResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal      `json:"quantity"`
	UpdatedAt time.Time            `json:"updated_at"`
	Entries   []StockEntryResponse `json:"entries"`
}

type StockEntryResponse struct {
	ID             int64           `json:"id"`
	MaterialID     int64           `json:"material_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *string         `json:"expiration_date"`
	AddedAt        time.Time       `json:"added_at"`
}

type LedgerEntryResponse struct {
	ID             int64           `json:"id"`
	MaterialID     int64           `json:"material_id"`
	QuantityDelta  decimal.Decimal `json:"quantity_delta"`
	Unit           string          `json:"unit"`
	Reason         string          `json:"reason"`
	UserID         int64           `json:"user_id"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ErrorResponse struct {
	Error      string              `json:"error"`
	Message    string              `json:"message"`
	Shortfalls []ShortfallResponse `json:"shortfalls,omitempty"`
	Failures   []string            `json:"failures,omitempty"`
}

func mapOrderToResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemRequest, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemRequest{ID: it.ItemID, Quantity: it.Quantity}
	}
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		Availability:  string(o.Availability),
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: string(o.PaymentStatus),
		StockDeducted: o.StockDeducted,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func mapShortfalls(in []domain.Shortfall) []ShortfallResponse {
	if len(in) == 0 {
		return nil
	}
	out := make([]ShortfallResponse, len(in))
	for i, s := range in {
		out[i] = ShortfallResponse{
			MaterialID: s.MaterialID,
			Name:       s.Name,
			Needed:     s.Needed,
			Available:  s.Available,
		}
	}
	return out
}

func mapMaterial(m domain.MaterialWithEntries) MaterialResponse {
	entries := make([]StockEntryResponse, len(m.Entries))
	for i, e := range m.Entries {
		entries[i] = mapStockEntry(e)
	}
	return MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Quantity:  m.Quantity,
		UpdatedAt: m.UpdatedAt,
		Entries:   entries,
	}
}

func mapStockEntry(e domain.StockEntry) StockEntryResponse {
	out := StockEntryResponse{
		ID:         e.ID,
		MaterialID: e.MaterialID,
		Quantity:   e.Quantity,
		AddedAt:    e.AddedAt,
	}
	if e.ExpirationDate != nil {
		d := e.ExpirationDate.Format(dateLayout)
		out.ExpirationDate = &d
	}
	return out
}

// parseExpiration reads a YYYY-MM-DD date; an empty string means no expiry.
func parseExpiration(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapLedgerEntry(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             e.ID,
		MaterialID:     e.MaterialID,
		QuantityDelta:  e.QuantityDelta,
		Unit:           e.Unit,
		Reason:         e.Reason,
		UserID:         e.UserID,
		ExpirationDate: e.ExpirationDate,
		CreatedAt:      e.CreatedAt,
	}
}
