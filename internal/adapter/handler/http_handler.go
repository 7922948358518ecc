package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/core/service"
)

const maxBodyBytes = 1 << 20

type HTTPHandler struct {
	orders    *service.OrderService
	inventory *service.InventoryService
	log       *zap.Logger
}

func NewHTTPHandler(orders *service.OrderService, inventory *service.InventoryService, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{orders: orders, inventory: inventory, log: log}
}

// CreateOrder deducts stock for the order and stores it. The request id may
// also be sent as an Idempotency-Key header.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	o, err := h.orders.CreateOrder(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrderToResponse(o))
}

// QuoteOrder stores the order without deducting, flagged with its current
// availability.
func (h *HTTPHandler) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	o, err := h.orders.PlaceOrder(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrderToResponse(o))
}

func (h *HTTPHandler) decodeOrder(w http.ResponseWriter, r *http.Request) (service.CreateOrderInput, bool) {
	var req CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return service.CreateOrderInput{}, false
	}

	if req.UserID <= 0 || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and items are required")
		return service.CreateOrderInput{}, false
	}
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ID <= 0 || it.Quantity <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_item", "item id and quantity must be positive")
			return service.CreateOrderInput{}, false
		}
		items = append(items, domain.OrderItem{ItemID: it.ID, Quantity: it.Quantity})
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = r.Header.Get("Idempotency-Key")
	}
	return service.CreateOrderInput{
		RequestID:     requestID,
		UserID:        req.UserID,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
	}, true
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if v := r.URL.Query().Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_user", "user_id must be a positive integer")
			return
		}
		userID = id
	}

	orders, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = mapOrderToResponse(&orders[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(o))
}

func (h *HTTPHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	report, err := h.orders.CheckAvailability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AvailabilityResponse{
		OrderID:             report.OrderID,
		Sufficient:          report.Sufficient,
		UpdatedAvailability: string(report.Availability),
		Shortfalls:          mapShortfalls(report.Shortfalls),
	})
}

func (h *HTTPHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.ProcessOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(o))
}

func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "status is required")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.orders.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Order status updated successfully"})
}

func (h *HTTPHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.orders.UpdatePaymentStatus(r.Context(), id, req.PaymentMethod, req.PaymentStatus); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Payment status updated successfully"})
}

func (h *HTTPHandler) DeductAddons(w http.ResponseWriter, r *http.Request) {
	var req DeductAddonsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Names) == 0 || len(req.Names) != len(req.Amounts) {
		writeError(w, http.StatusBadRequest, "invalid_request", "names and amounts must be non-empty and the same length")
		return
	}

	n, err := h.inventory.DeductForAddons(r.Context(), req.Names, req.Amounts, req.UserID, req.Reason)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Inventory deducted successfully", Applied: n})
}

func (h *HTTPHandler) DeductIngredients(w http.ResponseWriter, r *http.Request) {
	var req DeductIngredientsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "items are required")
		return
	}

	items := make([]service.IngredientAmount, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.IngredientAmount{MenuIngredientID: it.MenuIngredientID, Amount: it.Amount}
	}
	if err := h.inventory.DeductForIngredients(r.Context(), items, req.UserID, req.Reason); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Inventory deducted successfully", Applied: len(items)})
}

func (h *HTTPHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	ms, err := h.inventory.ListMaterials(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	out := make([]MaterialResponse, len(ms))
	for i, m := range ms {
		out[i] = mapMaterial(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) AddStockEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "material id must be a positive integer")
		return
	}
	req, expiration, ok := decodeStockEntry(w, r)
	if !ok {
		return
	}

	e, err := h.inventory.AddStockEntry(r.Context(), id, req.Quantity, expiration)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapStockEntry(*e))
}

func (h *HTTPHandler) UpdateStockEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "entry id must be a positive integer")
		return
	}
	req, expiration, ok := decodeStockEntry(w, r)
	if !ok {
		return
	}

	if err := h.inventory.UpdateStockEntry(r.Context(), id, req.Quantity, expiration); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Stock entry updated successfully"})
}

func decodeStockEntry(w http.ResponseWriter, r *http.Request) (StockEntryRequest, *time.Time, bool) {
	var req StockEntryRequest
	if !decodeJSON(w, r, &req) {
		return req, nil, false
	}
	expiration, err := parseExpiration(req.ExpirationDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "expiration_date must be YYYY-MM-DD")
		return req, nil, false
	}
	return req, expiration, true
}

func (h *HTTPHandler) MaterialLedger(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "material id must be a positive integer")
		return
	}

	entries, err := h.inventory.Ledger(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = mapLedgerEntry(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	f := classify(err)
	if f.httpStatus >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, f.httpStatus, ErrorResponse{
		Error:      f.code,
		Message:    f.message,
		Shortfalls: mapShortfalls(f.shortfalls),
		Failures:   f.lines,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
