package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/stockledger/internal/adapter/handler/pb"
	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedInventoryServer
	orders    *service.OrderService
	inventory *service.InventoryService
	log       *zap.Logger
}

func NewGRPCHandler(orders *service.OrderService, inventory *service.InventoryService, log *zap.Logger) *GRPCHandler {
	return &GRPCHandler{orders: orders, inventory: inventory, log: log}
}

func (h *GRPCHandler) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.CreateOrderResponse, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it == nil {
			return nil, status.Error(codes.InvalidArgument, "nil order item")
		}
		items = append(items, domain.OrderItem{ItemID: it.ItemId, Quantity: int(it.Quantity)})
	}
	total, err := parseDecimal(req.TotalAmount, "total_amount")
	if err != nil {
		return nil, err
	}

	o, err := h.orders.CreateOrder(ctx, service.CreateOrderInput{
		RequestID:     req.RequestId,
		UserID:        req.UserId,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		f, err := h.refusal(err)
		if err != nil {
			return nil, err
		}
		return &pb.CreateOrderResponse{
			Success:    false,
			Message:    f.message,
			Shortfalls: toPBShortfalls(f.shortfalls),
		}, nil
	}

	return &pb.CreateOrderResponse{
		Success: true,
		Message: "order created successfully",
		OrderId: o.ID,
	}, nil
}

func (h *GRPCHandler) CheckAvailability(ctx context.Context, req *pb.CheckAvailabilityRequest) (*pb.CheckAvailabilityResponse, error) {
	report, err := h.orders.CheckAvailability(ctx, req.OrderId)
	if err != nil {
		return nil, h.statusError(err)
	}
	return &pb.CheckAvailabilityResponse{
		Sufficient:          report.Sufficient,
		UpdatedAvailability: string(report.Availability),
		Shortfalls:          toPBShortfalls(report.Shortfalls),
	}, nil
}

func (h *GRPCHandler) DeductAddons(ctx context.Context, req *pb.DeductAddonsRequest) (*pb.DeductAddonsResponse, error) {
	amounts := make([]decimal.Decimal, len(req.Amounts))
	for i, a := range req.Amounts {
		d, err := decimal.NewFromString(a)
		if err != nil {
			// left zero so the pair is reported with the rest of the batch
			continue
		}
		amounts[i] = d
	}

	n, err := h.inventory.DeductForAddons(ctx, req.Names, amounts, req.UserId, req.Reason)
	if err != nil {
		f, err := h.refusal(err)
		if err != nil {
			return nil, err
		}
		return &pb.DeductAddonsResponse{Success: false, Message: f.message, Failures: f.lines}, nil
	}
	return &pb.DeductAddonsResponse{
		Success: true,
		Message: "Inventory deducted successfully",
		Applied: int32(n),
	}, nil
}

func (h *GRPCHandler) DeductIngredients(ctx context.Context, req *pb.DeductIngredientsRequest) (*pb.DeductIngredientsResponse, error) {
	items := make([]service.IngredientAmount, 0, len(req.Items))
	for _, it := range req.Items {
		if it == nil {
			return nil, status.Error(codes.InvalidArgument, "nil ingredient")
		}
		amount, err := parseDecimal(it.Amount, "amount")
		if err != nil {
			return nil, err
		}
		items = append(items, service.IngredientAmount{MenuIngredientID: it.MenuIngredientId, Amount: amount})
	}

	if err := h.inventory.DeductForIngredients(ctx, items, req.UserId, req.Reason); err != nil {
		f, err := h.refusal(err)
		if err != nil {
			return nil, err
		}
		return &pb.DeductIngredientsResponse{Success: false, Message: f.message, Failures: f.lines}, nil
	}
	return &pb.DeductIngredientsResponse{Success: true, Message: "Inventory deducted successfully"}, nil
}

func (h *GRPCHandler) UpdateOrderStatus(ctx context.Context, req *pb.UpdateOrderStatusRequest) (*pb.UpdateOrderStatusResponse, error) {
	if err := h.orders.UpdateOrderStatus(ctx, req.OrderId, req.Status); err != nil {
		f, err := h.refusal(err)
		if err != nil {
			return nil, err
		}
		return &pb.UpdateOrderStatusResponse{Success: false, Message: f.message}, nil
	}
	return &pb.UpdateOrderStatusResponse{Success: true, Message: "Order status updated successfully"}, nil
}

// refusal returns the failure when err is a business refusal that belongs
// in the reply body, and a status error otherwise.
func (h *GRPCHandler) refusal(err error) (failure, error) {
	f := classify(err)
	if f.refused {
		return f, nil
	}
	return failure{}, h.statusError(err)
}

func (h *GRPCHandler) statusError(err error) error {
	f := classify(err)
	if f.grpcCode == codes.Internal {
		h.log.Error("rpc failed", zap.Error(err))
	}
	return status.Error(f.grpcCode, f.message)
}

// TimeoutInterceptor bounds every unary call, like the HTTP timeout
// middleware does for requests.
func TimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs each unary call with its status code.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("grpc request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "%s: not a decimal: %q", field, s)
	}
	return d, nil
}

func toPBShortfalls(in []domain.Shortfall) []*pb.Shortfall {
	if len(in) == 0 {
		return nil
	}
	out := make([]*pb.Shortfall, len(in))
	for i, s := range in {
		out[i] = &pb.Shortfall{
			MaterialId: s.MaterialID,
			Name:       s.Name,
			Needed:     s.Needed.String(),
			Available:  s.Available.String(),
		}
	}
	return out
}
