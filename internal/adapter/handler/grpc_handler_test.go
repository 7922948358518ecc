package handler

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/rl1809/stockledger/internal/adapter/handler/pb"
)

const bufSize = 1024 * 1024

func startGRPC(t *testing.T, env *testEnv) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	log := zap.NewNop()

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(log),
		TimeoutInterceptor(5*time.Second),
	))
	pb.RegisterInventoryServer(srv, NewGRPCHandler(env.orders, env.inventory, log))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus(pb.Inventory_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
	})
	return conn
}

func TestGRPC_Health(t *testing.T) {
	conn := startGRPC(t, newTestEnv(t))

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(t.Context(), &grpc_health_v1.HealthCheckRequest{Service: pb.Inventory_ServiceDesc.ServiceName})

	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestGRPC_ServiceDescriptorRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(pb.Inventory_ServiceDesc.ServiceName))
	require.NoError(t, err)

	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, len(pb.Inventory_ServiceDesc.Methods), svc.Methods().Len())
	for _, m := range pb.Inventory_ServiceDesc.Methods {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

func TestGRPC_WireFormatIsProtobuf(t *testing.T) {
	in := &pb.CreateOrderRequest{
		RequestId: "req-1",
		UserId:    testUser,
		Items:     []*pb.OrderItem{{ItemId: pizzaID, Quantity: 2}},
	}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	var out pb.CreateOrderRequest
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.True(t, proto.Equal(in, &out))
	assert.Equal(t, pizzaID, out.GetItems()[0].GetItemId())
}

func TestGRPC_DeductAddons(t *testing.T) {
	env := newTestEnv(t)
	client := pb.NewInventoryClient(startGRPC(t, env))
	ctx := t.Context()

	resp, err := client.DeductAddons(ctx, &pb.DeductAddonsRequest{
		Names:   []string{"Cheese"},
		Amounts: []string{"3.0"},
		UserId:  testUser,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(1), resp.Applied)

	resp, err = client.DeductAddons(ctx, &pb.DeductAddonsRequest{
		Names:   []string{"Cheese"},
		Amounts: []string{"3.0"},
		UserId:  testUser,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"not enough stock for Cheese"}, resp.Failures)

	m, err := env.store.GetMaterial(ctx, env.cheeseID)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(dec("2")))
}

func TestGRPC_DeductAddons_InvalidArgument(t *testing.T) {
	client := pb.NewInventoryClient(startGRPC(t, newTestEnv(t)))

	_, err := client.DeductAddons(t.Context(), &pb.DeductAddonsRequest{
		Names:   []string{"Cheese", "Olives"},
		Amounts: []string{"1"},
		UserId:  testUser,
	})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_CreateOrderAndStatus(t *testing.T) {
	env := newTestEnv(t)
	client := pb.NewInventoryClient(startGRPC(t, env))
	ctx := t.Context()

	created, err := client.CreateOrder(ctx, &pb.CreateOrderRequest{
		UserId:      testUser,
		Items:       []*pb.OrderItem{{ItemId: pizzaID, Quantity: 1}},
		TotalAmount: "9.95",
	})
	require.NoError(t, err)
	require.True(t, created.Success, created.Message)
	require.NotEmpty(t, created.OrderId)

	av, err := client.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{OrderId: created.OrderId})
	require.NoError(t, err)
	assert.True(t, av.Sufficient)
	assert.Equal(t, "available", av.UpdatedAvailability)

	upd, err := client.UpdateOrderStatus(ctx, &pb.UpdateOrderStatusRequest{OrderId: created.OrderId, Status: "cancelled"})
	require.NoError(t, err)
	assert.True(t, upd.Success)

	upd, err = client.UpdateOrderStatus(ctx, &pb.UpdateOrderStatusRequest{OrderId: created.OrderId, Status: "processing"})
	require.NoError(t, err)
	assert.False(t, upd.Success)

	_, err = client.UpdateOrderStatus(ctx, &pb.UpdateOrderStatusRequest{OrderId: created.OrderId, Status: "lost"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.UpdateOrderStatus(ctx, &pb.UpdateOrderStatusRequest{OrderId: "missing", Status: "processing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGRPC_CreateOrderShortfall(t *testing.T) {
	client := pb.NewInventoryClient(startGRPC(t, newTestEnv(t)))

	resp, err := client.CreateOrder(t.Context(), &pb.CreateOrderRequest{
		UserId: testUser,
		Items:  []*pb.OrderItem{{ItemId: pizzaID, Quantity: 5}},
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.Len(t, resp.Shortfalls, 1)
	assert.Equal(t, "Dough", resp.Shortfalls[0].Name)
	assert.Equal(t, "5", resp.Shortfalls[0].Needed)
	assert.Equal(t, "3", resp.Shortfalls[0].Available)
}

func TestGRPC_DeductIngredients(t *testing.T) {
	env := newTestEnv(t)
	client := pb.NewInventoryClient(startGRPC(t, env))
	lines, err := env.store.RecipeLinesFor(t.Context(), pizzaID)
	require.NoError(t, err)

	resp, err := client.DeductIngredients(t.Context(), &pb.DeductIngredientsRequest{
		Items:  []*pb.IngredientAmount{{MenuIngredientId: lines[0].ID, Amount: "1.5"}},
		UserId: testUser,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = client.DeductIngredients(t.Context(), &pb.DeductIngredientsRequest{
		Items:  []*pb.IngredientAmount{{MenuIngredientId: lines[0].ID, Amount: "lots"}},
		UserId: testUser,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
