package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/db"
	"liyu1981.xyz/solar-dashboard-service/pkg/mockdata"
	_ "liyu1981.xyz/solar-dashboard-service/pkg/testing"

	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard/mocks"
)

const bufSize = 1024 * 1024

func startTestServer(t *testing.T, limiter *dashboard.RateLimiterStore) (DashboardServiceClient, *dashboard.Dashboard) {
	listener := bufconn.Listen(bufSize)

	source := mockdata.NewSource(1, func() time.Time {
		return time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	})
	core := dashboard.New(db.GetInstance(db.UseMemorySqliteDialector()), source, classify.DefaultRegistry())

	dashServer := DashboardServer{Dashboard: core, RateLimiterStore: limiter}
	interceptor := grpc.UnaryInterceptor(dashServer.CreateRateLimitInterceptor([]string{
		MethodClassify,
		MethodSummarize,
		MethodGetOverview,
	}))
	server := grpc.NewServer(interceptor)
	RegisterDashboardServiceServer(server, &dashServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDashboardServiceClient(conn), core
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestClassify(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.Classify(context.Background(), mustStruct(t, map[string]any{
		"table": "efficiency",
		"value": 90.0,
	}))
	require.NoError(t, err)
	out := resp.AsMap()
	assert.Equal(t, "excellent", out["tier"])
	assert.Equal(t, "green", out["color"])
	assert.Equal(t, 0.0, out["rank"])

	resp, err = client.Classify(context.Background(), mustStruct(t, map[string]any{
		"table": "battery_color",
		"value": 30.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, "low", resp.AsMap()["tier"])
}

func TestClassifyEdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	cases := []map[string]any{
		{"value": 50.0},
		{"table": "efficiency"},
		{"table": "", "value": 50.0},
		{"table": "temperature", "value": 50.0},
	}
	for _, c := range cases {
		_, err := client.Classify(context.Background(), mustStruct(t, c))
		require.Error(t, err, c)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), c)
	}
}

func TestSummarize(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.Summarize(context.Background(), mustStruct(t, map[string]any{
		"values": []any{85.2, 78.9, 92.4},
		"table":  "efficiency",
	}))
	require.NoError(t, err)
	out := resp.AsMap()
	assert.Equal(t, 3.0, out["count"])
	assert.InDelta(t, 256.5, out["total"].(float64), 1e-9)
	assert.InDelta(t, 85.5, out["average"].(float64), 1e-9)
	assert.Equal(t, 78.9, out["min"])
	assert.Equal(t, 92.4, out["max"])
	assert.Equal(t, "good", out["rating"].(map[string]any)["tier"])

	// an empty list reduces to zeros
	resp, err = client.Summarize(context.Background(), mustStruct(t, map[string]any{
		"values": []any{},
	}))
	require.NoError(t, err)
	out = resp.AsMap()
	assert.Equal(t, 0.0, out["count"])
	assert.Equal(t, 0.0, out["average"])
	assert.NotContains(t, out, "rating")

	_, err = client.Summarize(context.Background(), mustStruct(t, map[string]any{
		"values": []any{1.0},
		"table":  "nope",
	}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetOverview(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.GetOverview(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	out := resp.AsMap()
	assert.Equal(t, 12.1, out["currentPower"])
	assert.Equal(t, "12:00 PM", out["peakLabel"])
	assert.Len(t, out["powerCurve"], 24)
}

func TestGetOverviewError(t *testing.T) {
	common.SetTestLoggerNop()
	client, core := startTestServer(t, nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIOverview := mocks.NewMockIOverview(ctrl)
	core.Overview = mockIOverview
	mockIOverview.EXPECT().
		GetOverview().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	_, err := client.GetOverview(context.Background(), &emptypb.Empty{})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRateLimitInterceptor(t *testing.T) {
	common.SetTestLoggerNop()

	limiter := dashboard.NewRateLimiterStore(0, 0)
	client, _ := startTestServer(t, limiter)

	clientID := uuid.NewString()
	limiter.SetLimiter(clientID, 0.01, 2)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.MetadataClientID, clientID)

	req := mustStruct(t, map[string]any{"table": "efficiency", "value": 85.0})

	_, err := client.Classify(ctx, req)
	require.NoError(t, err)
	_, err = client.Classify(ctx, req)
	require.NoError(t, err)

	_, err = client.Classify(ctx, req)
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// a client without a configured limiter gets the empty default bucket
	other := metadata.AppendToOutgoingContext(context.Background(), common.MetadataClientID, uuid.NewString())
	_, err = client.GetOverview(other, &emptypb.Empty{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestClientIDFromContext(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.MetadataClientID, "browser-1"))
	assert.Equal(t, "browser-1", clientIDFromContext(ctx))
	assert.Equal(t, "", clientIDFromContext(context.Background()))
}
