package server

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/test.Service/TestMethod"}

func successHandler(ctx context.Context, req any) (any, error) {
	return "success", nil
}

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := LoggingInterceptor(zap.New(core))

	t.Run("successful request", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "test request", testInfo, successHandler)

		require.NoError(t, err)
		assert.Equal(t, "success", resp)
		assert.Equal(t, 1, logs.FilterMessage("gRPC request completed").Len())
	})

	t.Run("client error is logged as warning", func(t *testing.T) {
		_, err := interceptor(context.Background(), "test request", testInfo, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.InvalidArgument, "bad value")
		})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		entries := logs.FilterMessage("gRPC request rejected").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("server error is logged as error", func(t *testing.T) {
		_, err := interceptor(context.Background(), "test request", testInfo, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Internal, "database error")
		})

		assert.Equal(t, codes.Internal, status.Code(err))
		entries := logs.FilterMessage("gRPC request failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(zaptest.NewLogger(t))

	resp, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))

	resp, err = interceptor(context.Background(), nil, testInfo, successHandler)
	assert.NoError(t, err)
	assert.Equal(t, "success", resp)
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	interceptor := MetricsInterceptor(m)

	_, _ = interceptor(context.Background(), nil, testInfo, successHandler)
	_, _ = interceptor(context.Background(), nil, testInfo, successHandler)
	_, _ = interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(testInfo.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(testInfo.FullMethod, "NotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	t.Run("re-registration reuses collectors", func(t *testing.T) {
		again, err := NewMetrics(reg)
		require.NoError(t, err)
		assert.Same(t, m.requests, again.requests)
	})
}

func TestServerBuilderInvalidPort(t *testing.T) {
	_, err := New(WithPort(70000))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid port 70000"))
}

func TestServerBuilderWithLogging(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	server, err := New(
		WithListener(lis),
		WithLogger(zaptest.NewLogger(t)),
		WithLogging(true),
		WithMetrics(reg),
	)
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, server.Shutdown(ctx))
	}()

	server.RegisterServiceWithHealth("test.Service", func(s *grpc.Server) {})
	server.Start()

	conn, err := grpc.NewClient(server.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthClient := healthpb.NewHealthClient(conn)
	for _, svc := range []string{"", "test.Service"} {
		resp, err := healthClient.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	}

	server.SetServiceHealth("test.Service", healthpb.HealthCheckResponse_NOT_SERVING)
	resp, err := healthClient.Check(ctx, &healthpb.HealthCheckRequest{Service: "test.Service"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	count, err := testutil.GatherAndCount(reg, "grpc_server_handled_total")
	require.NoError(t, err)
	assert.Positive(t, count)
}
