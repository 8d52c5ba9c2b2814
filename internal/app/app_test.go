package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/godilite/mbti-server/internal/config"
	"github.com/godilite/mbti-server/internal/mbti"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

// testConfig uses a private in-memory database and disables the metrics endpoint.
func testConfig() *config.Config {
	return &config.Config{
		AppEnv:      "test",
		DBDriver:    "sqlite3",
		DBPath:      ":memory:",
		GRPCPort:    50051,
		MetricsPort: 0,
		CacheTTL:    time.Minute,
		SessionTTL:  time.Hour,
		MaxSessions: 10,
		TieBreak:    mbti.TieBreakSecond,
	}
}

func TestNewAppDatabaseFailure(t *testing.T) {
	cfg := testConfig()
	cfg.DBDriver = "no-such-driver"

	_, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database init failed")
}

func TestNewAppCacheFailure(t *testing.T) {
	cfg := testConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := NewApp(ctx, cfg, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache init failed")
}

func TestAppServesAndShutsDown(t *testing.T) {
	cfg := testConfig()
	cfg.GRPCPort = freePort(t)
	cfg.MetricsPort = freePort(t)

	application, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	conn, err := grpc.NewClient(application.GRPCAddr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	health, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: pb.ServiceName}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)

	questions, err := pb.NewAssessmentClient(conn).ListQuestions(callCtx, &pb.ListQuestionsRequest{})
	require.NoError(t, err)
	assert.Len(t, questions.Questions, 16)

	resp, err := http.Get("http://" + application.MetricsAddr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "grpc_server_handled_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
