package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	pb "github.com/godilite/mbti-server/api/v1"
	"github.com/godilite/mbti-server/internal/config"
	handler "github.com/godilite/mbti-server/internal/grpc"
	"github.com/godilite/mbti-server/internal/repository"
	"github.com/godilite/mbti-server/internal/service"
	"github.com/godilite/mbti-server/pkg/cache"
	dbbuilder "github.com/godilite/mbti-server/pkg/database"
	grpcsrv "github.com/godilite/mbti-server/pkg/grpc/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger        *zap.Logger
	dbPool        *sql.DB
	cache         *cache.Cache
	grpcServer    *grpcsrv.Server
	metricsServer *http.Server
	metricsLis    net.Listener
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	a := &App{logger: logger, dbPool: dbPool}
	if err := a.build(ctx, cfg); err != nil {
		a.closeResources()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, cfg *config.Config) error {
	resultRepo := repository.NewAssessmentResultRepository(a.dbPool)
	if err := resultRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("schema init failed: %w", err)
	}

	// Handlers take the interface; leave it nil rather than wrapping a nil *cache.Cache.
	var cacher handler.Cacher
	if cfg.RedisAddr != "" {
		cacheClient, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithKeyPrefix(cfg.RedisKeyPrefix),
		)
		if err != nil {
			return fmt.Errorf("cache init failed: %w", err)
		}
		a.cache = cacheClient
		cacher = cacheClient
		a.logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		a.logger.Info("REDIS_ADDR not set, result caching disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	assessmentService := service.NewAssessmentService(resultRepo, a.logger,
		service.WithSessionTTL(cfg.SessionTTL),
		service.WithMaxSessions(cfg.MaxSessions),
		service.WithTieBreak(cfg.TieBreak),
		service.WithMetrics(service.MustNewMetrics(registry)),
	)

	if cfg.MetricsPort > 0 {
		lis, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.MetricsPort)))
		if err != nil {
			return fmt.Errorf("metrics listener failed: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		a.metricsLis = lis
		a.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	grpcHandlers := handler.NewGRPCHandlers(assessmentService, cacher, a.logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(a.logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(cfg.GRPCLoggingEnabled),
		grpcsrv.WithMetrics(registry),
	)
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}
	a.grpcServer = grpcServer

	grpcServer.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterAssessmentServer(s, grpcHandlers)
	})

	return nil
}

// GRPCAddr is the address the gRPC server listens on.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcServer.Addr()
}

// MetricsAddr is the /metrics listener address, or nil when metrics are disabled.
func (a *App) MetricsAddr() net.Addr {
	if a.metricsLis == nil {
		return nil
	}
	return a.metricsLis.Addr()
}

// Run starts the application and blocks until ctx is canceled, then shuts down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	if a.metricsServer != nil {
		go func() {
			a.logger.Info("metrics server listening", zap.String("addr", a.metricsLis.Addr().String()))
			if err := a.metricsServer.Serve(a.metricsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	<-ctx.Done()
	a.logger.Info("application shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.grpcServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	a.closeResources()

	if len(errs) == 0 {
		a.logger.Info("graceful shutdown completed successfully")
	}
	return errors.Join(errs...)
}

func (a *App) closeResources() {
	if a.metricsLis != nil {
		_ = a.metricsLis.Close()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}
}
