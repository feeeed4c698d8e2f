package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/auth"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/config"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/metrics"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/transport/middleware"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled or
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("quest_timezone", cfg.Quest.Timezone),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	collector := metrics.New()
	svcs, err := NewServices(logger, pool, cfg, collector)
	if err != nil {
		return err
	}

	handler, cleanup := newHTTPHandler(logger, cfg, pool, svcs, collector)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHTTPHandler builds the mux and wraps it in the middleware chain:
// Recovery, RequestID, Logger, Metrics, CORS, RateLimit, Auth.
func newHTTPHandler(
	logger *slog.Logger,
	cfg *config.Config,
	db interface{ Ping(context.Context) error },
	svcs *Services,
	collector *metrics.Collector,
) (http.Handler, func()) {
	h := rest.Handlers{
		Health:   rest.NewHealthHandler(db, svcs.Registry, BuildVersion()),
		Quest:    rest.NewQuestHandler(svcs.Quest, logger),
		Mission:  rest.NewMissionHandler(svcs.Mission, logger),
		Activity: rest.NewActivityHandler(svcs.Activity, logger),
	}
	if cfg.Metrics.Enabled {
		h.Metrics = collector.Handler()
		h.MetricsPath = cfg.Metrics.Path
	}
	mux := rest.NewMux(h)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Metrics(collector, rest.RoutePattern(mux)),
		middleware.CORS(cfg.CORS),
	}

	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		mws = append(mws, limiter.Middleware)
		cleanup = limiter.Stop
	}
	mws = append(mws, middleware.Auth(jwtManager))

	return middleware.Chain(mws...)(mux), cleanup
}
