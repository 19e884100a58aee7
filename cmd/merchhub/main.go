package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/merchhub/internal/catalog"
	"github.com/nikolayk812/merchhub/internal/config"
	"github.com/nikolayk812/merchhub/internal/httpapi"
	"github.com/nikolayk812/merchhub/internal/identity"
	"github.com/nikolayk812/merchhub/internal/migrations"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/nikolayk812/merchhub/internal/repository"
	"github.com/nikolayk812/merchhub/internal/session"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "merchhub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("cfg.Logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := snapshotRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	provider, err := identityProvider(cfg, logger)
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(repo, provider, logger,
		session.WithStorageKey(cfg.StorageKey),
		session.WithCurrency(cfg.Currency),
		session.WithCacheSize(cfg.SessionCacheSize),
		session.WithFlowOptions(cfg.FlowOptions()...),
	)
	if err != nil {
		return fmt.Errorf("session.NewManager: %w", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.API(httpapi.Deps{
			Sessions:         sessions,
			Catalog:          catalog.NewStatic(cfg.Currency),
			Identity:         provider,
			Logger:           logger,
			ImagePlaceholder: cfg.ImagePlaceholder,
			Language:         cfg.Language,
		}),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("addr", cfg.HTTPAddr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}

// snapshotRepository picks Postgres when a database url is configured and
// process memory otherwise.
func snapshotRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (port.SnapshotRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("no database configured, carts are kept in memory")

		repo, err := repository.NewMemorySnapshot()
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewMemorySnapshot: %w", err)
		}
		return repo, func() {}, nil
	}

	poolCfg, err := cfg.PoolConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("cfg.PoolConfig: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	if err := migrations.Up(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrations.Up: %w", err)
	}

	return repository.NewSnapshot(pool), pool.Close, nil
}

func identityProvider(cfg config.Config, logger *zap.Logger) (port.IdentityProvider, error) {
	if cfg.JWTSecret == "" {
		logger.Warn("no jwt secret configured, every caller is anonymous")
		return identity.Anonymous(), nil
	}

	provider, err := identity.NewJWT([]byte(cfg.JWTSecret), logger)
	if err != nil {
		return nil, fmt.Errorf("identity.NewJWT: %w", err)
	}
	return provider, nil
}
