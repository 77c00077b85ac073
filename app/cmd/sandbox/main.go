// Command sandbox serves a local copy of the remote admin API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"example.com/catalog-console/app/internal/config"
	domproduct "example.com/catalog-console/app/internal/domain/product"
	"example.com/catalog-console/app/internal/infra/idgen"
	"example.com/catalog-console/app/internal/infra/logging"
	"example.com/catalog-console/app/internal/infra/persistence/bolt"
	"example.com/catalog-console/app/internal/infra/persistence/memory"
	"example.com/catalog-console/app/internal/infra/persistence/mysql"
	"example.com/catalog-console/app/internal/infra/persistence/postgres"
	"example.com/catalog-console/app/internal/infra/security"
	"example.com/catalog-console/app/internal/interface/sandboxapi"
	authuc "example.com/catalog-console/app/internal/usecase/auth"
	productuc "example.com/catalog-console/app/internal/usecase/product"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.LoadSandbox()
	if err != nil {
		os.Stderr.WriteString("sandbox: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.Install(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("sandbox: init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("sandbox stopped", zap.Error(err))
	}
}

func run(cfg *config.SandboxConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher := security.NewBcryptService(0)
	hash, err := hasher.Prepare(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	users := memory.NewUserRepository()
	users.Add(cfg.AdminUser, hash)

	ids, err := idgen.NewSnowflake(1)
	if err != nil {
		return err
	}

	deps := sandboxapi.Dependencies{
		AuthService:    authuc.NewService(users, hasher, security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)),
		ProductService: productuc.NewService(store, ids),
		APIPath:        cfg.APIPath,
		Logger:         logger,
	}
	if pinger, ok := store.(sandboxapi.Pinger); ok {
		deps.Store = pinger
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           sandboxapi.NewAPI(deps).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("sandbox listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store),
			zap.String("api_path", cfg.APIPath),
			zap.String("admin", cfg.AdminUser),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("sandbox shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore returns the product store named by cfg.Store and a func
// releasing it.
func openStore(ctx context.Context, cfg *config.SandboxConfig) (domproduct.Repository, func(), error) {
	switch cfg.Store {
	case "bolt":
		repo, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		repo := mysql.NewProductRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("mysql schema: %w", err)
		}
		return repo, func() { _ = db.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		repo := postgres.NewProductRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		return repo, pool.Close, nil

	default:
		return memory.NewProductRepository(), func() {}, nil
	}
}
