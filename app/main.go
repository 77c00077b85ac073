package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"example.com/catalog-console/app/internal/config"
	"example.com/catalog-console/app/internal/infra/hexapi"
	"example.com/catalog-console/app/internal/infra/logging"
	webhttp "example.com/catalog-console/app/internal/interface/http"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.LoadConsole()
	if err != nil {
		os.Stderr.WriteString("console: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.Install(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("console: init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("console stopped", zap.Error(err))
	}
}

func run(cfg *config.ConsoleConfig, logger *zap.Logger) error {
	backend := hexapi.New(cfg.APIURL, cfg.APIPath, hexapi.WithTimeout(cfg.APITimeout))
	web, err := webhttp.NewWeb(webhttp.Dependencies{
		Backend:      backend,
		CookieSecure: cfg.CookieSecure,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           web.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("console listening",
			zap.String("addr", srv.Addr),
			zap.String("api_url", cfg.APIURL),
			zap.String("api_path", cfg.APIPath),
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

	logger.Info("console shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
