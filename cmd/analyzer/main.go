// Command analyzer runs the menu analysis HTTP service: it accepts a menu
// photo with an allergen list, extracts the text via OCR, and classifies
// every dish against the caller's allergens with a staged LLM pipeline.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/allergymenu/allergymenu-backend/internal/adapter/postgres"
	allergyrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/allergy"
	credentialrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/credential"
	userrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/user"
	"github.com/allergymenu/allergymenu-backend/internal/app"
	"github.com/allergymenu/allergymenu-backend/internal/config"
	"github.com/allergymenu/allergymenu-backend/internal/llm"
	"github.com/allergymenu/allergymenu-backend/internal/ocr"
	"github.com/allergymenu/allergymenu-backend/internal/service/analysis"
	"github.com/allergymenu/allergymenu-backend/internal/service/profile"
	"github.com/allergymenu/allergymenu-backend/internal/transport/middleware"
	"github.com/allergymenu/allergymenu-backend/internal/transport/rest"
	"github.com/allergymenu/allergymenu-backend/internal/vault"
)

// maxImageSize bounds one uploaded menu photo.
const maxImageSize = 10 << 20

func main() {
	if err := run(); err != nil {
		slog.Error("analyzer failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting analyzer",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	cipher, err := vault.New(cfg.Vault.Secret)
	if err != nil {
		return err
	}

	profileSvc := profile.NewService(
		logger,
		userrepo.New(pool),
		allergyrepo.New(pool),
		credentialrepo.New(pool),
		cipher,
		postgres.NewTxManager(pool),
	)
	analysisSvc := analysis.NewService(
		logger,
		profileSvc,
		ocr.NewExtractor(logger, cfg.OCR.Languages, cfg.OCR.UpscaleFactor),
		llm.NewPipeline(logger, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.StageTimeout),
		cfg.OCR.Timeout,
	)

	analyzeHandler := rest.NewAnalyzeHandler(logger, analysisSvc, maxImageSize)
	healthHandler := rest.NewHealthHandler(pool, app.BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", analyzeHandler.Analyze)
	mux.HandleFunc("/live", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)
	mux.HandleFunc("/health", healthHandler.Health)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
