// Command bot runs the messaging front end: it receives LINE webhook
// events and/or Telegram long-poll updates, drives the per-user dialog
// state machine, and forwards menu photos to the analysis service.
//
// Each platform adapter is enabled by its credentials being present; at
// least one platform must be configured.
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

	"github.com/allergymenu/allergymenu-backend/internal/adapter/analyzer"
	lineadapter "github.com/allergymenu/allergymenu-backend/internal/adapter/line"
	"github.com/allergymenu/allergymenu-backend/internal/adapter/postgres"
	allergyrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/allergy"
	credentialrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/credential"
	userrepo "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres/user"
	"github.com/allergymenu/allergymenu-backend/internal/adapter/telegram"
	"github.com/allergymenu/allergymenu-backend/internal/app"
	"github.com/allergymenu/allergymenu-backend/internal/bot"
	"github.com/allergymenu/allergymenu-backend/internal/config"
	"github.com/allergymenu/allergymenu-backend/internal/service/profile"
	"github.com/allergymenu/allergymenu-backend/internal/transport/middleware"
	"github.com/allergymenu/allergymenu-backend/internal/transport/rest"
	"github.com/allergymenu/allergymenu-backend/internal/vault"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bot failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telegramEnabled := cfg.Telegram.Token != ""
	lineEnabled := cfg.Line.ChannelSecret != "" || cfg.Line.ChannelToken != ""
	if !telegramEnabled && !lineEnabled {
		return errors.New("no platform configured: set TELEGRAM_BOT_TOKEN and/or LINE channel credentials")
	}
	if lineEnabled {
		if err := cfg.ValidateLine(); err != nil {
			return err
		}
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting bot",
		slog.String("version", app.BuildVersion()),
		slog.Bool("telegram", telegramEnabled),
		slog.Bool("line", lineEnabled),
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
	analyzerClient := analyzer.New(logger, cfg.Analyzer.URL, cfg.Analyzer.Timeout)

	dispatcher := bot.NewDispatcher(
		logger,
		profileSvc,
		analyzerClient,
		bot.NewStateStore(),
		cfg.Analyzer.Timeout,
	)
	defer dispatcher.Wait()

	errCh := make(chan error, 2)

	if telegramEnabled {
		tg, err := telegram.New(logger, cfg.Telegram.Token, cfg.Telegram.PollTimeout, dispatcher)
		if err != nil {
			return err
		}
		go func() {
			if err := tg.Run(ctx); err != nil {
				errCh <- fmt.Errorf("telegram: %w", err)
			}
		}()
	}

	var srv *http.Server
	if lineEnabled {
		lineAdapter, err := lineadapter.New(logger, cfg.Line.ChannelSecret, cfg.Line.ChannelToken, dispatcher)
		if err != nil {
			return err
		}

		healthHandler := rest.NewHealthHandler(pool, app.BuildVersion())

		mux := http.NewServeMux()
		mux.Handle(cfg.Line.WebhookPath, lineAdapter)
		mux.HandleFunc("/live", healthHandler.Live)
		mux.HandleFunc("/ready", healthHandler.Ready)

		handler := middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
		)(mux)

		srv = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}
		go func() {
			logger.Info("webhook server listening", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("line webhook: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
