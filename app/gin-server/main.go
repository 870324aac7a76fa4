package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/chatrelay/config"
	"github.com/yoockh/chatrelay/internal/api/handlers"
	"github.com/yoockh/chatrelay/internal/api/routes"
	"github.com/yoockh/chatrelay/internal/logger"
	"github.com/yoockh/chatrelay/internal/providers/llm"
	"github.com/yoockh/chatrelay/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		l.WithError(err).WithField("store", cfg.Store.Kind).Fatal("record store init failed")
	}
	defer func() {
		if err := store.Close(); err != nil {
			l.WithError(err).Warn("record store close failed")
		}
	}()
	l.WithField("store", store.Name()).Info("record store ready")

	deps := routes.Deps{
		Logger:      l,
		Interaction: handlers.NewInteractionHandler(services.NewRecorderService(store, cfg.Store.WriteTimeout, l)),
	}
	if cfg.Completion.Enabled {
		provider := llm.NewFromConfig(ctx, cfg.Completion, l)
		if c, ok := provider.(interface{ Close() error }); ok {
			defer c.Close()
		}
		deps.Completion = handlers.NewCompletionHandler(services.NewCompletionService(provider, cfg.Completion.Timeout, l))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.NewRouter(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		l.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		l.WithError(err).Error("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.WithError(err).Warn("graceful shutdown incomplete")
	}
	l.Info("server stopped")
}
