// README: Entry point; loads config, wires the workflow and session store, serves HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmate/internal/ai"
	"tripmate/internal/config"
	httptransport "tripmate/internal/http"
	"tripmate/internal/infra"
	"tripmate/internal/logging"
	"tripmate/internal/planner"
	"tripmate/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Fatal("session store init", zap.Error(err))
	}

	opts := []planner.Option{planner.WithLogger(logger)}
	var gemini *ai.GeminiExtractor
	if cfg.GeminiAPIKey != "" {
		gemini, err = ai.NewGeminiExtractor(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		opts = append(opts, planner.WithFallbackExtractor(gemini))
		logger.Info("gemini fallback extractor enabled")
	}
	workflow := planner.New(opts...)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Workflow: workflow,
		Store:    store,
		Log:      logger,
	})

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: handler.Routes(),
	}

	go func() {
		logger.Info("listening", zap.String("addr", server.Addr), zap.String("backend", cfg.SessionBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func buildStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.SessionBackend {
	case "redis":
		client, err := infra.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.SessionTTL()), nil
	case "postgres":
		pool, err := infra.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store := session.NewPostgresStore(pool)
		if err := store.Init(ctx); err != nil {
			return nil, fmt.Errorf("init sessions table: %w", err)
		}
		return store, nil
	default:
		return session.NewMemoryStore(), nil
	}
}
