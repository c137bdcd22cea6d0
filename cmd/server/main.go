package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/config"
	"github.com/maxviazov/article-catalog-service/internal/handler"
	"github.com/maxviazov/article-catalog-service/internal/logger"
	postgres "github.com/maxviazov/article-catalog-service/internal/repository"
	pgrepo "github.com/maxviazov/article-catalog-service/internal/repository/postgres"
	"github.com/maxviazov/article-catalog-service/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	connectPgx, err := postgres.New(context.Background(), cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer connectPgx.Close()
	appLogger.Info().Msg("✅ Postgres pool initialized")

	pool := connectPgx.Pool()
	authors := pgrepo.NewAuthorRepository(pool)
	articles := pgrepo.NewArticleRepository(pool)
	comments := pgrepo.NewCommentRepository(pool)
	tx := pgrepo.NewTxManager(pool)
	pinger := pgrepo.NewPinger(pool)

	authorSvc := service.NewAuthorService(authors, appLogger)
	articleSvc := service.NewArticleService(articles, authors, tx, appLogger)
	commentSvc := service.NewCommentService(comments, articles, appLogger)

	if cfg.Logger.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, pinger, authorSvc, articleSvc, commentSvc, cfg.Pagination.DefaultLimit)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("❌ HTTP server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("❌ Graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("✅ Server stopped cleanly")
}
