package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"chat-render/internal/config"
	"chat-render/internal/db"
	"chat-render/internal/feedback"
	apihttp "chat-render/internal/http"
	"chat-render/internal/llm"
	"chat-render/internal/render"
	"chat-render/internal/repository"
	"chat-render/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	entryRepo := repository.NewPgEntryRepository(pool)

	embedder := llm.NewHTTPEmbedder(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, logger)
	searchSvc := service.NewTextSearchService(logger, embedder, entryRepo, service.DefaultQueryFilters(), cfg.SearchTopK)

	var cache service.RenderCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisRenderCache(redisClient, time.Duration(cfg.RenderCacheTTLMinutes)*time.Minute)
		}
		cancel()
	}

	renderer := render.NewRenderer(cfg.HighlightStyle)
	renderSvc := service.NewRenderService(logger, renderer, cache, render.RelativeTime)

	sender := feedback.NewDisabledSender("feedback upstream not configured")
	if cfg.FeedbackUpstreamURL != "" {
		httpSender, err := feedback.NewHTTPSender(cfg.FeedbackUpstreamURL)
		if err != nil {
			logger.Warn("feedback sender init failed", zap.Error(err))
		} else {
			sender = httpSender
		}
	}

	chatHandler := apihttp.NewChatHandler(logger, renderSvc, sender)
	searchHandler := apihttp.NewSearchHandler(logger, searchSvc)
	router := apihttp.NewRouter(logger, chatHandler, searchHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
