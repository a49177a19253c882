package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/masanaritanaka/line-gpt-bot/internal/bot"
	"github.com/masanaritanaka/line-gpt-bot/internal/config"
	apihttp "github.com/masanaritanaka/line-gpt-bot/internal/http"
	"github.com/masanaritanaka/line-gpt-bot/internal/line"
	"github.com/masanaritanaka/line-gpt-bot/internal/llm"
	"github.com/masanaritanaka/line-gpt-bot/internal/quota"
	"github.com/masanaritanaka/line-gpt-bot/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	timeout := time.Duration(cfg.OutboundTimeoutSec) * time.Second
	llmClient := llm.NewHTTPClient(cfg.CompletionBaseURL, cfg.CompletionAPIKey, cfg.CompletionModel, timeout, logger)
	lineClient := line.NewHTTPClient(cfg.LineAPIBaseURL, cfg.ChannelAccessToken, timeout)

	var quotaStore quota.Store = quota.NewMemoryStore(cfg.DailyLimit)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, falling back to memory quota", zap.Error(err))
		} else {
			quotaStore = quota.NewRedisStore(redisClient, cfg.DailyLimit)
		}
		cancel()
	}
	sessionStore := session.NewMemoryStore(cfg.MaxHistory)

	botSvc := bot.NewService(logger, quotaStore, sessionStore, llmClient, lineClient)
	webhookHandler := apihttp.NewWebhookHandler(logger, cfg.ChannelSecret, botSvc)
	router := apihttp.NewRouter(logger, webhookHandler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
