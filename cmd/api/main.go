package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"chat-store/config"
	"chat-store/internal/docstore"
	"chat-store/internal/handler"
	"chat-store/internal/redis"
	"chat-store/internal/server"
	"chat-store/internal/services"
	"chat-store/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Logger.Sync()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer store.Close()

	var limiter *redis.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		limiter = redis.NewRateLimiter(client, redis.RateLimitConfig{
			PostLimit:  cfg.PostLimit,
			PostWindow: time.Duration(cfg.PostWindowSec) * time.Second,
		})
	} else {
		l.Infof("REDIS_ADDR not set, message rate limiting disabled")
	}

	messageService := services.NewMessageService(store, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Message: handler.NewMessageHandler(messageService),
		Chat:    handler.NewChatHandler(messageService),
	}, store, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

func newStore(cfg *config.Config) (docstore.Store, error) {
	if cfg.StoreBackend == config.BackendMemory {
		return docstore.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	store, err := docstore.NewPostgresStore(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
