package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/api"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/chat"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/config"
	mongodb "github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/db/mongo"
	redisdb "github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/db/redis"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/email"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/storage"
	"github.com/heathcliff2012/MERN-ConnectLive/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// --- Data stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// --- Side channels ---
	mailer := email.NewSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromName, cfg.SendGrid.FromEmail)

	images, err := storage.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region)
	if err != nil {
		return fmt.Errorf("init s3 store: %w", err)
	}

	chatProvider, err := chat.NewStreamProvider(cfg.Stream.APIKey, cfg.Stream.APISecret)
	if err != nil {
		return fmt.Errorf("init stream chat: %w", err)
	}

	e := api.NewRouter(db, rdb, cfg, mailer, images, chatProvider)

	// --- Serve with graceful shutdown ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		errCh <- e.Start(":" + cfg.Port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ensureIndexes creates the collection indexes up front so the unique email
// constraint exists before the first signup is accepted.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		EnsureIndexes(context.Context) error
	}{
		mongodb.NewUserRepository(db),
		mongodb.NewFriendRequestRepository(db),
		mongodb.NewPostRepository(db),
		mongodb.NewCommentRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
