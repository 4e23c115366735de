package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"techmart-assistant/internal/catalog"
	"techmart-assistant/internal/config"
	"techmart-assistant/internal/database"
	"techmart-assistant/internal/logger"
	"techmart-assistant/internal/repository"
	"techmart-assistant/internal/server"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	done <- true
}

// loadCatalog builds the product catalog: from the database when one is
// configured, from the embedded sample set otherwise. Either way the
// catalog is immutable after this point.
func loadCatalog(cfg *config.Config, log *zap.Logger) (*catalog.Catalog, *sql.DB, error) {
	if !cfg.DatabaseConfigured() {
		log.Info("No catalog database configured, using embedded sample catalog")
		return catalog.New(catalog.Sample()), nil, nil
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := repository.NewCatalogRepository(db).LoadAll(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	log.Info("Catalog loaded from database", zap.Int("products", len(products)))
	return catalog.New(products), db, nil
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting TechMart assistant API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	// Fail fast in production when required credentials are missing
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	cat, db, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog", zap.Error(err))
	}
	log.Info("Catalog ready", zap.Int("products", cat.Len()))

	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatal("Redis unavailable", zap.Error(err))
		}
		cancel()
		log.Info("Connected to Redis", zap.String("host", cfg.Redis.Host))
	}

	// Create server
	srv := server.NewServer(cfg, log, cat, db, redisClient)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
