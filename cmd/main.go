/*
Package main is the entry point for the French Reborn server.

It is responsible for loading configuration, initializing the global logging system,
opening the database and applying migrations, seeding the owner account and default
province, setting up the HTTP server, and gracefully handling operating system
interrupt signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/chat"
	"frenchreborn/internal/app/db"
	"frenchreborn/internal/configs"
	"frenchreborn/internal/handler"
	"frenchreborn/internal/pkg/auth/jwt"
	"frenchreborn/internal/pkg/logx"
	"frenchreborn/internal/pkg/metrics"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment(), cfg.LogLevel)
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Dur("token_ttl", cfg.TokenTTL).
		Bool("redis_denylist", cfg.RedisAddr != "").
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	store := db.NewStore(pool)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	if _, err := chat.Bootstrap(ctx, store, hasher, chat.BootstrapConfig{
		OwnerUsername:   cfg.OwnerUsername,
		OwnerPassword:   cfg.OwnerPassword,
		DefaultRoomName: cfg.DefaultRoomName,
	}); err != nil {
		logx.Fatal(err, "Failed to bootstrap owner account and default province")
	}

	var denylist jwt.Denylist = jwt.NewMemoryDenylist()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logx.Fatal(err, "Failed to reach Redis", "addr", cfg.RedisAddr)
		}
		denylist = jwt.NewRedisDenylist(client)
	}

	deps := handler.NewAppDeps(cfg, store, hasher, denylist, metrics.New())

	// Setup HTTP server and routes
	router := handler.Router(ctx, deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("French Reborn server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
