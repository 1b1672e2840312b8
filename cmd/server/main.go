package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"woofer/internal/api"
	"woofer/internal/app/ratelimit"
	"woofer/internal/app/sanitize"
	"woofer/internal/app/service"
	"woofer/internal/cache"
	"woofer/internal/domain/repository"
	platformcache "woofer/internal/platform/cache"
	"woofer/internal/platform/config"
	"woofer/internal/platform/database"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load Configuration
	config.Load()
	logger.Info("Configuration loaded")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()
	database.Migrate()
	logger.Info("Database connected")

	// 3. Initialize Redis
	platformcache.ConnectRedis()
	defer platformcache.CloseRedis()
	logger.Info("Redis connected")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	woofRepo := repository.NewPgWoofRepository(database.DB)

	// 5. Initialize core components
	limiter := ratelimit.New(config.AppConfig.WoofRateWindow, config.AppConfig.WoofRateMax)
	sanitizer := sanitize.New(config.AppConfig.ProfanityExtraWords)
	woofCache := cache.NewWoofCache(platformcache.RDB, config.AppConfig.WoofCacheTTL)

	// 6. Initialize Services
	userService := service.NewUserService(userRepo)
	woofService := service.NewWoofService(woofRepo, limiter, sanitizer, woofCache, logger)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(userService, woofService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Could not listen on %s: %v", config.AppConfig.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped gracefully")
}
