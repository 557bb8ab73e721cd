package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Babismam/gym-frontend/internal/config"
	"github.com/Babismam/gym-frontend/internal/gymapi"
	"github.com/Babismam/gym-frontend/internal/logger"
	"github.com/Babismam/gym-frontend/internal/notify"
	"github.com/Babismam/gym-frontend/internal/server"
)

// @title Gym Dashboard API
// @version 1.0
// @description Role-based dashboard front end for the gym management system.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting gym dashboard front end")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	apiClient := gymapi.NewClient(cfg.GymAPIURL, cfg.GymAPITimeout)
	logger.Info("Gym API client ready", "base_url", cfg.GymAPIURL)

	notifyService := notify.New(cfg.RedisAddr)
	defer notifyService.Close()
	logger.Info("Notification service initialized")

	srv := server.New(cfg, apiClient, notifyService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
