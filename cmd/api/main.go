package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"checklist-sync/config"
	_ "checklist-sync/docs" // Swagger docs
	"checklist-sync/internal/checklist"
	"checklist-sync/internal/httpserver"
	"checklist-sync/internal/task/repository/memory"
	"checklist-sync/internal/task/usecase"
	"checklist-sync/pkg/log"
)

// @title       Checklist Sync API
// @description Tasks whose description may be a checklist. Status and percent complete follow the checklist.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting checklist-sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	taskRepo, err := memory.New(cfg.Store.Capacity, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}

	checklistSvc := checklist.New()
	taskUC := usecase.New(logger, taskRepo, checklistSvc, usecase.Options{
		StatusField:  cfg.Checklist.StatusField,
		PercentField: cfg.Checklist.PercentField,
	})
	logger.Infof(ctx, "Checklist fields: status=%t percent=%t", cfg.Checklist.StatusField, cfg.Checklist.PercentField)

	// 4. HTTP Server
	requestsPerMin := 0
	if cfg.RateLimit.Enabled {
		requestsPerMin = cfg.RateLimit.RequestsPerMin
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		APIKey:         cfg.HTTPServer.APIKey,
		RequestsPerMin: requestsPerMin,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		TaskUseCase:    taskUC,
		ChecklistSvc:   checklistSvc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
