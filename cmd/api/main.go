package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scheduling-optimizer/config"
	_ "scheduling-optimizer/docs" // Swagger docs
	fsRepo "scheduling-optimizer/internal/document/repository/fs"
	"scheduling-optimizer/internal/httpserver"
	plannerUC "scheduling-optimizer/internal/planner/usecase"
	"scheduling-optimizer/pkg/gcalendar"
	"scheduling-optimizer/pkg/log"
)

// @title       Scheduling Optimizer API
// @description Scheduling suggestions, production KPI reports, and a PDF document browser.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Scheduling Optimizer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Documents base dir: %s", cfg.Documents.BaseDir)

	// 3. Google Calendar client (optional)
	var calendar plannerUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendar = calendarClient
		}
	}

	// 4. Document repository
	docRepo := fsRepo.New(logger, fsRepo.Config{
		CacheSize:    cfg.Documents.CacheSize,
		CacheTTL:     cfg.Documents.CacheTTL,
		WatchEnabled: cfg.Documents.WatchEnabled,
	})
	defer docRepo.Close()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AppConfig:    cfg,
		Calendar:     calendar,
		DocumentRepo: docRepo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
