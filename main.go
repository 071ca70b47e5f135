package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"todosheet/api"
	"todosheet/domain"
	"todosheet/notify"
	"todosheet/storage"
)

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		credentialsPath = "credentials.json"
	}
	sheetName := os.Getenv("SHEET_NAME")

	ctx := context.Background()
	store, err := storage.New(ctx, spreadsheetID, credentialsPath, sheetName)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	if initSheet, err := strconv.ParseBool(os.Getenv("INIT_SHEET")); err == nil && initSheet {
		if err := store.EnsureHeader(ctx); err != nil {
			log.Fatalf("init sheet: %v", err)
		}
	}

	logger := log.New()
	svc := domain.NewTaskService(store, logger)

	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		logger.Warn("WEBHOOK_URL not set; reminder digests will not be delivered")
	}
	webhook := notify.NewWebhook(webhookURL, logger)
	reminder := domain.NewReminderJob(store, webhook, logger)

	if v := os.Getenv("REMINDER_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			log.Fatalf("invalid REMINDER_INTERVAL: %v", err)
		}
		go runReminderLoop(ctx, reminder, interval)
	}

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	api.Register(e, svc, reminder, logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	e.Logger.Fatal(e.Start(listenAddr))
}

func runReminderLoop(ctx context.Context, job *domain.ReminderJob, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		job.Run(ctx)
	}
}
