package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"text-to-calendar/config"
	_ "text-to-calendar/docs" // Swagger docs
	eventHTTP "text-to-calendar/internal/event/delivery/http"
	tgDelivery "text-to-calendar/internal/event/delivery/telegram"
	"text-to-calendar/internal/event/usecase"
	"text-to-calendar/internal/httpserver"
	"text-to-calendar/pkg/gcalendar"
	"text-to-calendar/pkg/llmprovider"
	"text-to-calendar/pkg/log"
	"text-to-calendar/pkg/telegram"
)

// @title       Text to Calendar API
// @description Turns free-form text into Google Calendar deep links, .ics files and calendar events using an LLM.
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

	logger.Info(ctx, "Starting Text to Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := cfg.Validate(); err != nil {
		logger.Errorf(ctx, "Invalid config: %v", err)
		return
	}

	// 3. LLM providers
	llm, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range llm.Providers() {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	// 4. Link builder
	builder, err := usecase.NewLinkBuilder(cfg.Calendar)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize link builder: %v", err)
		return
	}
	logger.Infof(ctx, "Calendar timezone: %s, past year policy: %s",
		builder.Normalizer().Location(), builder.Normalizer().Policy())

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Event UseCase
	eventUC := usecase.New(logger, llm, builder, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, eventUC, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AppConfig:       cfg,
		EventHandler:    eventHTTP.New(logger, eventUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service: the configured URL, or the
// ngrok tunnel when running locally.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
