package main

import (
	"context"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	mainLogger := logger.Component("main")

	cfg, err := config.Load()
	if err != nil {
		mainLogger.WithError(err).Fatal("Required configuration is missing, stopping")
	}
	logger.Init(cfg)
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"chat_id":     cfg.TelegramChatID,
	}).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	journal, closeJournal := openJournal(ctx, cfg.DatabaseURL, mainLogger)
	defer closeJournal()

	bot, err := telegram.NewBot(cfg.TelegramToken, "")
	if err != nil {
		mainLogger.WithError(err).Fatal("Telegram bot settings are invalid, stopping")
	}

	statusService := app.NewStatusService(
		practicum.NewClient(practicum.Config{Token: cfg.PracticumToken}),
		telegram.NewTelebotAdapter(bot),
		journal,
		cfg.TelegramChatID,
		config.LookbackWindow,
		logger.Component("status_service"),
	)

	pollScheduler := scheduler.NewPollScheduler(statusService, config.RetryPeriod, logger.Component("scheduler"))
	mainLogger.WithField("retry_period", config.RetryPeriod.String()).Info("Application setup complete, polling homework status")

	pollScheduler.Run(ctx)
	mainLogger.Info("Application shut down gracefully.")
}

// openJournal connects the optional notification journal. Database problems are
// logged and leave the journal disabled; they never stop the bot.
func openJournal(ctx context.Context, databaseURL string, log *logrus.Entry) (notification.Journal, func()) {
	if databaseURL == "" {
		return nil, func() {}
	}

	db, err := idb.NewPostgresConnection(databaseURL)
	if err != nil {
		log.WithError(err).Error("Could not connect to database, notification journal disabled")
		return nil, func() {}
	}

	repo := idb.NewPostgresJournalRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.WithError(err).Error("Could not prepare notification journal, journal disabled")
		db.Close()
		return nil, func() {}
	}

	log.Info("Notification journal enabled")
	return repo, func() { db.Close() }
}
