package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reminder_planner_bot/internal/app"
	"reminder_planner_bot/internal/infra/config"
	idb "reminder_planner_bot/internal/infra/database"
	"reminder_planner_bot/internal/infra/logger"
	"reminder_planner_bot/internal/infra/scheduler"
	itelegram "reminder_planner_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Reminder Planner Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully.")

	// Initialize Repository
	taskRepo := idb.NewPostgresTaskRepository(db)
	mainLogger.Info("Task repository initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithField("component", "telebot")
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			// One bad update must never stop the poll loop.
			entry.WithError(err).Error("Unhandled error while processing update")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	telegramClient := itelegram.NewTelebotAdapter(bot)

	// Initialize Services
	reminderService := app.NewReminderService(taskRepo, telegramClient, logger.Get().WithField("component", "reminder_service"))
	mainLogger.Info("Reminder service initialized.")
	dispatchService := app.NewDispatchServiceImpl(taskRepo, telegramClient, logger.Get().WithField("component", "dispatch_service"))
	mainLogger.Info("Dispatch service initialized.")

	// Initialize DispatchScheduler
	dispatchScheduler := scheduler.NewDispatchScheduler(
		dispatchService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecDispatch,
	)
	dispatchScheduler.Start() // Start the cron job

	// Register Handlers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	itelegram.RegisterMessageHandlers(ctx, bot, reminderService, logger.Get().WithField("component", "telegram_handlers"))
	mainLogger.Info("Message handlers registered.")

	mainLogger.Info("Application setup complete. Bot and Scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	dispatchScheduler.Stop()
	bot.Stop()
	// db.Close() is handled by defer
	mainLogger.Info("Application shut down gracefully.")
}
