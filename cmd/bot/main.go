package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Chendasum/7daymoneyflowreset/internal/config"
	"github.com/Chendasum/7daymoneyflowreset/internal/delivery/telegram"
	"github.com/Chendasum/7daymoneyflowreset/internal/logger"
	"github.com/Chendasum/7daymoneyflowreset/internal/repository"
	"github.com/Chendasum/7daymoneyflowreset/internal/service"
	"github.com/Chendasum/7daymoneyflowreset/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("failed to create bot", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "ចាប់ផ្តើមកម្មវិធី"},
		{Command: "financial_quiz", Description: "ពិនិត្យសុខភាពហិរញ្ញវត្ថុ ២ នាទី"},
		{Command: "health_check", Description: "ការវាយតម្លៃហិរញ្ញវត្ថុ"},
		{Command: "pricing", Description: "មើលតម្លៃ"},
		{Command: "whoami", Description: "មើលព័ត៌មានគណនី"},
		{Command: "help", Description: "ជំនួយ"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	zlog.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zlog.Fatal("database is not configured", zap.Error(err))
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		zlog.Fatal("failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = int32(cfg.DB.MaxConnections)
	poolConfig.MaxConnLifetime = cfg.DB.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	sessions := storage.NewSessionStore()

	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(sessions)
	accessService := service.NewAccessService(userRepo, service.NewTierManager(), zlog)

	// Abandoned quiz sessions are swept hourly.
	c := cron.New()
	_, err = c.AddFunc("@hourly", func() {
		if removed := sessions.PurgeExpired(cfg.Quiz.SessionTTL); removed > 0 {
			zlog.Info("purged expired quiz sessions", zap.Int("count", removed))
		}
	})
	if err != nil {
		zlog.Fatal("failed to schedule session purge", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	handler := telegram.NewHandler(
		bot,
		zlog,
		quizService,
		accessService,
		userService,
		telegram.Options{
			MaxMessageLength: cfg.Telegram.MaxMessageLength,
			ChunkDelay:       cfg.Telegram.ChunkDelay,
			FollowUpDelay:    cfg.Quiz.FollowUpDelay,
		},
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("handler stopped", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}
