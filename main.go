package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"dispatch-service/config"
	"dispatch-service/database"
	"dispatch-service/services"
	"dispatch-service/web"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger.Info().Msg(">> Starting dispatch service")

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// 内存仓库，加载种子数据
	repo := services.NewSeedRepository()

	// 可选的数据库存档
	var ticketStore *services.TicketStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
		ticketStore = services.NewTicketStore(db)
		if archived, err := ticketStore.LoadTickets(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to read ticket archive")
		} else {
			logger.Info().Int("archived_tickets", len(archived)).Msg("database connected and migrated")
		}
	} else {
		logger.Info().Msg("no database configured, in-memory only")
	}

	// 派票通道：配置了 token 时走 Telegram，否则模拟投递
	var notifier services.Notifier
	if tg := services.NewTelegramNotifier(cfg.TelegramConfig.Token, logger); tg != nil {
		notifier = tg
	} else {
		notifier = services.NewSimulatedNotifier(logger)
	}

	// 业务服务
	auth := services.NewAuthenticator(repo, cfg.AuthConfig.Password, cfg.AuthConfig.Delay)
	odds := services.NewOddsService(repo, cfg.OddsConfig.RefreshDelay, cfg.OddsConfig.Jitter)
	stats := services.NewStatsService(repo)
	dispatch := services.NewDispatchService(repo, notifier, ticketStore, logger)

	// WebSocket Hub
	wsHub := web.NewHub(logger)
	go wsHub.Run()

	// 启动Web服务器
	server := web.NewServer(cfg, logger, repo, auth, odds, stats, dispatch, wsHub)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("web server error")
		}
	}()

	logger.Info().Str("port", cfg.Port).Msg("web server started")

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	server.Stop()
	logger.Info().Msg(">> Stopped dispatch service")
}
