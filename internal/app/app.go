package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/config"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/handler"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/metrics"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/repository"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/service"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/transport/wameow"
)

type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.logger.Info("Starting anti-link bot", "owner", a.cfg.OwnerNumber)

	client, err := wameow.NewClient(ctx, a.logger, a.cfg.SessionDBPath)
	if err != nil {
		return fmt.Errorf("failed to create transport client: %w", err)
	}

	strikeRepo := repository.NewStrikeRepository()
	duplicateRepo := repository.NewDuplicateRepository(a.cfg.DuplicateWindow)
	adminCacheRepo := repository.NewAdminCacheRepository(a.cfg.NotAdminTTL)

	svc := service.NewModerationService(a.logger, a.cfg, client, strikeRepo, duplicateRepo, adminCacheRepo)
	svc.StartSweeper(ctx)
	svc.StartMetricsUpdater(ctx)

	h := handler.NewHandler(a.logger, svc, client)
	client.OnMessages(h.HandleEvents)

	metricsSrv := metrics.NewServer(a.logger, a.cfg.MetricsAddr)
	go func() {
		if err := metricsSrv.Listen(); err != nil {
			a.logger.Error("Metrics server failed", "error", err)
		}
	}()

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect transport: %w", err)
	}
	a.logger.Info("Bot online", "jid", client.SelfJID())

	<-ctx.Done()
	a.logger.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Failed to stop metrics server", "error", err)
	}
	client.Disconnect()
	return nil
}
