package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"slackhook/internal/adapter/logging"
	"slackhook/internal/adapter/slack"
	"slackhook/internal/app"
	"slackhook/internal/config"
	"slackhook/internal/domain/ports"
	"slackhook/internal/usecase"
)

// notifierSet provides a ready Notifier from environment configuration.
var notifierSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideWebhook,
	wire.Bind(new(ports.Notifier), new(*slack.Webhook)),
	provideNotifier,
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideWebhook(cfg *config.Config, logger ports.Logger) *slack.Webhook {
	return slack.NewWebhook(cfg.WebhookURL, cfg.RequestTimeout, logger, slack.WithRetries(cfg.Retries))
}

func provideNotifier(cfg *config.Config, sender ports.Notifier, logger ports.Logger) *usecase.Notifier {
	return usecase.NewNotifier(sender, cfg.Supervisors, logger)
}

func provideHeartbeat(cfg *config.Config) app.Heartbeat {
	return app.Heartbeat{
		Schedule: cfg.HeartbeatCron,
		Message:  cfg.HeartbeatMessage,
		Title:    cfg.HeartbeatTitle,
		Timeout:  app.BeatTimeout(cfg.RequestTimeout, cfg.Retries),
	}
}
