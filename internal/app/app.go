package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"slackhook/internal/domain/ports"
	"slackhook/internal/usecase"
)

const defaultBeatTimeout = 2 * time.Minute

// Heartbeat is the scheduled status message.
type Heartbeat struct {
	Schedule string
	Message  string
	Title    string
	// Timeout bounds one heartbeat delivery including its retries.
	// Zero means defaultBeatTimeout.
	Timeout time.Duration
}

// BeatTimeout sizes a heartbeat deadline from the webhook request timeout
// and attempt budget, with one extra request timeout of slack.
func BeatTimeout(requestTimeout time.Duration, retries int) time.Duration {
	if requestTimeout <= 0 || retries <= 0 {
		return defaultBeatTimeout
	}
	return requestTimeout * time.Duration(retries+1)
}

func (h Heartbeat) timeout() time.Duration {
	if h.Timeout <= 0 {
		return defaultBeatTimeout
	}
	return h.Timeout
}

// App posts a heartbeat message on a cron schedule.
type App struct {
	cron      *cron.Cron
	notifier  *usecase.Notifier
	logger    ports.Logger
	heartbeat Heartbeat
}

// New constructs an App instance.
func New(notifier *usecase.Notifier, logger ports.Logger, heartbeat Heartbeat) *App {
	return &App{
		cron:      cron.New(),
		notifier:  notifier,
		logger:    logger,
		heartbeat: heartbeat,
	}
}

// Run sends the heartbeat once immediately and then according to the cron schedule.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "sending first heartbeat immediately")
	a.beatWithin(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.heartbeat.Schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(a.heartbeat.timeout()):
		a.logger.Warn(context.Background(), "heartbeat still in flight at shutdown")
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// scheduled beats inherit ctx so shutdown cancels an in-flight delivery.
func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.heartbeat.Schedule, func() {
		a.beatWithin(ctx)
	})
	return err
}

func (a *App) beatWithin(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, a.heartbeat.timeout())
	defer cancel()
	a.beat(ctx)
}

func (a *App) beat(ctx context.Context) {
	var opts []usecase.SendOption
	if a.heartbeat.Title != "" {
		opts = append(opts, usecase.WithTitle(a.heartbeat.Title))
	}
	a.notifier.SendMessage(ctx, a.heartbeat.Message, opts...)
}
