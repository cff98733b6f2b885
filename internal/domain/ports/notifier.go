package ports

import (
	"context"

	"slackhook/internal/domain/model"
)

// Notifier delivers notifications to downstream channels (e.g. a Slack webhook).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
