//go:build wireinject

package di

import (
	"github.com/google/wire"

	"slackhook/internal/app"
	"slackhook/internal/usecase"
)

// InitializeNotifier wires a Notifier from the environment.
func InitializeNotifier() (*usecase.Notifier, error) {
	wire.Build(notifierSet)
	return nil, nil
}

// InitializeApp wires the heartbeat application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		notifierSet,
		provideHeartbeat,
		app.New,
	)
	return nil, nil
}
