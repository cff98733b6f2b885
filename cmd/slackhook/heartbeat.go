package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slackhook/internal/di"
)

func newHeartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: "Post a status message now and then on HEARTBEAT_CRON",
		Args:  cobra.NoArgs,
		RunE:  runHeartbeat,
	}
}

func runHeartbeat(cmd *cobra.Command, _ []string) error {
	application, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	return nil
}
