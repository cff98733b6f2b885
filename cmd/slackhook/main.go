package main

import (
	"os"

	"github.com/spf13/cobra"

	"slackhook/internal/domain/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slackhook",
		Short: "Post styled notifications to a Slack incoming webhook",
		Long: `slackhook formats messages as coloured Slack attachments, tags
supervisors on critical messages and posts them to the webhook named by
SLACK_WEBHOOK_URL.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newSendCmd("message", "Send a normal message", fixedLevel(model.SeverityNormal)),
		newSendCmd("info", "Send an information message", fixedLevel(model.SeverityInformation)),
		newSendCmd("error", "Send a critical message, tagging supervisors by default", fixedLevel(model.SeverityCritical)),
		newLevelSendCmd(),
		newHeartbeatCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
