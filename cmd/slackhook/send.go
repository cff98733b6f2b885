package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slackhook/internal/adapter/htmltext"
	"slackhook/internal/di"
	"slackhook/internal/domain/model"
	"slackhook/internal/usecase"
)

type sendFlags struct {
	title string
	tags  []string
	html  bool
	level string
}

// levelFunc resolves the severity for one invocation.
type levelFunc func(f *sendFlags) (model.Severity, error)

func fixedLevel(severity model.Severity) levelFunc {
	return func(*sendFlags) (model.Severity, error) {
		return severity, nil
	}
}

func newSendCmd(use, short string, level levelFunc) *cobra.Command {
	cmd, _ := buildSendCmd(use, short, level)
	return cmd
}

func buildSendCmd(use, short string, level levelFunc) (*cobra.Command, *sendFlags) {
	flags := &sendFlags{}
	cmd := &cobra.Command{
		Use:   use + " <text>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			severity, err := level(flags)
			if err != nil {
				return err
			}

			notifier, err := di.InitializeNotifier()
			if err != nil {
				return fmt.Errorf("initialize notifier: %w", err)
			}

			message := strings.Join(args, " ")
			if flags.html {
				message = htmltext.ToText(message)
			}

			notifier.Send(cmd.Context(), severity, message, flags.options(cmd)...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "message title")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "user id to mention (repeatable)")
	cmd.Flags().BoolVar(&flags.html, "html", false, "treat the text as HTML and send its plain text")
	return cmd, flags
}

// newLevelSendCmd picks the severity at runtime from --level.
func newLevelSendCmd() *cobra.Command {
	cmd, flags := buildSendCmd("send", "Send a message at the given --level", func(f *sendFlags) (model.Severity, error) {
		return model.ParseSeverity(f.level)
	})
	cmd.Flags().StringVarP(&flags.level, "level", "l", "normal", "normal, info or critical")
	return cmd
}

func (f *sendFlags) options(cmd *cobra.Command) []usecase.SendOption {
	var opts []usecase.SendOption
	if cmd.Flags().Changed("title") {
		opts = append(opts, usecase.WithTitle(f.title))
	}
	if cmd.Flags().Changed("tag") {
		opts = append(opts, usecase.WithRecipients(f.tags...))
	}
	return opts
}
