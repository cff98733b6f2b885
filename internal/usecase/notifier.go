package usecase

import (
	"context"
	"sync"

	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
)

// Notifier sends styled messages through a delivery port. Critical messages
// tag the configured supervisors unless the caller names recipients.
//
// A Notifier is meant to be built once at startup and shared; all methods
// are safe for concurrent use.
type Notifier struct {
	sender ports.Notifier
	logger ports.Logger

	mu          sync.RWMutex
	supervisors []string
}

// SendOption customises a single send call.
type SendOption func(*sendOptions)

type sendOptions struct {
	title         string
	hasTitle      bool
	recipients    []string
	hasRecipients bool
}

// WithTitle sets the top-level message title.
func WithTitle(title string) SendOption {
	return func(o *sendOptions) {
		o.title = title
		o.hasTitle = true
	}
}

// WithRecipients tags the given user ids. For SendError this replaces the
// supervisor list, even when ids is empty.
func WithRecipients(ids ...string) SendOption {
	return func(o *sendOptions) {
		o.recipients = append([]string(nil), ids...)
		o.hasRecipients = true
	}
}

// NewNotifier constructs a Notifier.
func NewNotifier(sender ports.Notifier, supervisors []string, logger ports.Logger) *Notifier {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &Notifier{
		sender:      sender,
		logger:      logger,
		supervisors: append([]string(nil), supervisors...),
	}
}

// Supervisors returns a copy of the default recipients for critical messages.
func (n *Notifier) Supervisors() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]string(nil), n.supervisors...)
}

// SetSupervisors replaces the default recipients for critical messages.
func (n *Notifier) SetSupervisors(ids []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.supervisors = append([]string(nil), ids...)
}

// SendMessage sends a normal message.
func (n *Notifier) SendMessage(ctx context.Context, message string, opts ...SendOption) {
	o := collect(opts)
	n.logger.Info(ctx, "sending message", "message", message)
	n.deliver(ctx, message, model.SeverityNormal, o)
}

// SendInformation sends an information message.
func (n *Notifier) SendInformation(ctx context.Context, message string, opts ...SendOption) {
	o := collect(opts)
	n.logger.Info(ctx, "sending information", "message", message)
	n.deliver(ctx, message, model.SeverityInformation, o)
}

// SendError sends a critical message, tagging the supervisors by default.
func (n *Notifier) SendError(ctx context.Context, message string, opts ...SendOption) {
	o := collect(opts)
	if !o.hasRecipients {
		o.recipients = n.Supervisors()
	}
	n.logger.Info(ctx, "sending error", "message", message)
	n.deliver(ctx, message, model.SeverityCritical, o)
}

// Send dispatches on severity, for callers that pick the level at runtime.
func (n *Notifier) Send(ctx context.Context, severity model.Severity, message string, opts ...SendOption) {
	switch severity {
	case model.SeverityInformation:
		n.SendInformation(ctx, message, opts...)
	case model.SeverityCritical:
		n.SendError(ctx, message, opts...)
	default:
		n.SendMessage(ctx, message, opts...)
	}
}

// deliver never returns the delivery error: a failed notification must not
// take the caller down, so the failure is only logged.
func (n *Notifier) deliver(ctx context.Context, message string, severity model.Severity, o sendOptions) {
	notification := model.Notification{
		Message:    message,
		Severity:   severity,
		Title:      o.title,
		HasTitle:   o.hasTitle,
		Recipients: o.recipients,
	}
	if err := n.sender.Send(ctx, notification); err != nil {
		n.logger.Error(ctx, "notification not delivered", "severity", severity.String(), "error", err)
	}
}

func collect(opts []SendOption) sendOptions {
	var o sendOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
