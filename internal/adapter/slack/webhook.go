package slack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
)

const (
	// DefaultRetries is the number of delivery attempts per message.
	DefaultRetries = 3

	maxRedirects = 10
)

var (
	ErrTimeout          = errors.New("request timeout")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrTransport        = errors.New("transport error")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
)

// Webhook posts payloads to a Slack incoming webhook.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	retries    int
}

var _ ports.Notifier = (*Webhook)(nil)

// Option customises a Webhook.
type Option func(*Webhook)

// WithRetries sets the attempt budget. Values <= 0 keep DefaultRetries.
func WithRetries(n int) Option {
	return func(w *Webhook) {
		if n > 0 {
			w.retries = n
		}
	}
}

// NewWebhook creates a new Slack webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger, opts ...Option) *Webhook {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	w := &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout:       timeout,
			CheckRedirect: limitRedirects,
		},
		logger:  logger,
		retries: DefaultRetries,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// URL returns the destination webhook URL.
func (w *Webhook) URL() string {
	return w.webhookURL
}

// Send builds the payload for the notification and posts it.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	return w.Post(ctx, BuildPayload(notification))
}

// Post delivers the payload, making up to the configured number of attempts
// back to back. It stops at the first HTTP 200. When every attempt fails the
// returned error wraps ErrDeliveryFailed and the last failure.
func (w *Webhook) Post(ctx context.Context, payload Payload) error {
	body, err := Encode(payload)
	if err != nil {
		return err
	}

	var (
		lastErr  error
		attempts int
	)
	for attempts < w.retries {
		attempts++
		lastErr = w.attempt(ctx, body)
		if lastErr == nil {
			w.logger.Info(ctx, "success response", "attempt", attempts)
			return nil
		}
		w.logFailure(ctx, attempts, lastErr)

		if ctx.Err() != nil {
			break
		}
	}

	w.logger.Error(ctx, "giving up on webhook delivery", "attempts", attempts, "budget", w.retries, "error", lastErr)
	return fmt.Errorf("%w: %w", ErrDeliveryFailed, lastErr)
}

func (w *Webhook) attempt(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (w *Webhook) logFailure(ctx context.Context, attempt int, err error) {
	switch {
	case errors.Is(err, ErrUnexpectedStatus):
		w.logger.Warn(ctx, "non-success response, retrying", "attempt", attempt, "error", err)
	case errors.Is(err, ErrTimeout):
		w.logger.Error(ctx, "request timeout", "attempt", attempt, "error", err)
	case errors.Is(err, ErrTooManyRedirects):
		w.logger.Error(ctx, "request too many redirects", "attempt", attempt, "error", err)
	default:
		w.logger.Error(ctx, "request connection error", "attempt", attempt, "error", err)
	}
}

func classify(err error) error {
	if errors.Is(err, ErrTooManyRedirects) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return ErrTooManyRedirects
	}
	return nil
}
