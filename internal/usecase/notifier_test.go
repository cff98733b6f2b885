package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slackhook/internal/adapter/slack"
	"slackhook/internal/domain/model"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (f *fakeSender) Send(_ context.Context, n model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return f.err
}

func (f *fakeSender) last(t *testing.T) model.Notification {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

func TestNotifier_Severities(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, []string{"U1"}, nil)
	ctx := context.Background()

	n.SendMessage(ctx, "m")
	assert.Equal(t, model.SeverityNormal, sender.last(t).Severity)
	assert.Empty(t, sender.last(t).Recipients)

	n.SendInformation(ctx, "i")
	assert.Equal(t, model.SeverityInformation, sender.last(t).Severity)
	assert.Empty(t, sender.last(t).Recipients)

	n.SendError(ctx, "e")
	assert.Equal(t, model.SeverityCritical, sender.last(t).Severity)
	assert.Equal(t, []string{"U1"}, sender.last(t).Recipients)
}

func TestNotifier_Options(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, nil, nil)

	n.SendMessage(context.Background(), "Status: Working", WithTitle("Slackhook"), WithRecipients("U9", "U8"))

	got := sender.last(t)
	assert.Equal(t, "Status: Working", got.Message)
	assert.True(t, got.HasTitle)
	assert.Equal(t, "Slackhook", got.Title)
	assert.Equal(t, []string{"U9", "U8"}, got.Recipients)
}

func TestNotifier_SendErrorRecipients(t *testing.T) {
	t.Run("explicit list overrides supervisors", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewNotifier(sender, []string{"U1", "U2"}, nil)

		n.SendError(context.Background(), "boom", WithRecipients("U3"))
		assert.Equal(t, []string{"U3"}, sender.last(t).Recipients)
	})

	t.Run("explicit empty list tags nobody", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewNotifier(sender, []string{"U1", "U2"}, nil)

		n.SendError(context.Background(), "boom", WithRecipients())
		assert.Empty(t, sender.last(t).Recipients)
	})

	t.Run("no supervisors configured", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewNotifier(sender, nil, nil)

		n.SendError(context.Background(), "boom")
		assert.Empty(t, sender.last(t).Recipients)
	})
}

func TestNotifier_SupervisorsAreCopied(t *testing.T) {
	supervisors := []string{"U1", "U2"}
	n := NewNotifier(&fakeSender{}, supervisors, nil)

	supervisors[0] = "changed"
	assert.Equal(t, []string{"U1", "U2"}, n.Supervisors())

	got := n.Supervisors()
	got[1] = "changed"
	assert.Equal(t, []string{"U1", "U2"}, n.Supervisors())

	n.SetSupervisors([]string{"U7"})
	assert.Equal(t, []string{"U7"}, n.Supervisors())
}

func TestNotifier_SwallowsDeliveryErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("webhook down")}
	n := NewNotifier(sender, nil, nil)

	assert.NotPanics(t, func() {
		n.SendMessage(context.Background(), "m")
		n.SendInformation(context.Background(), "i")
		n.SendError(context.Background(), "e")
	})
	assert.Len(t, sender.sent, 3)
}

func TestNotifier_SendDispatch(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, []string{"U1"}, nil)

	n.Send(context.Background(), model.SeverityCritical, "down")
	assert.Equal(t, model.SeverityCritical, sender.last(t).Severity)
	assert.Equal(t, []string{"U1"}, sender.last(t).Recipients)

	n.Send(context.Background(), model.SeverityInformation, "fyi")
	assert.Equal(t, model.SeverityInformation, sender.last(t).Severity)
}

func TestNotifier_EndToEndDiskFull(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hook := slack.NewWebhook(server.URL, time.Second, nil)
	n := NewNotifier(hook, []string{"U1", "U2"}, nil)

	n.SendError(context.Background(), "disk full")

	assert.Equal(t,
		`{"attachments":[{"text":"disk full","color":"#d50000"},{"text":"<@U1>","color":"#d50000"},{"text":"<@U2>","color":"#d50000"}]}`,
		string(body))
	assert.JSONEq(t,
		`{"attachments":[{"text":"disk full","color":"#d50000"},{"text":"<@U1>","color":"#d50000"},{"text":"<@U2>","color":"#d50000"}]}`,
		string(body))
}

func TestNotifier_PersistentFailureReturns(t *testing.T) {
	hits := 0
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewNotifier(slack.NewWebhook(server.URL, time.Second, nil), nil, nil)
	n.SendInformation(context.Background(), "fyi")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, slack.DefaultRetries, hits)
}

func TestNotifier_ConcurrentSendsAndSupervisorUpdates(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, []string{"U1", "U2"}, nil)
	lists := [][]string{{"U1", "U2"}, {"U3"}, {"U4", "U5", "U6"}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			n.SendError(context.Background(), "disk full")
		}()
		go func(i int) {
			defer wg.Done()
			n.SetSupervisors(lists[i%len(lists)])
		}(i)
	}
	wg.Wait()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Len(t, sender.sent, 50)
	for _, got := range sender.sent {
		assert.Contains(t, lists, got.Recipients)
		assert.Equal(t, model.SeverityCritical, got.Severity)
	}
}
