package slack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"slackhook/internal/domain/model"
)

// Attachment is one coloured block of a webhook message.
type Attachment struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Payload is the JSON body posted to the webhook.
type Payload struct {
	Text        *string      `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

// MentionToken renders a user id as a Slack mention.
func MentionToken(id string) string {
	return "<@" + id + ">"
}

// BuildPayload converts a notification into the webhook payload. The first
// attachment carries the message; each recipient gets its own mention
// attachment in order. Every attachment uses the notification's severity colour.
func BuildPayload(n model.Notification) Payload {
	color := n.Severity.Color()

	attachments := make([]Attachment, 0, 1+len(n.Recipients))
	attachments = append(attachments, Attachment{Text: n.Message, Color: color})
	for _, id := range n.Recipients {
		attachments = append(attachments, Attachment{Text: MentionToken(id), Color: color})
	}

	payload := Payload{Attachments: attachments}
	if n.HasTitle {
		title := n.Title
		payload.Text = &title
	}
	return payload
}

// Encode serialises the payload without HTML escaping so mention tokens
// reach Slack as written.
func Encode(payload Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
