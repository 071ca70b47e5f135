package notify

import (
	"bytes"
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

type payload struct {
	Text string `json:"text"`
}

// Webhook posts reminder messages to a chat webhook URL. A Webhook
// constructed with an empty URL is valid and drops every message.
type Webhook struct {
	url    string
	client *http.Client
	log    *log.Logger
}

func NewWebhook(url string, logger *log.Logger) *Webhook {
	return &Webhook{url: url, client: http.DefaultClient, log: logger}
}

// Send posts {"text": text} to the webhook and reports whether delivery
// succeeded. Failures are logged and reduced to false, never returned:
// the webhook is a side channel and must not break the triggering job.
func (w *Webhook) Send(ctx context.Context, text string) bool {
	if w.url == "" {
		return false
	}
	body, err := sonic.Marshal(payload{Text: text})
	if err != nil {
		w.log.WithError(err).Warn("webhook payload encode failed")
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.log.WithError(err).Warn("webhook request build failed")
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithError(err).Warn("webhook delivery failed")
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		w.log.WithField("status", resp.StatusCode).Warn("webhook rejected message")
		return false
	}
	return true
}
