package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSendPostsTextPayload(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWebhook(srv.URL, quietLogger())
	if !w.Send(context.Background(), "📋 digest") {
		t.Fatalf("expected delivery to succeed")
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	var p struct {
		Text string `json:"text"`
	}
	if err := sonic.Unmarshal(gotBody, &p); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if p.Text != "📋 digest" {
		t.Fatalf("unexpected text %q", p.Text)
	}
}

func TestSendNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if NewWebhook(srv.URL, quietLogger()).Send(context.Background(), "msg") {
		t.Fatalf("expected non-2xx response to report failure")
	}
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if NewWebhook(srv.URL, quietLogger()).Send(context.Background(), "msg") {
		t.Fatalf("expected unreachable webhook to report failure")
	}
}

func TestSendWithoutURL(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	if NewWebhook("", quietLogger()).Send(context.Background(), "msg") {
		t.Fatalf("expected unset URL to report not sent")
	}
	if called {
		t.Fatalf("expected no request without a URL")
	}
}
