// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package delivery

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/models"
)

func sampleReport() *alerts.Report {
	return &alerts.Report{
		UserID:      "user-1",
		GeneratedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		OverHill: []alerts.WineAlert{
			{
				Wine:    &models.Wine{ID: "w1", Name: "Old Red", Vintage: 2005},
				Kind:    alerts.KindOverHill,
				Message: "2005 Old Red is past its recommended drinking window",
			},
		},
	}
}

func TestWebhookNotifierSend(t *testing.T) {
	var gotBody string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	notifier := NewWebhookNotifier(WebhookConfig{
		WebhookURL: srv.URL,
		Enabled:    true,
		Headers:    map[string]string{"Authorization": "Bearer token"},
	})

	if err := notifier.Send(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if !strings.Contains(gotBody, `"event_type":"drinking_window_alert"`) {
		t.Errorf("payload missing event type: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"user_id":"user-1"`) {
		t.Errorf("payload missing user: %s", gotBody)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := NewWebhookNotifier(WebhookConfig{WebhookURL: srv.URL, Enabled: true})

	if err := notifier.Send(context.Background(), sampleReport()); err == nil {
		t.Error("Send() to failing endpoint returned nil error")
	}
}

func TestWebhookNotifierDisabledDropsSilently(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	notifier := NewWebhookNotifier(WebhookConfig{WebhookURL: srv.URL, Enabled: false})

	if err := notifier.Send(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Send() while disabled error = %v", err)
	}
	if called {
		t.Error("disabled notifier hit the endpoint")
	}
	if notifier.Enabled() {
		t.Error("Enabled() = true for disabled notifier")
	}
}

func TestWebhookNotifierNoURLIsDisabled(t *testing.T) {
	notifier := NewWebhookNotifier(WebhookConfig{Enabled: true})
	if notifier.Enabled() {
		t.Error("Enabled() = true without a URL")
	}
}
