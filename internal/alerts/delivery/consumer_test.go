// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package delivery

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/logging"
)

// captureNotifier records delivered reports.
type captureNotifier struct {
	mu      sync.Mutex
	reports []*alerts.Report
}

func (n *captureNotifier) Send(_ context.Context, report *alerts.Report) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reports = append(n.reports, report)
	return nil
}

func (n *captureNotifier) Enabled() bool { return true }

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.reports)
}

func TestConsumerDeliversPublishedReports(t *testing.T) {
	bus := alerts.NewBus(nil)
	defer bus.Close()

	notifier := &captureNotifier{}
	var buf bytes.Buffer
	consumer := NewConsumer(bus, notifier, logging.NewTestLogger(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Serve(ctx)
	}()

	// Give the subscription time to register before publishing.
	time.Sleep(50 * time.Millisecond)

	publisher := alerts.NewPublisher(bus)
	report := sampleReport()
	if err := publisher.PublishReport(report); err != nil {
		t.Fatalf("PublishReport() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for notifier.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("report never delivered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-done

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if got := notifier.reports[0].UserID; got != "user-1" {
		t.Errorf("delivered report UserID = %q, want user-1", got)
	}
}

func TestPublisherDropsEmptyReports(t *testing.T) {
	bus := alerts.NewBus(nil)
	defer bus.Close()

	publisher := alerts.NewPublisher(bus)
	if err := publisher.PublishReport(&alerts.Report{UserID: "user-1"}); err != nil {
		t.Fatalf("PublishReport(empty) error = %v", err)
	}
	if err := publisher.PublishReport(nil); err != nil {
		t.Fatalf("PublishReport(nil) error = %v", err)
	}
}

func TestPublisherClosedRejects(t *testing.T) {
	bus := alerts.NewBus(nil)
	defer bus.Close()

	publisher := alerts.NewPublisher(bus)
	publisher.Close()

	if err := publisher.PublishReport(sampleReport()); err == nil {
		t.Error("PublishReport() after Close() returned nil error")
	}
}
