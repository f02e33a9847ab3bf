// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

package delivery

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/vinarium/internal/alerts"
	"github.com/tomtom215/vinarium/internal/metrics"
)

// Notifier delivers one alert report to its destination.
type Notifier interface {
	Send(ctx context.Context, report *alerts.Report) error
	Enabled() bool
}

// Consumer subscribes to the alert topic and forwards reports to a
// notifier. It implements suture.Service.
type Consumer struct {
	subscriber message.Subscriber
	notifier   Notifier
	logger     zerolog.Logger
	name       string
}

// NewConsumer creates the alert delivery consumer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConsumer(subscriber message.Subscriber, notifier Notifier, logger zerolog.Logger) *Consumer {
	return &Consumer{
		subscriber: subscriber,
		notifier:   notifier,
		logger:     logger.With().Str("service", "alert-delivery").Logger(),
		name:       "alert-delivery",
	}
}

// Serve implements the suture.Service interface. Malformed messages
// are acked and dropped; delivery failures are acked too, since the
// next sweep regenerates the report.
func (c *Consumer) Serve(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, alerts.TopicDrinkingWindow)
	if err != nil {
		return err
	}

	c.logger.Info().Str("topic", alerts.TopicDrinkingWindow).Msg("alert delivery running")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("alert delivery shutting down")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.handle(ctx, msg)
		}
	}
}

// String returns the service name for supervisor logging.
func (c *Consumer) String() string {
	return c.name
}

func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var report alerts.Report
	if err := json.Unmarshal(msg.Payload, &report); err != nil {
		c.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("malformed alert report dropped")
		return
	}

	if !c.notifier.Enabled() {
		return
	}

	if err := c.notifier.Send(ctx, &report); err != nil {
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		c.logger.Warn().Err(err).Str("user_id", report.UserID).Msg("alert delivery failed")
		return
	}

	metrics.WebhookDeliveries.WithLabelValues("ok").Inc()
	c.logger.Debug().
		Str("user_id", report.UserID).
		Int("alerts", report.Total()).
		Msg("alert report delivered")
}
