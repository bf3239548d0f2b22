package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing client, optionally as
// part of a queue group. Handler errors are logged, never propagated: a
// failing notification must not take the subscription down.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	process := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, process)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, process)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
		c.subscription = nil
	}
}

// IsActive returns true if the consumer is actively subscribed
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}
