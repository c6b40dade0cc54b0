package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinepass/internal/shared/config"
	"cinepass/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains the reservations topic. The default implementation only
// logs each event; delivery channels (email, push) plug in behind Handler.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes a single decoded notification
type Handler func(ctx context.Context, notification *ReservationNotification) error

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler Handler
	log     *logger.Logger
	cancel  context.CancelFunc
}

// NewKafkaConsumer creates a consumer group member for the reservations
// topic. A nil handler falls back to logging each event.
func NewKafkaConsumer(cfg config.KafkaConfig, handler Handler) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	log := logger.GetDefault()
	if handler == nil {
		handler = func(ctx context.Context, notification *ReservationNotification) error {
			log.InfoContext(ctx, "Reservation notification received",
				"type", string(notification.Type),
				"reservation_id", notification.ReservationID,
				"user_id", notification.UserID)
			return nil
		}
	}

	return &kafkaConsumer{
		group:   group,
		topics:  []string{cfg.ReservationsTopic},
		handler: handler,
		log:     log,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			c.log.Error("consumer group error", "error", err.Error())
		}
	}()

	go func() {
		handler := &groupHandler{handler: c.handler, log: c.log}
		for {
			if ctx.Err() != nil {
				return
			}
			if err := c.group.Consume(ctx, c.topics, handler); err != nil {
				c.log.Error("consumer error", "error", err.Error())
				time.Sleep(time.Second)
			}
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type groupHandler struct {
	handler Handler
	log     *logger.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.process(session.Context(), message); err != nil {
				h.log.Error("failed to process notification",
					"topic", message.Topic,
					"partition", message.Partition,
					"offset", message.Offset,
					"error", err.Error())
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *groupHandler) process(ctx context.Context, message *sarama.ConsumerMessage) error {
	var notification ReservationNotification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return h.handler(ctx, &notification)
}
