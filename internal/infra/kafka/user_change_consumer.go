package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arklim/cinema-platform/internal/infra/config"
)

// PrivilegeInvalidator drops a cached admin verdict.
type PrivilegeInvalidator interface {
	Forget(userID string)
}

// UserChangeConsumer evicts cached admin verdicts when the User service reports a change.
// Every process reads every partition from the newest offset; no consumer group is used
// because each process owns its own cache.
type UserChangeConsumer struct {
	cache  PrivilegeInvalidator
	topic  string
	logger *zap.Logger
}

// NewUserChangeConsumer constructs a consumer for the prefixed user change topic.
func NewUserChangeConsumer(cache PrivilegeInvalidator, topicPrefix string, logger *zap.Logger) *UserChangeConsumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserChangeConsumer{cache: cache, topic: topicName(topicPrefix, EventUserChanged), logger: logger}
}

// Topic returns the topic this consumer reads.
func (c *UserChangeConsumer) Topic() string {
	return c.topic
}

// HandleMessage decodes a user change envelope and evicts the affected user.
func (c *UserChangeConsumer) HandleMessage(_ context.Context, msg *sarama.ConsumerMessage) error {
	if msg == nil {
		return errors.New("message is nil")
	}

	var env envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return fmt.Errorf("decode user change envelope: %w", err)
	}
	if env.EventType != EventUserChanged {
		return nil
	}

	var payload userPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return fmt.Errorf("decode user change payload: %w", err)
	}
	if payload.UserID == "" {
		return errors.New("user change event without user id")
	}

	c.cache.Forget(payload.UserID)
	c.logger.Debug("admin cache entry invalidated",
		zap.String("user_id", payload.UserID),
		zap.String("action", env.Action),
	)
	return nil
}

// NewConsumer connects a partition consumer to the configured brokers.
func NewConsumer(cfg config.KafkaSettings) (sarama.Consumer, error) {
	consumer, err := sarama.NewConsumer(cfg.Brokers, saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return consumer, nil
}

// Run consumes every partition of the topic until ctx is done.
func (c *UserChangeConsumer) Run(ctx context.Context, consumer sarama.Consumer) error {
	partitions, err := consumer.Partitions(c.topic)
	if err != nil {
		return fmt.Errorf("list partitions of %s: %w", c.topic, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, partition := range partitions {
		pc, err := consumer.ConsumePartition(c.topic, partition, sarama.OffsetNewest)
		if err != nil {
			return fmt.Errorf("consume %s/%d: %w", c.topic, partition, err)
		}
		g.Go(func() error {
			defer pc.AsyncClose()
			return c.drain(ctx, pc)
		})
	}

	c.logger.Info("admin cache invalidation consumer started",
		zap.String("topic", c.topic),
		zap.Int("partitions", len(partitions)),
	)
	return g.Wait()
}

func (c *UserChangeConsumer) drain(ctx context.Context, pc sarama.PartitionConsumer) error {
	errs := pc.Errors()
	for {
		select {
		case msg, ok := <-pc.Messages():
			if !ok {
				return nil
			}
			if err := c.HandleMessage(ctx, msg); err != nil {
				c.logger.Warn("skipping user change event",
					zap.Int32("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		case perr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if perr != nil {
				c.logger.Warn("user change consumer error", zap.Error(perr.Err))
			}
		case <-ctx.Done():
			return nil
		}
	}
}
