package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

// StubPublisher logs events instead of sending them to Kafka. Used when no brokers are configured.
type StubPublisher struct {
	logger *zap.Logger
}

func NewStubPublisher(logger *zap.Logger) *StubPublisher {
	return &StubPublisher{logger: logger}
}

func (p *StubPublisher) logEvent(eventType, action, key, actor string, at time.Time) {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	p.logger.Info("Stub event published",
		zap.String("event_type", eventType),
		zap.String("action", action),
		zap.String("key", key),
		zap.String("actor", actor),
		zap.Time("timestamp", at.UTC()),
	)
}

func (p *StubPublisher) PublishMovieChanged(_ context.Context, event domain.MovieChangedEvent) error {
	p.logEvent(EventMovieChanged, event.Action, event.MovieID, event.Actor, event.ChangedAt)
	return nil
}

func (p *StubPublisher) PublishUserChanged(_ context.Context, event domain.UserChangedEvent) error {
	p.logEvent(EventUserChanged, event.Action, event.UserID, event.Actor, event.ChangedAt)
	return nil
}

func (p *StubPublisher) PublishScheduleChanged(_ context.Context, event domain.ScheduleChangedEvent) error {
	p.logEvent(EventScheduleChanged, event.Action, event.Date, event.Actor, event.ChangedAt)
	return nil
}

func (p *StubPublisher) PublishBookingChanged(_ context.Context, event domain.BookingChangedEvent) error {
	p.logEvent(EventBookingChanged, event.Action, event.UserID, event.Actor, event.ChangedAt)
	return nil
}

var _ port.EventPublisher = (*StubPublisher)(nil)
