package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/infra/config"
)

const schemaVersion = "1.0"

// Event types, before the topic prefix is applied.
const (
	EventMovieChanged    = "movie.changed"
	EventUserChanged     = "user.changed"
	EventScheduleChanged = "schedule.changed"
	EventBookingChanged  = "booking.changed"
)

// EventPublisher implements port.EventPublisher using Kafka.
type EventPublisher struct {
	producer *Producer
	logger   *zap.Logger
	appCfg   config.AppSettings
	service  string
}

// NewEventPublisher constructs a Kafka-backed event publisher for service.
func NewEventPublisher(producer *Producer, appCfg config.AppSettings, service string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{producer: producer, appCfg: appCfg, service: service, logger: logger}
}

type envelope struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Payload   json.RawMessage   `json:"payload"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (p *EventPublisher) publish(ctx context.Context, eventID, eventType, key, action, actor string, ts time.Time, payload any) error {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	if eventID == "" {
		eventID = uuid.NewString()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	metadata := map[string]string{
		"service":     p.service,
		"environment": p.appCfg.Env,
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		metadata["trace_id"] = sc.TraceID().String()
	}

	bytes, err := json.Marshal(envelope{
		EventID:   eventID,
		EventType: eventType,
		Action:    action,
		Actor:     actor,
		Timestamp: ts.UTC(),
		Version:   schemaVersion,
		Payload:   body,
		Metadata:  metadata,
	})
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.producer.TopicName(eventType),
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.producer.Send(message) {
		return fmt.Errorf("kafka producer closed")
	}
	return nil
}

func (p *EventPublisher) PublishMovieChanged(ctx context.Context, event domain.MovieChangedEvent) error {
	payload := struct {
		MovieID string        `json:"movie_id"`
		Movie   *domain.Movie `json:"movie,omitempty"`
	}{MovieID: event.MovieID, Movie: event.Movie}
	return p.publish(ctx, event.EventID, EventMovieChanged, event.MovieID, event.Action, event.Actor, event.ChangedAt, payload)
}

func (p *EventPublisher) PublishUserChanged(ctx context.Context, event domain.UserChangedEvent) error {
	return p.publish(ctx, event.EventID, EventUserChanged, event.UserID, event.Action, event.Actor, event.ChangedAt, userPayload{
		UserID: event.UserID,
		User:   event.User,
	})
}

func (p *EventPublisher) PublishScheduleChanged(ctx context.Context, event domain.ScheduleChangedEvent) error {
	payload := struct {
		Date     string   `json:"date"`
		MovieIDs []string `json:"movie_ids,omitempty"`
	}{Date: event.Date, MovieIDs: event.MovieIDs}
	return p.publish(ctx, event.EventID, EventScheduleChanged, event.Date, event.Action, event.Actor, event.ChangedAt, payload)
}

func (p *EventPublisher) PublishBookingChanged(ctx context.Context, event domain.BookingChangedEvent) error {
	payload := struct {
		UserID  string `json:"user_id"`
		Date    string `json:"date,omitempty"`
		MovieID string `json:"movie_id,omitempty"`
	}{UserID: event.UserID, Date: event.Date, MovieID: event.MovieID}
	return p.publish(ctx, event.EventID, EventBookingChanged, event.UserID, event.Action, event.Actor, event.ChangedAt, payload)
}

type userPayload struct {
	UserID string       `json:"user_id"`
	User   *domain.User `json:"user,omitempty"`
}

var _ port.EventPublisher = (*EventPublisher)(nil)
