package port

import (
	"context"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// EventPublisher publishes domain events to the message bus.
type EventPublisher interface {
	PublishMovieChanged(ctx context.Context, event domain.MovieChangedEvent) error
	PublishUserChanged(ctx context.Context, event domain.UserChangedEvent) error
	PublishScheduleChanged(ctx context.Context, event domain.ScheduleChangedEvent) error
	PublishBookingChanged(ctx context.Context, event domain.BookingChangedEvent) error
}
