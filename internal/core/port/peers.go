package port

import (
	"context"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// PrivilegeSource answers whether a requester is an admin.
// Implementations return domain.ErrNotFound when the requester is unknown and
// domain.ErrPeerUnavailable when the answer could not be obtained.
type PrivilegeSource interface {
	IsAdmin(ctx context.Context, requesterID string) (bool, error)
}

// MovieCatalog resolves movie ids against the Movie service.
type MovieCatalog interface {
	MovieByID(ctx context.Context, requesterID, movieID string) (*domain.Movie, error)
}

// UserDirectory resolves user ids against the User service.
type UserDirectory interface {
	UserByID(ctx context.Context, userID string) (*domain.User, error)
}

// ScheduleCalendar queries the Schedule service. A date without a schedule entry fails
// with domain.ErrMovieNotScheduled; every other failure is a Schedule failure.
type ScheduleCalendar interface {
	MovieIDsByDate(ctx context.Context, requesterID, date string) ([]string, error)
}

// BookingLedger lists every booking through the Booking service.
type BookingLedger interface {
	BookingsWithUsers(ctx context.Context, requesterID string) ([]UserBookings, error)
}

// UserBookings is a booking joined with the owner's display name.
// UserName is empty when the owner could not be resolved.
type UserBookings struct {
	UserID   string
	UserName string
	Dates    []domain.BookingDate
}
