package port

import (
	"context"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// MovieRepository exposes persistence behavior for movies.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	Create(ctx context.Context, movie domain.Movie) error
	UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}

// UserRepository exposes persistence behavior for users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Rename(ctx context.Context, id, name string) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// ScheduleRepository exposes persistence behavior for the screening calendar.
// AddMovies and RemoveMovies are atomic per date.
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
	GetByDate(ctx context.Context, date string) (*domain.ScheduleEntry, error)
	DatesForMovie(ctx context.Context, movieID string) ([]string, error)
	Create(ctx context.Context, entry domain.ScheduleEntry) error
	AddMovies(ctx context.Context, date string, movieIDs []string) error
	DeleteDate(ctx context.Context, date string) error
	RemoveMovies(ctx context.Context, date string, movieIDs []string) error
}

// BookingRepository exposes persistence behavior for bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByUser(ctx context.Context, userID string) (*domain.Booking, error)
	AddMovie(ctx context.Context, userID, date, movieID string) (*domain.Booking, error)
	RemoveMovie(ctx context.Context, userID, date, movieID string) (*domain.Booking, error)
	DeleteByUser(ctx context.Context, userID string) error
}
