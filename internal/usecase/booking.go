package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/repository"
)

// BookingService implements the Booking service operations.
type BookingService struct {
	repo     port.BookingRepository
	auth     Authorizer
	schedule port.ScheduleCalendar
	movies   port.MovieCatalog
	users    port.UserDirectory
	events   port.EventPublisher
	logger   *zap.Logger
	now      func() time.Time
}

// NewBookingService constructs the booking service.
func NewBookingService(repo port.BookingRepository, auth Authorizer, schedule port.ScheduleCalendar, movies port.MovieCatalog, users port.UserDirectory, events port.EventPublisher) *BookingService {
	return &BookingService{
		repo:     repo,
		auth:     auth,
		schedule: schedule,
		movies:   movies,
		users:    users,
		events:   events,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
}

func (s *BookingService) WithLogger(logger *zap.Logger) *BookingService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *BookingService) WithNow(now func() time.Time) *BookingService {
	if now != nil {
		s.now = now
	}
	return s
}

// ListBookings returns every booking document.
func (s *BookingService) ListBookings(ctx context.Context, requesterID string) ([]domain.Booking, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// BookingByUser returns the booking document of userID.
func (s *BookingService) BookingByUser(ctx context.Context, requesterID, userID string) (*domain.Booking, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	booking, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("Booking not found with id: %s", userID)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

// AddBooking books movieID on date for userID once the Schedule service confirms the screening.
func (s *BookingService) AddBooking(ctx context.Context, requesterID, userID, date, movieID string) (*domain.Booking, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(date) == "" || strings.TrimSpace(movieID) == "" {
		return nil, domain.InvalidArgument("userid, date and movieid are required")
	}

	scheduled, err := s.schedule.MovieIDsByDate(ctx, requesterID, date)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotScheduled) {
			return nil, movieNotScheduled()
		}
		s.logger.Error("schedule lookup failed", zap.String("date", date), zap.Error(err))
		return nil, domain.PeerUnavailable(domain.PeerSchedule, err)
	}
	found := false
	for _, id := range scheduled {
		if id == movieID {
			found = true
			break
		}
	}
	if !found {
		return nil, movieNotScheduled()
	}

	booking, err := s.repo.AddMovie(ctx, userID, date, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.AlreadyExists("Booking already exists")
		}
		return nil, fmt.Errorf("add booking: %w", err)
	}

	s.publish(ctx, domain.ActionCreated, requesterID, userID, date, movieID)
	return booking, nil
}

// RemoveBookingMovie drops one movie from one date of a booking.
func (s *BookingService) RemoveBookingMovie(ctx context.Context, requesterID, userID, date, movieID string) (*domain.Booking, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	booking, err := s.repo.RemoveMovie(ctx, userID, date, movieID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.NotFound("Booking not found")
		case errors.Is(err, repository.ErrDateNotFound):
			return nil, domain.NotFound("Booking not found for date: %s", date)
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, domain.NotFound("Movie not found in this booking")
		default:
			return nil, fmt.Errorf("remove booking: %w", err)
		}
	}

	s.publish(ctx, domain.ActionUpdated, requesterID, userID, date, movieID)
	return booking, nil
}

// RemoveAllBookings deletes the booking document of userID.
func (s *BookingService) RemoveAllBookings(ctx context.Context, requesterID, userID string) (string, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return "", err
	}
	if err := s.repo.DeleteByUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.NotFound("User not found")
		}
		return "", fmt.Errorf("delete bookings: %w", err)
	}

	s.publish(ctx, domain.ActionDeleted, requesterID, userID, "", "")
	return fmt.Sprintf("All bookings removed for userid: %s", userID), nil
}

// BookingOwner resolves the user behind a booking. It returns nil without error when
// the User service does not know the user.
func (s *BookingService) BookingOwner(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// BookedMovies resolves movie ids to full detail. One failure aborts the list.
func (s *BookingService) BookedMovies(ctx context.Context, requesterID string, movieIDs []string) ([]domain.Movie, error) {
	return resolveMovies(ctx, s.movies, requesterID, movieIDs)
}

func (s *BookingService) publish(ctx context.Context, action, actor, userID, date, movieID string) {
	if s.events == nil {
		return
	}
	event := domain.BookingChangedEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		UserID:    userID,
		Date:      date,
		MovieID:   movieID,
		Actor:     actor,
		ChangedAt: s.now().UTC(),
	}
	if err := s.events.PublishBookingChanged(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("user_id", userID), zap.Error(err))
	}
}

func movieNotScheduled() *domain.Error {
	return domain.NewError(domain.ErrMovieNotScheduled, "Movie not scheduled on this date")
}
