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

// ScheduleService implements the Schedule service operations.
type ScheduleService struct {
	repo   port.ScheduleRepository
	auth   Authorizer
	movies port.MovieCatalog
	events port.EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(repo port.ScheduleRepository, auth Authorizer, movies port.MovieCatalog, events port.EventPublisher) *ScheduleService {
	return &ScheduleService{
		repo:   repo,
		auth:   auth,
		movies: movies,
		events: events,
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

func (s *ScheduleService) WithLogger(logger *zap.Logger) *ScheduleService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *ScheduleService) WithNow(now func() time.Time) *ScheduleService {
	if now != nil {
		s.now = now
	}
	return s
}

// ListSchedule resolves every scheduled date and hands it to emit in storage order.
func (s *ScheduleService) ListSchedule(ctx context.Context, requesterID string, emit func(domain.ScheduledDay) error) error {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return err
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list schedule: %w", err)
	}
	for _, entry := range entries {
		movies, err := resolveMovies(ctx, s.movies, requesterID, entry.Movies)
		if err != nil {
			return err
		}
		if err := emit(domain.ScheduledDay{Date: entry.Date, Movies: movies}); err != nil {
			return err
		}
	}
	return nil
}

// MoviesByDate returns the movies scheduled on date with full detail.
func (s *ScheduleService) MoviesByDate(ctx context.Context, requesterID, date string) (*domain.ScheduledDay, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(domain.DateNotScheduledMessage)
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	movies, err := resolveMovies(ctx, s.movies, requesterID, entry.Movies)
	if err != nil {
		return nil, err
	}
	return &domain.ScheduledDay{Date: entry.Date, Movies: movies}, nil
}

// DatesByMovie returns every date movieID is scheduled on.
func (s *ScheduleService) DatesByMovie(ctx context.Context, requesterID, movieID string) ([]string, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(movieID) == "" {
		return nil, domain.InvalidArgument("movieId not provided")
	}
	dates, err := s.repo.DatesForMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("dates for movie: %w", err)
	}
	if len(dates) == 0 {
		return nil, domain.NotFound("No dates found for this movie")
	}
	return dates, nil
}

// AddSchedule creates a new date. Every movie must exist before anything is written.
func (s *ScheduleService) AddSchedule(ctx context.Context, requesterID, date string, movieIDs []string) error {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if strings.TrimSpace(date) == "" {
		return domain.InvalidArgument("date is required")
	}
	if id, dup := duplicateID(movieIDs); dup {
		return domain.InvalidArgument("Movie listed twice: %s", id)
	}

	if _, err := s.repo.GetByDate(ctx, date); err == nil {
		return dateExists()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("get schedule: %w", err)
	}

	if _, err := resolveMovies(ctx, s.movies, requesterID, movieIDs); err != nil {
		return err
	}

	ids := append([]string{}, movieIDs...)
	if err := s.repo.Create(ctx, domain.ScheduleEntry{Date: date, Movies: ids}); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return dateExists()
		}
		return fmt.Errorf("create schedule: %w", err)
	}

	s.publish(ctx, domain.ActionCreated, requesterID, date, ids)
	return nil
}

// AddMoviesToDate appends movies to date, creating the date when missing.
// Any overlap with already scheduled movies rejects the whole batch.
func (s *ScheduleService) AddMoviesToDate(ctx context.Context, requesterID, date string, movieIDs []string) error {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if strings.TrimSpace(date) == "" {
		return domain.InvalidArgument("date is required")
	}
	if len(movieIDs) == 0 {
		return domain.InvalidArgument("At least one movieId required")
	}
	if id, dup := duplicateID(movieIDs); dup {
		return domain.InvalidArgument("Movie listed twice: %s", id)
	}

	if _, err := resolveMovies(ctx, s.movies, requesterID, movieIDs); err != nil {
		return err
	}

	if err := s.repo.AddMovies(ctx, date, movieIDs); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return s.alreadyScheduled(ctx, date, movieIDs)
		}
		return fmt.Errorf("add movies to schedule: %w", err)
	}

	s.publish(ctx, domain.ActionUpdated, requesterID, date, movieIDs)
	return nil
}

// DeleteDate removes a whole date.
func (s *ScheduleService) DeleteDate(ctx context.Context, requesterID, date string) error {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if err := s.repo.DeleteDate(ctx, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound("Date not found")
		}
		return fmt.Errorf("delete schedule: %w", err)
	}

	s.publish(ctx, domain.ActionDeleted, requesterID, date, nil)
	return nil
}

// DeleteMoviesFromDate removes the listed movies that are present on date.
// It fails only when none of them are.
func (s *ScheduleService) DeleteMoviesFromDate(ctx context.Context, requesterID, date string, movieIDs []string) error {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if len(movieIDs) == 0 {
		return domain.InvalidArgument("moviesId list required")
	}
	if err := s.repo.RemoveMovies(ctx, date, movieIDs); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return domain.NotFound("Date not found")
		case errors.Is(err, repository.ErrItemNotFound):
			return domain.NotFound("None of the movies found in this date")
		default:
			return fmt.Errorf("remove movies from schedule: %w", err)
		}
	}

	s.publish(ctx, domain.ActionUpdated, requesterID, date, movieIDs)
	return nil
}

func (s *ScheduleService) alreadyScheduled(ctx context.Context, date string, movieIDs []string) error {
	entry, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return domain.AlreadyExists("Movies already scheduled for this date")
	}
	overlap := make([]string, 0, len(movieIDs))
	for _, id := range movieIDs {
		if entry.Contains(id) {
			overlap = append(overlap, id)
		}
	}
	return domain.AlreadyExists("Movies already scheduled for this date: %s", strings.Join(overlap, ", "))
}

func (s *ScheduleService) publish(ctx context.Context, action, actor, date string, movieIDs []string) {
	if s.events == nil {
		return
	}
	event := domain.ScheduleChangedEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		Date:      date,
		MovieIDs:  movieIDs,
		Actor:     actor,
		ChangedAt: s.now().UTC(),
	}
	if err := s.events.PublishScheduleChanged(ctx, event); err != nil {
		s.logger.Warn("failed to publish schedule event", zap.String("date", date), zap.Error(err))
	}
}

func dateExists() *domain.Error {
	return domain.AlreadyExists("Schedule date already exists")
}
