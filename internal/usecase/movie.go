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

// MovieService implements the Movie service operations.
type MovieService struct {
	repo   port.MovieRepository
	auth   Authorizer
	events port.EventPublisher
	policy domain.RatingPolicy
	logger *zap.Logger
	now    func() time.Time
}

// NewMovieService constructs the movie service.
func NewMovieService(repo port.MovieRepository, auth Authorizer, events port.EventPublisher) *MovieService {
	return &MovieService{
		repo:   repo,
		auth:   auth,
		events: events,
		policy: domain.NewRatingPolicy(domain.RatingPolicyVerified),
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// WithRatingPolicy selects who may change ratings.
func (s *MovieService) WithRatingPolicy(policy domain.RatingPolicy) *MovieService {
	s.policy = policy
	return s
}

func (s *MovieService) WithLogger(logger *zap.Logger) *MovieService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *MovieService) WithNow(now func() time.Time) *MovieService {
	if now != nil {
		s.now = now
	}
	return s
}

// ListMovies returns the whole catalogue.
func (s *MovieService) ListMovies(ctx context.Context, requesterID string) ([]domain.Movie, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// MovieByID returns one movie.
func (s *MovieService) MovieByID(ctx context.Context, requesterID, id string) (*domain.Movie, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, movieNotFound(id)
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// MovieByTitle returns the first movie carrying title.
func (s *MovieService) MovieByTitle(ctx context.Context, requesterID, title string) (*domain.Movie, error) {
	if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	movie, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("Movie not found with title: %s", title)
		}
		return nil, fmt.Errorf("get movie by title: %w", err)
	}
	return movie, nil
}

// AddMovie stores a new movie. Ids are unique.
func (s *MovieService) AddMovie(ctx context.Context, requesterID string, movie domain.Movie) (*domain.Movie, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	movie.ID = strings.TrimSpace(movie.ID)
	if movie.ID == "" {
		return nil, domain.InvalidArgument("movie id is required")
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.AlreadyExists("Movie ID already exists: %s", movie.ID)
		}
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.publish(ctx, domain.ActionCreated, requesterID, movie.ID, &movie)
	return &movie, nil
}

// UpdateRating changes a movie rating. The rating policy decides the privilege needed.
func (s *MovieService) UpdateRating(ctx context.Context, requesterID, id string, rating float64) (*domain.Movie, error) {
	if s.policy.RequiresAdmin() {
		if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
			return nil, err
		}
	} else if _, err := s.auth.VerifyAdmin(ctx, requesterID); err != nil {
		return nil, err
	}

	movie, err := s.repo.UpdateRating(ctx, id, rating)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, movieNotFound(id)
		}
		return nil, fmt.Errorf("update rating: %w", err)
	}

	s.publish(ctx, domain.ActionUpdated, requesterID, movie.ID, movie)
	return movie, nil
}

// DeleteMovie removes a movie and returns the removed record.
func (s *MovieService) DeleteMovie(ctx context.Context, requesterID, id string) (*domain.Movie, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	movie, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, movieNotFound(id)
		}
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	s.publish(ctx, domain.ActionDeleted, requesterID, movie.ID, nil)
	return movie, nil
}

func (s *MovieService) publish(ctx context.Context, action, actor, movieID string, movie *domain.Movie) {
	if s.events == nil {
		return
	}
	event := domain.MovieChangedEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		MovieID:   movieID,
		Movie:     movie,
		Actor:     actor,
		ChangedAt: s.now().UTC(),
	}
	if err := s.events.PublishMovieChanged(ctx, event); err != nil {
		s.logger.Warn("failed to publish movie event", zap.String("movie_id", movieID), zap.Error(err))
	}
}

func movieNotFound(id string) *domain.Error {
	return domain.NotFound("Movie not found with id: %s", id)
}
