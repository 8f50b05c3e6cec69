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

// LocalPrivilegeSource answers privilege checks straight from the user store.
// The User service uses it instead of calling itself over HTTP.
type LocalPrivilegeSource struct {
	repo port.UserRepository
}

func NewLocalPrivilegeSource(repo port.UserRepository) *LocalPrivilegeSource {
	return &LocalPrivilegeSource{repo: repo}
}

func (s *LocalPrivilegeSource) IsAdmin(ctx context.Context, requesterID string) (bool, error) {
	user, err := s.repo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, domain.NotFound("User ID not found")
		}
		return false, err
	}
	return user.IsAdmin, nil
}

type cacheForgetter interface {
	Forget(requesterID string)
}

// UserService implements the User service operations.
type UserService struct {
	repo   port.UserRepository
	auth   Authorizer
	ledger port.BookingLedger
	events port.EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService constructs the user service.
func NewUserService(repo port.UserRepository, auth Authorizer, ledger port.BookingLedger, events port.EventPublisher) *UserService {
	return &UserService{
		repo:   repo,
		auth:   auth,
		ledger: ledger,
		events: events,
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

func (s *UserService) WithLogger(logger *zap.Logger) *UserService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *UserService) WithNow(now func() time.Time) *UserService {
	if now != nil {
		s.now = now
	}
	return s
}

// AdminStatus is the unauthenticated privilege lookup other services call.
func (s *UserService) AdminStatus(ctx context.Context, userID string) (*domain.AdminStatus, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("User ID not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.AdminStatus{ID: user.ID, IsAdmin: user.IsAdmin}, nil
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context, requesterID string) ([]domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns one user by id.
func (s *UserService) GetUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("User ID not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUserByName returns the first user carrying name.
func (s *UserService) GetUserByName(ctx context.Context, requesterID, name string) (*domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.InvalidArgument("Name parameter required")
	}
	user, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("User name not found")
		}
		return nil, fmt.Errorf("get user by name: %w", err)
	}
	return user, nil
}

// UsersWhoBooked returns the names of users holding a booking for movieID on date.
func (s *UserService) UsersWhoBooked(ctx context.Context, requesterID, date, movieID string) ([]string, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(date) == "" || strings.TrimSpace(movieID) == "" {
		return nil, domain.InvalidArgument("date and movie are required")
	}

	bookings, err := s.ledger.BookingsWithUsers(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for _, b := range bookings {
		booking := domain.Booking{UserID: b.UserID, Dates: b.Dates}
		if !booking.Has(date, movieID) {
			continue
		}
		if b.UserName == "" {
			return nil, domain.NotFound("The user does not exist")
		}
		names = append(names, b.UserName)
	}
	if len(names) == 0 {
		return nil, domain.NotFound("No bookings found for the given date and movie")
	}
	return names, nil
}

// AddUser creates the user identified by userID. A body id, when present, must match.
func (s *UserService) AddUser(ctx context.Context, requesterID, userID string, user domain.User) (*domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.InvalidArgument("user id is required")
	}
	if bodyID := strings.TrimSpace(user.ID); bodyID != "" && bodyID != userID {
		return nil, domain.InvalidArgument("user id in body does not match path: %s", bodyID)
	}
	user.ID = userID

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.AlreadyExists("User ID already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.publish(ctx, domain.ActionCreated, requesterID, userID, &user)
	return &user, nil
}

// RenameUser changes a user's display name.
func (s *UserService) RenameUser(ctx context.Context, requesterID, userID, name string) (*domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	user, err := s.repo.Rename(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("user ID not found")
		}
		return nil, fmt.Errorf("rename user: %w", err)
	}

	s.publish(ctx, domain.ActionUpdated, requesterID, userID, user)
	return user, nil
}

// DeleteUser removes a user and returns the removed record.
func (s *UserService) DeleteUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	if err := s.auth.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	user, err := s.repo.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("user ID not found")
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}

	if f, ok := s.auth.(cacheForgetter); ok {
		f.Forget(userID)
	}
	s.publish(ctx, domain.ActionDeleted, requesterID, userID, nil)
	return user, nil
}

func (s *UserService) publish(ctx context.Context, action, actor, userID string, user *domain.User) {
	if s.events == nil {
		return
	}
	event := domain.UserChangedEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		UserID:    userID,
		User:      user,
		Actor:     actor,
		ChangedAt: s.now().UTC(),
	}
	if err := s.events.PublishUserChanged(ctx, event); err != nil {
		s.logger.Warn("failed to publish user event", zap.String("user_id", userID), zap.Error(err))
	}
}
