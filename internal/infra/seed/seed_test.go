package seed

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/repository"
)

type memoryUsers struct {
	byID map[string]domain.User
}

func (m *memoryUsers) List(context.Context) ([]domain.User, error) { return nil, nil }
func (m *memoryUsers) GetByID(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryUsers) GetByName(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryUsers) Rename(context.Context, string, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryUsers) Delete(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryUsers) Create(_ context.Context, user domain.User) error {
	if _, ok := m.byID[user.ID]; ok {
		return repository.ErrAlreadyExists
	}
	m.byID[user.ID] = user
	return nil
}

type memoryBookings struct {
	added map[string]bool
	err   error
}

func (m *memoryBookings) List(context.Context) ([]domain.Booking, error) { return nil, nil }
func (m *memoryBookings) GetByUser(context.Context, string) (*domain.Booking, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryBookings) RemoveMovie(context.Context, string, string, string) (*domain.Booking, error) {
	return nil, repository.ErrNotFound
}
func (m *memoryBookings) DeleteByUser(context.Context, string) error { return nil }
func (m *memoryBookings) AddMovie(_ context.Context, userID, date, movieID string) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID + "/" + date + "/" + movieID
	if m.added[key] {
		return nil, repository.ErrAlreadyExists
	}
	m.added[key] = true
	return &domain.Booking{UserID: userID}, nil
}

func TestLoadEmbeddedFixtures(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	if len(f.Users) != 7 || len(f.Movies) != 7 || len(f.Bookings) != 3 || len(f.Schedules) != 6 {
		t.Fatalf("unexpected fixture sizes: %d users, %d movies, %d bookings, %d schedules",
			len(f.Users), len(f.Movies), len(f.Bookings), len(f.Schedules))
	}

	admins := 0
	for _, u := range f.Users {
		if u.IsAdmin {
			admins++
			if u.ID != "chris_rivers" {
				t.Fatalf("unexpected admin %s", u.ID)
			}
		}
	}
	if admins != 1 {
		t.Fatalf("expected exactly one admin, got %d", admins)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	users := &memoryUsers{byID: make(map[string]domain.User)}
	bookings := &memoryBookings{added: make(map[string]bool)}
	repos := Repositories{Users: users, Bookings: bookings}

	first, err := Run(context.Background(), repos, f, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	// 7 users plus 6 booked movies across the three booking documents.
	if first.Inserted != 13 || first.Skipped != 0 {
		t.Fatalf("unexpected first report: %+v", first)
	}

	second, err := Run(context.Background(), repos, f, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Inserted != 0 || second.Skipped != 13 {
		t.Fatalf("unexpected second report: %+v", second)
	}
	if users.byID["dwight_schrute"].LastActive != 1360031202 {
		t.Fatalf("last_active not decoded: %+v", users.byID["dwight_schrute"])
	}
}

func TestRunStopsOnStoreFailure(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	boom := errors.New("write concern error")
	_, err = Run(context.Background(), Repositories{Bookings: &memoryBookings{added: map[string]bool{}, err: boom}}, f, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store failure, got %v", err)
	}
}
