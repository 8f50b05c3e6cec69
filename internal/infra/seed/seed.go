package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/repository"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// Fixtures is the demo data set shared by the four services.
type Fixtures struct {
	Users     []domain.User
	Movies    []domain.Movie
	Schedules []domain.ScheduleEntry
	Bookings  []domain.Booking
}

// Repositories receives the fixtures. Nil entries are skipped, so one service
// database can be seeded on its own.
type Repositories struct {
	Users     port.UserRepository
	Movies    port.MovieRepository
	Schedules port.ScheduleRepository
	Bookings  port.BookingRepository
}

// Report counts inserted and already present records.
type Report struct {
	Inserted int
	Skipped  int
}

func (r *Report) record(err error) error {
	switch {
	case err == nil:
		r.Inserted++
		return nil
	case errors.Is(err, repository.ErrAlreadyExists):
		r.Skipped++
		return nil
	default:
		return err
	}
}

// Load decodes the embedded fixtures.
func Load() (Fixtures, error) {
	var f Fixtures
	for name, target := range map[string]any{
		"users":     &f.Users,
		"movies":    &f.Movies,
		"schedules": &f.Schedules,
		"bookings":  &f.Bookings,
	} {
		raw, err := fixtureFS.ReadFile("fixtures/" + name + ".json")
		if err != nil {
			return Fixtures{}, fmt.Errorf("read %s fixture: %w", name, err)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return Fixtures{}, fmt.Errorf("decode %s fixture: %w", name, err)
		}
	}
	return f, nil
}

// Run writes fixtures into repos. Records that already exist are left untouched.
func Run(ctx context.Context, repos Repositories, f Fixtures, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var report Report

	if repos.Users != nil {
		for _, user := range f.Users {
			if err := report.record(repos.Users.Create(ctx, user)); err != nil {
				return report, fmt.Errorf("seed user %s: %w", user.ID, err)
			}
		}
	}

	if repos.Movies != nil {
		for _, movie := range f.Movies {
			if err := report.record(repos.Movies.Create(ctx, movie)); err != nil {
				return report, fmt.Errorf("seed movie %s: %w", movie.ID, err)
			}
		}
	}

	if repos.Schedules != nil {
		for _, entry := range f.Schedules {
			if err := report.record(repos.Schedules.Create(ctx, entry)); err != nil {
				return report, fmt.Errorf("seed schedule %s: %w", entry.Date, err)
			}
		}
	}

	if repos.Bookings != nil {
		for _, booking := range f.Bookings {
			for _, date := range booking.Dates {
				for _, movieID := range date.Movies {
					_, err := repos.Bookings.AddMovie(ctx, booking.UserID, date.Date, movieID)
					if err := report.record(err); err != nil {
						return report, fmt.Errorf("seed booking %s/%s: %w", booking.UserID, date.Date, err)
					}
				}
			}
		}
	}

	logger.Info("seed completed",
		zap.Int("inserted", report.Inserted),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}
