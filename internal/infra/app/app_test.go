package app

import (
	"context"
	"testing"

	"github.com/arklim/cinema-platform/internal/infra/config"
)

func TestDatabaseForEachService(t *testing.T) {
	cfg := config.MongoSettings{UsersDB: "users_db", MoviesDB: "movies_db", SchedulesDB: "schedules_db", BookingsDB: "bookings_db"}
	cases := map[string]string{
		ServiceUser:     "users_db",
		ServiceMovie:    "movies_db",
		ServiceSchedule: "schedules_db",
		ServiceBooking:  "bookings_db",
	}
	for service, want := range cases {
		got, err := DatabaseFor(cfg, service)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", service, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", service, want, got)
		}
	}
}

func TestNewRejectsUnknownService(t *testing.T) {
	if _, err := New(context.Background(), &config.AppConfig{}, "showtimes"); err == nil {
		t.Fatalf("expected error for unknown service")
	}
}
