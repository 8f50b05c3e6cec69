package domain

import "time"

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// MovieChangedEvent represents the payload for cinema.movie.changed messages.
type MovieChangedEvent struct {
	EventID   string
	Action    string
	MovieID   string
	Movie     *Movie
	Actor     string
	ChangedAt time.Time
}

// UserChangedEvent represents the payload for cinema.user.changed messages.
type UserChangedEvent struct {
	EventID   string
	Action    string
	UserID    string
	User      *User
	Actor     string
	ChangedAt time.Time
}

// ScheduleChangedEvent represents the payload for cinema.schedule.changed messages.
type ScheduleChangedEvent struct {
	EventID   string
	Action    string
	Date      string
	MovieIDs  []string
	Actor     string
	ChangedAt time.Time
}

// BookingChangedEvent represents the payload for cinema.booking.changed messages.
type BookingChangedEvent struct {
	EventID   string
	Action    string
	UserID    string
	Date      string
	MovieID   string
	Actor     string
	ChangedAt time.Time
}
