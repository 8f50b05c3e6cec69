package port

import (
	"context"
	"time"
)

// WindowUsage describes a sliding window after one admission attempt.
type WindowUsage struct {
	// Count is the number of attempts inside the window before this one.
	Count    int
	Admitted bool
	// Oldest is the earliest attempt still inside the window, zero when empty.
	Oldest time.Time
}

// RateLimitStore admits attempts against a shared sliding window.
type RateLimitStore interface {
	Admit(ctx context.Context, key string, limit int, window time.Duration, at time.Time) (WindowUsage, error)
}
