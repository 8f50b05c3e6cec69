package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

const (
	defaultAdminCacheTTL        = 60 * time.Second
	defaultAdminCacheMaxEntries = 10000
)

// AdminCacheMetrics captures telemetry hooks for the privilege cache.
type AdminCacheMetrics interface {
	IncHit()
	IncMiss()
	IncRefresh()
	IncRefreshFailure(kind string)
	IncEviction()
}

// AdminCheckOptions configures the privilege cache.
type AdminCheckOptions struct {
	TTL        time.Duration
	MaxEntries int
}

type adminCacheEntry struct {
	isAdmin   bool
	fetchedAt time.Time
}

// AdminChecker answers privilege questions from a bounded per-process cache,
// falling back to the PrivilegeSource on miss or expiry.
type AdminChecker struct {
	source  port.PrivilegeSource
	ttl     time.Duration
	entries *lru.Cache[string, adminCacheEntry]
	flights singleflight.Group
	logger  *zap.Logger
	now     func() time.Time
	metrics AdminCacheMetrics
}

// NewAdminChecker constructs the checker.
func NewAdminChecker(source port.PrivilegeSource, opts AdminCheckOptions) (*AdminChecker, error) {
	if source == nil {
		return nil, errors.New("admin check: privilege source is required")
	}
	c := &AdminChecker{
		source: source,
		ttl:    opts.TTL,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	if c.ttl <= 0 {
		c.ttl = defaultAdminCacheTTL
	}
	size := opts.MaxEntries
	if size <= 0 {
		size = defaultAdminCacheMaxEntries
	}

	entries, err := lru.NewWithEvict[string, adminCacheEntry](size, func(string, adminCacheEntry) {
		if c.metrics != nil {
			c.metrics.IncEviction()
		}
	})
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return c, nil
}

// WithLogger attaches a structured logger.
func (c *AdminChecker) WithLogger(logger *zap.Logger) *AdminChecker {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithNow overrides the clock, primarily for deterministic testing.
func (c *AdminChecker) WithNow(now func() time.Time) *AdminChecker {
	if now != nil {
		c.now = now
	}
	return c
}

// WithMetrics wires cache telemetry.
func (c *AdminChecker) WithMetrics(metrics AdminCacheMetrics) *AdminChecker {
	if metrics != nil {
		c.metrics = metrics
	}
	return c
}

// TTL reports the configured freshness window.
func (c *AdminChecker) TTL() time.Duration {
	return c.ttl
}

// Len reports the number of cached requesters, expired ones included.
func (c *AdminChecker) Len() int {
	return c.entries.Len()
}

// Forget drops the cached verdict for requesterID.
func (c *AdminChecker) Forget(requesterID string) {
	c.entries.Remove(strings.TrimSpace(requesterID))
}

// VerifyAdmin reports whether requesterID is an admin.
// Unknown requesters fail with ErrVerificationFailed, unreachable sources with ErrVerificationUnavailable.
func (c *AdminChecker) VerifyAdmin(ctx context.Context, requesterID string) (bool, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return false, verificationFailed(domain.InvalidArgument("requester id is required"))
	}

	if isAdmin, ok := c.lookup(requesterID); ok {
		if c.metrics != nil {
			c.metrics.IncHit()
		}
		return isAdmin, nil
	}
	if c.metrics != nil {
		c.metrics.IncMiss()
	}

	// Concurrent misses for the same requester share one remote lookup. The
	// lookup outlives a cancelled caller so the other waiters still get an answer.
	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := c.flights.Do(requesterID, func() (any, error) {
		if isAdmin, ok := c.lookup(requesterID); ok {
			return isAdmin, nil
		}
		return c.refresh(flightCtx, requesterID)
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

// RequireAdmin fails with ErrUnauthorized when requesterID is not an admin.
func (c *AdminChecker) RequireAdmin(ctx context.Context, requesterID string) error {
	isAdmin, err := c.VerifyAdmin(ctx, requesterID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.Unauthorized()
	}
	return nil
}

func (c *AdminChecker) lookup(requesterID string) (bool, bool) {
	entry, ok := c.entries.Get(requesterID)
	if !ok {
		return false, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return false, false
	}
	return entry.isAdmin, true
}

func (c *AdminChecker) refresh(ctx context.Context, requesterID string) (bool, error) {
	isAdmin, err := c.source.IsAdmin(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.logger.Warn("privilege verification failed", zap.String("requester_id", requesterID), zap.Error(err))
			if c.metrics != nil {
				c.metrics.IncRefreshFailure("verification_failed")
			}
			return false, verificationFailed(err)
		}
		c.logger.Error("privilege source unavailable", zap.String("requester_id", requesterID), zap.Error(err))
		if c.metrics != nil {
			c.metrics.IncRefreshFailure("verification_unavailable")
		}
		return false, &domain.Error{
			Kind:    domain.ErrVerificationUnavailable,
			Message: "User service unreachable",
			Peer:    domain.PeerUser,
			Cause:   err,
		}
	}

	c.entries.Add(requesterID, adminCacheEntry{isAdmin: isAdmin, fetchedAt: c.now()})
	if c.metrics != nil {
		c.metrics.IncRefresh()
	}
	return isAdmin, nil
}

func verificationFailed(cause error) *domain.Error {
	return &domain.Error{
		Kind:    domain.ErrVerificationFailed,
		Message: "Unable to verify user",
		Peer:    domain.PeerUser,
		Cause:   cause,
	}
}
