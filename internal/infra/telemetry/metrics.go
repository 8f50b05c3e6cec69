package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// register adds c to reg, reusing a collector that is already registered under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return c, fmt.Errorf("register collector: %w", err)
		}
		existing, ok := already.ExistingCollector.(T)
		if !ok {
			return c, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
		}
		return existing, nil
	}
	return c, nil
}

// AdminCacheMetrics exports the privilege cache counters of one service.
type AdminCacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	refreshes prometheus.Counter
	failures  *prometheus.CounterVec
	evictions prometheus.Counter
}

// NewAdminCacheMetrics registers cinema_admin_cache_* collectors labelled with service.
func NewAdminCacheMetrics(reg prometheus.Registerer, service string) (*AdminCacheMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinema",
			Subsystem: "admin_cache",
			Name:      name,
			Help:      help,
		}, []string{"service"})
	}

	hits, err := register(reg, counter("hits_total", "Privilege lookups answered from the cache."))
	if err != nil {
		return nil, err
	}
	misses, err := register(reg, counter("misses_total", "Privilege lookups that required a refresh."))
	if err != nil {
		return nil, err
	}
	refreshes, err := register(reg, counter("refreshes_total", "Successful privilege refreshes from the User service."))
	if err != nil {
		return nil, err
	}
	evictions, err := register(reg, counter("evictions_total", "Entries evicted because the cache reached its bound."))
	if err != nil {
		return nil, err
	}
	failures, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema",
		Subsystem: "admin_cache",
		Name:      "refresh_failures_total",
		Help:      "Failed privilege refreshes partitioned by failure kind.",
	}, []string{"service", "kind"}))
	if err != nil {
		return nil, err
	}

	return &AdminCacheMetrics{
		hits:      hits.WithLabelValues(service),
		misses:    misses.WithLabelValues(service),
		refreshes: refreshes.WithLabelValues(service),
		evictions: evictions.WithLabelValues(service),
		failures:  failures.MustCurryWith(prometheus.Labels{"service": service}),
	}, nil
}

func (m *AdminCacheMetrics) IncHit()      { m.hits.Inc() }
func (m *AdminCacheMetrics) IncMiss()     { m.misses.Inc() }
func (m *AdminCacheMetrics) IncRefresh()  { m.refreshes.Inc() }
func (m *AdminCacheMetrics) IncEviction() { m.evictions.Inc() }

func (m *AdminCacheMetrics) IncRefreshFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// PeerMetrics records outbound calls to other cinema services.
type PeerMetrics struct {
	duration *prometheus.HistogramVec
}

// NewPeerMetrics registers cinema_peer_request_duration_seconds.
func NewPeerMetrics(reg prometheus.Registerer) (*PeerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cinema",
		Subsystem: "peer",
		Name:      "request_duration_seconds",
		Help:      "Latency of calls to peer services partitioned by peer, operation and outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"peer", "operation", "outcome"}))
	if err != nil {
		return nil, err
	}
	return &PeerMetrics{duration: duration}, nil
}

// Observe records one peer call. A nil receiver is a no-op.
func (m *PeerMetrics) Observe(peer, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.duration.WithLabelValues(peer, operation, outcome).Observe(time.Since(started).Seconds())
}
