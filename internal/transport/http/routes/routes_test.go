package routes_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/infra/config"
	"github.com/arklim/cinema-platform/internal/transport/http/middleware"
	httproutes "github.com/arklim/cinema-platform/internal/transport/http/routes"
)

type adminOnlyUsers struct{}

func (adminOnlyUsers) AdminStatus(ctx context.Context, userID string) (*domain.AdminStatus, error) {
	return &domain.AdminStatus{ID: userID, IsAdmin: userID == "chris_rivers"}, nil
}

func (adminOnlyUsers) ListUsers(ctx context.Context, requesterID string) ([]domain.User, error) {
	if requesterID != "chris_rivers" {
		return nil, domain.Unauthorized()
	}
	return []domain.User{{ID: "chris_rivers", Name: "Chris Rivers", IsAdmin: true}}, nil
}

func (adminOnlyUsers) GetUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	return nil, domain.NotFound("User ID not found")
}

func (adminOnlyUsers) GetUserByName(ctx context.Context, requesterID, name string) (*domain.User, error) {
	return nil, domain.NotFound("User name not found")
}

func (adminOnlyUsers) UsersWhoBooked(ctx context.Context, requesterID, date, movieID string) ([]string, error) {
	return nil, domain.NotFound("No bookings found for the given date and movie")
}

func (adminOnlyUsers) AddUser(ctx context.Context, requesterID, userID string, user domain.User) (*domain.User, error) {
	return &user, nil
}

func (adminOnlyUsers) RenameUser(ctx context.Context, requesterID, userID, name string) (*domain.User, error) {
	return nil, domain.NotFound("user ID not found")
}

func (adminOnlyUsers) DeleteUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	return nil, domain.NotFound("user ID not found")
}

type countingStore struct {
	counts map[string]int
}

func (s *countingStore) Admit(ctx context.Context, key string, limit int, window time.Duration, at time.Time) (port.WindowUsage, error) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	count := s.counts[key]
	if count >= limit {
		return port.WindowUsage{Count: count, Oldest: at}, nil
	}
	s.counts[key] = count + 1
	return port.WindowUsage{Count: count, Admitted: true, Oldest: at}, nil
}

type failingCheck struct{}

func (failingCheck) HealthCheck(context.Context) error { return errors.New("server selection timeout") }

func baseDeps() httproutes.Dependencies {
	gin.SetMode(gin.TestMode)
	return httproutes.Dependencies{
		Config:   &config.AppConfig{App: config.AppSettings{Env: "test", CORSAllowedOrigins: []string{"https://cinema.example.com"}}},
		Logger:   zap.NewNop(),
		Service:  "user",
		Gatherer: prometheus.NewRegistry(),
	}
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := httproutes.NewEngine(baseDeps())

	if w := do(r, http.MethodGet, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/metrics"); w.Code != http.StatusOK {
		t.Fatalf("expected metrics status 200, got %d", w.Code)
	}
}

func TestReadinessFailsWhenDatabaseDown(t *testing.T) {
	deps := baseDeps()
	deps.Database = failingCheck{}
	r := httproutes.NewEngine(deps)

	if w := do(r, http.MethodGet, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}

func TestUserRoutesAreScopedByRequester(t *testing.T) {
	r := httproutes.RegisterUser(httproutes.UserDependencies{
		Dependencies: baseDeps(),
		Users:        adminOnlyUsers{},
	})

	if w := do(r, http.MethodGet, "/chris_rivers/users/json"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/peter_curley/users/json"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/users/peter_curley/is_admin"); w.Code != http.StatusOK {
		t.Fatalf("expected privilege route to answer 200, got %d", w.Code)
	}
}

func TestUserRoutesRateLimitPerRequester(t *testing.T) {
	deps := baseDeps()
	deps.Config.RateLimit = config.RateLimitSettings{MaxRequests: 2, WindowDuration: time.Minute}
	deps.RateLimiter = middleware.NewRateLimiter(&countingStore{}, zap.NewNop())
	r := httproutes.RegisterUser(httproutes.UserDependencies{
		Dependencies: deps,
		Users:        adminOnlyUsers{},
	})

	for i := 0; i < 2; i++ {
		if w := do(r, http.MethodGet, "/chris_rivers/users/json"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := do(r, http.MethodGet, "/chris_rivers/users/json"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/users/chris_rivers/is_admin"); w.Code != http.StatusOK {
		t.Fatalf("privilege route must not be rate limited, got %d", w.Code)
	}
}

func TestGraphQLRouteAnswersPreflight(t *testing.T) {
	called := false
	r := httproutes.RegisterGraphQL(baseDeps(), func(c *gin.Context) {
		called = true
		c.JSON(http.StatusOK, gin.H{"data": nil})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "https://cinema.example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://cinema.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}

	if w := do(r, http.MethodPost, "/graphql"); w.Code != http.StatusOK || !called {
		t.Fatalf("expected graphql handler to run, got %d", w.Code)
	}
}

func TestGraphQLFanOutFromPeersIsNotLimited(t *testing.T) {
	deps := baseDeps()
	deps.Config.RateLimit = config.RateLimitSettings{
		MaxRequests:      2,
		WindowDuration:   time.Minute,
		TrustedPeerCIDRs: []string{"10.0.0.0/8"},
	}
	deps.RateLimiter = middleware.NewRateLimiter(&countingStore{}, zap.NewNop())
	r := httproutes.RegisterGraphQL(deps, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": nil})
	})

	post := func(remote string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/graphql", nil)
		req.RemoteAddr = remote
		req.Header.Set(domain.PeerHeader, domain.PeerBooking)
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 10; i++ {
		if code := post("10.0.0.5:52000"); code != http.StatusOK {
			t.Fatalf("peer request %d: expected 200, got %d", i, code)
		}
	}

	for i := 0; i < 2; i++ {
		if code := post("203.0.113.9:52000"); code != http.StatusOK {
			t.Fatalf("public request %d: expected 200, got %d", i, code)
		}
	}
	if code := post("203.0.113.9:52000"); code != http.StatusTooManyRequests {
		t.Fatalf("expected header from a public address to be limited, got %d", code)
	}
}
