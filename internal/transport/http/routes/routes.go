package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/infra/config"
	"github.com/arklim/cinema-platform/internal/transport/http/handlers"
	"github.com/arklim/cinema-platform/internal/transport/http/middleware"
)

// Dependencies encapsulates the objects every service engine needs.
type Dependencies struct {
	Config         *config.AppConfig
	Logger         *zap.Logger
	Service        string
	Metrics        *middleware.HTTPMetrics
	Gatherer       prometheus.Gatherer
	TracerProvider trace.TracerProvider
	Database       DatabaseChecker
	Cache          CacheChecker
	RateLimiter    *middleware.RateLimiter
}

// DatabaseChecker exposes readiness behaviour for database connections.
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
}

// CacheChecker exposes readiness behaviour for cache backends.
type CacheChecker interface {
	HealthCheck(ctx context.Context) error
}

// UserDependencies adds the User API surface to the shared dependencies.
type UserDependencies struct {
	Dependencies
	Users handlers.UserService
}

// NewEngine builds the engine shared by every service: middleware chain, health checks and /metrics.
func NewEngine(deps Dependencies) *gin.Engine {
	if deps.Config != nil && deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if deps.TracerProvider != nil {
		r.Use(otelgin.Middleware(deps.Service, otelgin.WithTracerProvider(deps.TracerProvider)))
	}
	r.Use(middleware.EnrichContext())
	if deps.Config != nil {
		r.Use(middleware.TrustedPeers(deps.Config.RateLimit.TrustedPeerCIDRs, logger))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(deps.Metrics.Handler())

	healthOptions := []handlers.HealthOption{handlers.WithServiceName(deps.Service)}
	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("mongo", deps.Database.HealthCheck))
	}
	if deps.Cache != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("redis", deps.Cache.HealthCheck))
	}
	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	} else {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return r
}

// RegisterUser configures the User REST API.
func RegisterUser(deps UserDependencies) *gin.Engine {
	r := NewEngine(deps.Dependencies)

	userHandler := handlers.NewUserHandler(deps.Users)
	userHandler.RegisterPrivilegeRoute(r)

	scoped := r.Group("/:requester")
	scoped.Use(middleware.Requester("requester"))
	if limits := buildRateLimit(deps.Dependencies, "user_api", "requester"); limits != nil {
		scoped.Use(limits)
	}
	userHandler.RegisterRoutes(scoped)

	return r
}

// RegisterGraphQL mounts a GraphQL endpoint behind CORS.
func RegisterGraphQL(deps Dependencies, graphql gin.HandlerFunc) *gin.Engine {
	r := NewEngine(deps)

	var origins []string
	if deps.Config != nil {
		origins = deps.Config.App.CORSAllowedOrigins
	}

	group := r.Group("/graphql")
	group.Use(middleware.CORS(origins))
	if limits := buildRateLimit(deps, "graphql"); limits != nil {
		group.Use(limits)
	}
	group.POST("", graphql)
	group.GET("", graphql)
	group.OPTIONS("", func(c *gin.Context) {})

	return r
}

// buildRateLimit always limits by client IP and adds one rule per named route parameter.
func buildRateLimit(deps Dependencies, name string, params ...string) gin.HandlerFunc {
	if deps.RateLimiter == nil || deps.Config == nil {
		return nil
	}

	limit := deps.Config.RateLimit.MaxRequests
	if limit <= 0 {
		return nil
	}

	window := deps.Config.RateLimit.WindowDuration
	if window <= 0 {
		window = time.Minute
	}

	rules := []middleware.RateLimitRule{{
		Name:       name + "_ip",
		Limit:      limit,
		Window:     window,
		Identifier: middleware.ClientIPIdentifier(),
	}}
	for _, param := range params {
		rules = append(rules, middleware.RateLimitRule{
			Name:       name + "_" + param,
			Limit:      limit,
			Window:     window,
			Identifier: middleware.ParamIdentifier(param),
		})
	}

	return deps.RateLimiter.RateLimit(rules...)
}
