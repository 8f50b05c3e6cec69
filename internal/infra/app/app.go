package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/infra/config"
	kafkainfra "github.com/arklim/cinema-platform/internal/infra/kafka"
	"github.com/arklim/cinema-platform/internal/infra/logger"
	mongoinfra "github.com/arklim/cinema-platform/internal/infra/mongodb"
	"github.com/arklim/cinema-platform/internal/infra/peers"
	redisinfra "github.com/arklim/cinema-platform/internal/infra/redis"
	"github.com/arklim/cinema-platform/internal/infra/telemetry"
	mongorepo "github.com/arklim/cinema-platform/internal/repository/mongodb"
	redisrepo "github.com/arklim/cinema-platform/internal/repository/redis"
	transportgraphql "github.com/arklim/cinema-platform/internal/transport/graphql"
	transportgrpc "github.com/arklim/cinema-platform/internal/transport/grpc"
	grpcinterceptors "github.com/arklim/cinema-platform/internal/transport/grpc/interceptors"
	"github.com/arklim/cinema-platform/internal/transport/http/middleware"
	"github.com/arklim/cinema-platform/internal/transport/http/routes"
	"github.com/arklim/cinema-platform/internal/usecase"
)

// Service names accepted by New.
const (
	ServiceUser     = "user"
	ServiceMovie    = "movie"
	ServiceSchedule = "schedule"
	ServiceBooking  = "booking"
)

// Application runs one cinema service process.
type Application struct {
	cfg     *config.AppConfig
	service string
	logger  *zap.Logger

	engine   *gin.Engine
	httpAddr string

	grpcServer *grpc.Server
	grpcHealth *health.Server
	grpcAddr   string

	mongo    *mongoinfra.Client
	redis    *redisinfra.Client
	producer *kafkainfra.Producer
	consumer sarama.Consumer
	invalid  *kafkainfra.UserChangeConsumer
	schedule *peers.ScheduleClient
	tracer   *telemetry.TracerProvider
}

// shared holds what every service builds the same way.
type shared struct {
	log         *zap.Logger
	registry    *prometheus.Registry
	httpMetrics *middleware.HTTPMetrics
	peerMetrics *telemetry.PeerMetrics
	httpClient  *http.Client
	publisher   port.EventPublisher
	rateLimiter *middleware.RateLimiter
}

// DatabaseFor returns the MongoDB database owned by service.
func DatabaseFor(cfg config.MongoSettings, service string) (string, error) {
	switch service {
	case ServiceUser:
		return cfg.UsersDB, nil
	case ServiceMovie:
		return cfg.MoviesDB, nil
	case ServiceSchedule:
		return cfg.SchedulesDB, nil
	case ServiceBooking:
		return cfg.BookingsDB, nil
	default:
		return "", fmt.Errorf("unknown service %q", service)
	}
}

func New(ctx context.Context, cfg *config.AppConfig, service string) (*Application, error) {
	database, err := DatabaseFor(cfg.Mongo, service)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.App.Env, service)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &Application{cfg: cfg, service: service, logger: log}

	tracer, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, service, log)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	a.tracer = tracer

	mongoClient, err := mongoinfra.NewClient(ctx, cfg.Mongo, database, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("init mongo: %w", err)
	}
	a.mongo = mongoClient

	if cfg.Redis.Enabled {
		redisClient, err := redisinfra.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			a.redis = redisClient
		}
	}

	deps, err := a.buildShared(log)
	if err != nil {
		a.close()
		return nil, err
	}

	switch service {
	case ServiceUser:
		err = a.buildUser(ctx, deps)
	case ServiceMovie:
		err = a.buildMovie(ctx, deps)
	case ServiceSchedule:
		err = a.buildSchedule(ctx, deps)
	case ServiceBooking:
		err = a.buildBooking(ctx, deps)
	}
	if err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func (a *Application) buildShared(log *zap.Logger) (shared, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpMetrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{Registerer: registry})
	if err != nil {
		return shared{}, fmt.Errorf("init http metrics: %w", err)
	}
	peerMetrics, err := telemetry.NewPeerMetrics(registry)
	if err != nil {
		return shared{}, fmt.Errorf("init peer metrics: %w", err)
	}

	deps := shared{
		log:         log,
		registry:    registry,
		httpMetrics: httpMetrics,
		peerMetrics: peerMetrics,
		httpClient:  peers.NewHTTPClient(a.cfg.Peers.Timeout, a.service),
	}

	if len(a.cfg.Kafka.Brokers) > 0 {
		producer, err := kafkainfra.NewProducer(a.cfg.Kafka, log)
		if err != nil {
			log.Warn("failed to init kafka producer, using stub publisher", zap.Error(err))
			deps.publisher = kafkainfra.NewStubPublisher(log)
		} else {
			a.producer = producer
			deps.publisher = kafkainfra.NewEventPublisher(producer, a.cfg.App, a.service, log)
			log.Info("kafka event publisher initialized", zap.Strings("brokers", a.cfg.Kafka.Brokers))
		}
	} else {
		log.Info("kafka brokers not configured, using stub publisher")
		deps.publisher = kafkainfra.NewStubPublisher(log)
	}

	if a.redis != nil {
		store := redisrepo.NewRateLimitRepository(a.redis.Client(), redisrepo.SlidingWindowConfig{
			KeyPrefix: a.cfg.App.Name + ":" + a.service + ":rate-limit",
		})
		deps.rateLimiter = middleware.NewRateLimiter(store, log)
	}

	return deps, nil
}

// adminChecker builds the privilege cache over source and, for remote sources,
// subscribes it to user change events.
func (a *Application) adminChecker(deps shared, source port.PrivilegeSource, subscribe bool) (*usecase.AdminChecker, error) {
	cacheMetrics, err := telemetry.NewAdminCacheMetrics(deps.registry, a.service)
	if err != nil {
		return nil, fmt.Errorf("init admin cache metrics: %w", err)
	}

	checker, err := usecase.NewAdminChecker(source, usecase.AdminCheckOptions{
		TTL:        a.cfg.AdminCache.TTL,
		MaxEntries: a.cfg.AdminCache.MaxEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("init admin checker: %w", err)
	}
	checker.WithLogger(deps.log).WithMetrics(cacheMetrics)

	if subscribe && a.cfg.Kafka.InvalidateAdminCache && len(a.cfg.Kafka.Brokers) > 0 {
		consumer, err := kafkainfra.NewConsumer(a.cfg.Kafka)
		if err != nil {
			deps.log.Warn("admin cache invalidation disabled, relying on ttl", zap.Error(err))
		} else {
			a.consumer = consumer
			a.invalid = kafkainfra.NewUserChangeConsumer(checker, a.cfg.Kafka.TopicPrefix, deps.log)
		}
	}

	return checker, nil
}

func (a *Application) remotePrivileges(deps shared) port.PrivilegeSource {
	return peers.NewUserClient(a.cfg.User.BaseURL(), a.cfg.Peers.ServiceIdentity, deps.httpClient, deps.peerMetrics)
}

func (a *Application) routeDeps(deps shared) routes.Dependencies {
	rd := routes.Dependencies{
		Config:         a.cfg,
		Logger:         deps.log,
		Service:        a.service,
		Metrics:        deps.httpMetrics,
		Gatherer:       deps.registry,
		TracerProvider: a.tracer.Provider(),
		Database:       a.mongo,
		RateLimiter:    deps.rateLimiter,
	}
	if a.redis != nil {
		rd.Cache = a.redis
	}
	return rd
}

func ensureIndexes(ctx context.Context, indexer mongorepo.Indexer) error {
	if err := indexer.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	return nil
}

func (a *Application) buildUser(ctx context.Context, deps shared) error {
	repo := mongorepo.NewUserRepository(a.mongo.Database())
	if err := ensureIndexes(ctx, repo); err != nil {
		return err
	}

	checker, err := a.adminChecker(deps, usecase.NewLocalPrivilegeSource(repo), false)
	if err != nil {
		return err
	}
	ledger := peers.NewBookingClient(a.cfg.Booking.BaseURL(), deps.httpClient, deps.peerMetrics)

	users := usecase.NewUserService(repo, checker, ledger, deps.publisher).WithLogger(deps.log)

	a.engine = routes.RegisterUser(routes.UserDependencies{
		Dependencies: a.routeDeps(deps),
		Users:        users,
	})
	a.httpAddr = a.cfg.User.ListenAddr()
	return nil
}

func (a *Application) buildMovie(ctx context.Context, deps shared) error {
	repo := mongorepo.NewMovieRepository(a.mongo.Database())
	if err := ensureIndexes(ctx, repo); err != nil {
		return err
	}

	checker, err := a.adminChecker(deps, a.remotePrivileges(deps), true)
	if err != nil {
		return err
	}
	policy := domain.NewRatingPolicy(domain.ParseRatingPolicyMode(a.cfg.MoviePolicy.RatingPolicy))
	movies := usecase.NewMovieService(repo, checker, deps.publisher).
		WithRatingPolicy(policy).
		WithLogger(deps.log)

	schema, err := transportgraphql.NewMovieSchema(movies, deps.log)
	if err != nil {
		return fmt.Errorf("build movie schema: %w", err)
	}

	a.engine = routes.RegisterGraphQL(a.routeDeps(deps), transportgraphql.NewHandler(schema, deps.log).Serve)
	a.httpAddr = a.cfg.Movie.ListenAddr()
	return nil
}

func (a *Application) buildSchedule(ctx context.Context, deps shared) error {
	repo := mongorepo.NewScheduleRepository(a.mongo.Database())
	if err := ensureIndexes(ctx, repo); err != nil {
		return err
	}

	checker, err := a.adminChecker(deps, a.remotePrivileges(deps), true)
	if err != nil {
		return err
	}
	catalog := peers.NewMovieClient(a.cfg.Movie.BaseURL(), deps.httpClient, deps.peerMetrics)
	schedule := usecase.NewScheduleService(repo, checker, catalog, deps.publisher).WithLogger(deps.log)

	grpcSrv, healthSrv, err := transportgrpc.NewServer(transportgrpc.ServerDependencies{
		ScheduleService: schedule,
		Logger:          deps.log,
		Registerer:      deps.registry,
		Tracing:         grpcinterceptors.TracingOptions{TracerProvider: a.tracer.Provider()},
	})
	if err != nil {
		return fmt.Errorf("init grpc server: %w", err)
	}
	a.grpcServer = grpcSrv
	a.grpcHealth = healthSrv
	a.grpcAddr = a.cfg.Schedule.ListenAddr()

	// Health checks and /metrics are served on a side port.
	if a.cfg.Telemetry.MetricsPort > 0 {
		a.engine = routes.NewEngine(a.routeDeps(deps))
		a.httpAddr = fmt.Sprintf("%s:%d", a.cfg.Schedule.BindHost, a.cfg.Telemetry.MetricsPort)
	}
	return nil
}

func (a *Application) buildBooking(ctx context.Context, deps shared) error {
	repo := mongorepo.NewBookingRepository(a.mongo.Database())
	if err := ensureIndexes(ctx, repo); err != nil {
		return err
	}

	checker, err := a.adminChecker(deps, a.remotePrivileges(deps), true)
	if err != nil {
		return err
	}

	scheduleClient, err := peers.DialSchedule(a.cfg.Schedule.DialAddr(), a.cfg.Peers.Timeout, deps.peerMetrics,
		grpcinterceptors.ClientDialOption(grpcinterceptors.TracingOptions{TracerProvider: a.tracer.Provider()}),
	)
	if err != nil {
		return fmt.Errorf("dial schedule service: %w", err)
	}
	a.schedule = scheduleClient

	catalog := peers.NewMovieClient(a.cfg.Movie.BaseURL(), deps.httpClient, deps.peerMetrics)
	directory := peers.NewUserClient(a.cfg.User.BaseURL(), a.cfg.Peers.ServiceIdentity, deps.httpClient, deps.peerMetrics)

	bookings := usecase.NewBookingService(repo, checker, scheduleClient, catalog, directory, deps.publisher).WithLogger(deps.log)

	schema, err := transportgraphql.NewBookingSchema(bookings, deps.log)
	if err != nil {
		return fmt.Errorf("build booking schema: %w", err)
	}

	a.engine = routes.RegisterGraphQL(a.routeDeps(deps), transportgraphql.NewHandler(schema, deps.log).Serve)
	a.httpAddr = a.cfg.Booking.ListenAddr()
	return nil
}

func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer a.close()

	errCh := make(chan error, 3)

	var grpcListener net.Listener
	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.grpcAddr)
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}
		grpcListener = lis
		a.logger.Info("starting gRPC server", zap.String("address", a.grpcAddr))
		go func() {
			if err := a.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errCh <- fmt.Errorf("run grpc server: %w", err)
			}
		}()
	}
	defer func() {
		if a.grpcServer != nil {
			if a.grpcHealth != nil {
				a.grpcHealth.Shutdown()
			}
			a.grpcServer.GracefulStop()
		}
		if grpcListener != nil {
			_ = grpcListener.Close()
		}
	}()

	var srv *http.Server
	if a.engine != nil {
		srv = &http.Server{
			Addr:              a.httpAddr,
			Handler:           a.engine,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		a.logger.Info("starting HTTP server",
			zap.String("env", a.cfg.App.Env),
			zap.String("address", srv.Addr),
		)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("run server: %w", err)
			}
		}()
	}

	consumeCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	if a.invalid != nil && a.consumer != nil {
		go func() {
			// The TTL still bounds staleness when the consumer stops.
			if err := a.invalid.Run(consumeCtx, a.consumer); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Warn("admin cache invalidation consumer stopped", zap.Error(err))
			}
		}()
	}

	select {
	case <-ctx.Done():
		if srv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func (a *Application) close() {
	if a.schedule != nil {
		_ = a.schedule.Close()
	}
	if a.consumer != nil {
		_ = a.consumer.Close()
	}
	if a.producer != nil {
		_ = a.producer.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.mongo.Close(ctx)
	}
	if a.tracer != nil {
		_ = a.tracer.Shutdown(context.Background())
	}
}
