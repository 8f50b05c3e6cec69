package transportgrpc

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcinterceptors "github.com/arklim/cinema-platform/internal/transport/grpc/interceptors"
	"github.com/arklim/cinema-platform/internal/transport/grpc/schedulev1"
)

// ServerDependencies encapsulates services required by the gRPC server layer.
type ServerDependencies struct {
	ScheduleService ScheduleService
	Logger          *zap.Logger
	Registerer      prometheus.Registerer
	Tracing         grpcinterceptors.TracingOptions
}

// NewServer wires the schedule service with logging, metrics and tracing.
// The returned health server reports SERVING for the schedule service until shut down.
func NewServer(deps ServerDependencies) (*grpc.Server, *health.Server, error) {
	if deps.ScheduleService == nil {
		return nil, nil, fmt.Errorf("schedule service is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics, err := grpcinterceptors.NewGRPCMetrics(grpcinterceptors.GRPCMetricsOptions{Registerer: deps.Registerer})
	if err != nil {
		return nil, nil, err
	}
	logging := grpcinterceptors.NewLogging(logger)

	server := grpc.NewServer(
		grpc.StatsHandler(grpcinterceptors.ServerStatsHandler(deps.Tracing)),
		grpc.ChainUnaryInterceptor(metrics.UnaryServerInterceptor(), logging.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(metrics.StreamServerInterceptor(), logging.StreamServerInterceptor()),
	)

	schedulev1.RegisterScheduleServer(server, NewScheduleServer(deps.ScheduleService, logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(schedulev1.Schedule_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	// Register reflection service for tools like grpcurl.
	reflection.Register(server)

	return server, healthServer, nil
}
