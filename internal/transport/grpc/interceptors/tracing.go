package interceptors

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/stats"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingOptions customises the OpenTelemetry instrumentation of gRPC traffic.
type TracingOptions struct {
	TracerProvider trace.TracerProvider
	Propagators    propagation.TextMapPropagator
	Additional     []otelgrpc.Option
}

func (opts TracingOptions) otelOptions() []otelgrpc.Option {
	options := make([]otelgrpc.Option, 0, len(opts.Additional)+2)
	if opts.TracerProvider != nil {
		options = append(options, otelgrpc.WithTracerProvider(opts.TracerProvider))
	}
	if opts.Propagators != nil {
		options = append(options, otelgrpc.WithPropagators(opts.Propagators))
	}
	return append(options, opts.Additional...)
}

// ServerStatsHandler builds the server-side stats handler that opens a span per call.
func ServerStatsHandler(opts TracingOptions) stats.Handler {
	return otelgrpc.NewServerHandler(opts.otelOptions()...)
}

// ClientDialOption instruments outbound connections so spans continue across services.
func ClientDialOption(opts TracingOptions) grpc.DialOption {
	return grpc.WithStatsHandler(otelgrpc.NewClientHandler(opts.otelOptions()...))
}
