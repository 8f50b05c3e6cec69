package interceptors

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// requesterMessage is implemented by requests that carry the caller's user id.
type requesterMessage interface {
	GetUserId() string
}

type requesterContextKey struct{}

// WithRequester returns a derived context holding the caller's user id.
func WithRequester(ctx context.Context, requesterID string) context.Context {
	if requesterID == "" {
		return ctx
	}
	return context.WithValue(ctx, requesterContextKey{}, requesterID)
}

// RequesterFromContext extracts the caller's user id when available.
func RequesterFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	requesterID, ok := ctx.Value(requesterContextKey{}).(string)
	return requesterID, ok && requesterID != ""
}

// Logging logs every completed call with its status code and requester.
type Logging struct {
	logger *zap.Logger
}

func NewLogging(logger *zap.Logger) *Logging {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logging{logger: logger}
}

// UnaryServerInterceptor stores the requester in the context and logs the outcome.
func (l *Logging) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requesterID := ""
		if msg, ok := req.(requesterMessage); ok {
			requesterID = msg.GetUserId()
			ctx = WithRequester(ctx, requesterID)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		l.log(info.FullMethod, requesterID, start, err)
		return resp, err
	}
}

// StreamServerInterceptor logs server streams. The requester is only known once the handler reads the request.
func (l *Logging) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		wrapped := &requesterStream{ServerStream: ss}
		start := time.Now()
		err := handler(srv, wrapped)
		l.log(info.FullMethod, wrapped.requesterID, start, err)
		return err
	}
}

func (l *Logging) log(method, requesterID string, start time.Time, err error) {
	code := status.Code(err)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("duration", time.Since(start)),
	}
	if requesterID != "" {
		fields = append(fields, zap.String("requester_id", requesterID))
	}

	switch code {
	case codes.OK:
		l.logger.Info("gRPC request completed", fields...)
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		l.logger.Error("gRPC request failed", append(fields, zap.Error(err))...)
	default:
		l.logger.Warn("gRPC request rejected", append(fields, zap.Error(err))...)
	}
}

type requesterStream struct {
	grpc.ServerStream
	requesterID string
}

func (s *requesterStream) RecvMsg(m interface{}) error {
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	if msg, ok := m.(requesterMessage); ok && s.requesterID == "" {
		s.requesterID = msg.GetUserId()
	}
	return nil
}
