package transportgrpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// statusFromError maps a usecase failure onto a gRPC status. Unclassified errors become Internal
// without leaking their text.
func statusFromError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && domain.KindOf(err) == nil {
		return err
	}

	message := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}

	switch domain.KindOf(err) {
	case domain.ErrNotFound:
		return status.Error(codes.NotFound, message)
	case domain.ErrAlreadyExists:
		return status.Error(codes.AlreadyExists, message)
	case domain.ErrUnauthorized, domain.ErrVerificationFailed:
		return status.Error(codes.PermissionDenied, message)
	case domain.ErrVerificationUnavailable, domain.ErrPeerUnavailable:
		return status.Error(codes.Unavailable, message)
	case domain.ErrInvalidArgument:
		return status.Error(codes.InvalidArgument, message)
	case domain.ErrMovieNotScheduled:
		return status.Error(codes.FailedPrecondition, message)
	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return status.FromContextError(err).Err()
		}
		return status.Error(codes.Internal, "internal error")
	}
}
