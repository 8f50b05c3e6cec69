package graphql

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// ResolverError is returned from resolvers. Its message is the client-facing text and
// extensions.code carries the error kind.
type ResolverError struct {
	message string
	code    string
	cause   error
}

func (e *ResolverError) Error() string {
	return e.message
}

func (e *ResolverError) Unwrap() error {
	return e.cause
}

// Extensions implements gqlerrors.ExtendedError.
func (e *ResolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// Code is the kind code reported to clients.
func (e *ResolverError) Code() string {
	return e.code
}

func toResolverError(logger *zap.Logger, operation string, err error) error {
	if err == nil {
		return nil
	}

	var derr *domain.Error
	if errors.As(err, &derr) && domain.KindOf(err) != nil {
		return &ResolverError{message: derr.Message, code: domain.Code(err), cause: err}
	}

	logger.Error("graphql resolver failed", zap.String("operation", operation), zap.Error(err))
	return &ResolverError{message: "internal error", code: domain.Code(err), cause: err}
}
