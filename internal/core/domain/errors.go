package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds shared by every service. Transports map them to status codes.
var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrVerificationFailed      = errors.New("verification failed")
	ErrVerificationUnavailable = errors.New("verification unavailable")
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrPeerUnavailable         = errors.New("peer unavailable")
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrMovieNotScheduled       = errors.New("movie not scheduled")
)

// Peer names used in PeerUnavailable failures.
const (
	PeerUser     = "user"
	PeerMovie    = "movie"
	PeerSchedule = "schedule"
	PeerBooking  = "booking"
)

// PeerHeader names the calling service on requests one service sends another.
const PeerHeader = "X-Cinema-Peer"

// Error is the failure value returned by usecases. Message is what clients see.
type Error struct {
	Kind    error
	Message string
	Peer    string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewError builds an Error with a formatted message.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithCause attaches the underlying failure.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Unauthorized reports a requester that is known but not an admin.
func Unauthorized() *Error {
	return NewError(ErrUnauthorized, "Unauthorized: admin access required")
}

// NotFound reports a missing record.
func NotFound(format string, args ...any) *Error {
	return NewError(ErrNotFound, format, args...)
}

// AlreadyExists reports a uniqueness conflict.
func AlreadyExists(format string, args ...any) *Error {
	return NewError(ErrAlreadyExists, format, args...)
}

// InvalidArgument reports malformed input.
func InvalidArgument(format string, args ...any) *Error {
	return NewError(ErrInvalidArgument, format, args...)
}

// PeerUnavailable reports a transport failure while calling another service.
func PeerUnavailable(peer string, cause error) *Error {
	return &Error{
		Kind:    ErrPeerUnavailable,
		Message: fmt.Sprintf("%s service unreachable", displayPeer(peer)),
		Peer:    peer,
		Cause:   cause,
	}
}

// KindOf returns the kind sentinel carried by err, or nil when err is not classified.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrUnauthorized,
		ErrVerificationFailed,
		ErrVerificationUnavailable,
		ErrMovieNotScheduled,
		ErrNotFound,
		ErrAlreadyExists,
		ErrPeerUnavailable,
		ErrInvalidArgument,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Code is the short machine readable name of a kind.
func Code(err error) string {
	switch KindOf(err) {
	case ErrUnauthorized:
		return "UNAUTHORIZED"
	case ErrVerificationFailed:
		return "VERIFICATION_FAILED"
	case ErrVerificationUnavailable:
		return "VERIFICATION_UNAVAILABLE"
	case ErrMovieNotScheduled:
		return "MOVIE_NOT_SCHEDULED"
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrAlreadyExists:
		return "ALREADY_EXISTS"
	case ErrPeerUnavailable:
		return "PEER_UNAVAILABLE"
	case ErrInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "INTERNAL"
	}
}

func displayPeer(peer string) string {
	if peer == "" {
		return "Peer"
	}
	return strings.ToUpper(peer[:1]) + peer[1:]
}
