// Package peers holds the outbound clients each service uses to reach the others.
package peers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// CallObserver records the latency and outcome of a peer call.
type CallObserver interface {
	Observe(peer, operation string, started time.Time, err error)
}

type noopObserver struct{}

func (noopObserver) Observe(string, string, time.Time, error) {}

func observerOrNoop(o CallObserver) CallObserver {
	if o == nil {
		return noopObserver{}
	}
	return o
}

// NewHTTPClient returns an instrumented client that propagates trace context.
// A non-empty caller is sent in domain.PeerHeader on every request.
func NewHTTPClient(timeout time.Duration, caller string) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if caller != "" {
		transport = callerTransport{caller: caller, next: transport}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

type callerTransport struct {
	caller string
	next   http.RoundTripper
}

func (t callerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(domain.PeerHeader, t.caller)
	return t.next.RoundTrip(req)
}

const graphQLErrorPrefix = "graphql: "

// classifyGraphQLError turns an error returned by a GraphQL peer into a domain failure.
// Errors the peer reported keep their message. Everything else means the peer could not answer.
func classifyGraphQLError(peer string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.PeerUnavailable(peer, err)
	}

	message, ok := strings.CutPrefix(err.Error(), graphQLErrorPrefix)
	if !ok {
		return domain.PeerUnavailable(peer, err)
	}

	switch {
	case strings.HasPrefix(message, "Unauthorized"):
		return &domain.Error{Kind: domain.ErrUnauthorized, Message: message, Peer: peer, Cause: err}
	case strings.Contains(message, "Unable to verify user"):
		return &domain.Error{Kind: domain.ErrVerificationFailed, Message: message, Peer: peer, Cause: err}
	case strings.Contains(message, "User service unreachable"):
		return &domain.Error{Kind: domain.ErrVerificationUnavailable, Message: message, Peer: peer, Cause: err}
	case strings.Contains(strings.ToLower(message), "not found"):
		return &domain.Error{Kind: domain.ErrNotFound, Message: message, Peer: peer, Cause: err}
	default:
		return domain.PeerUnavailable(peer, err)
	}
}
