package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TraceIDHeader carries the correlation id back to the caller.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDKey is the gin key for the correlation id.
	TraceIDKey = "trace_id"
	// UserIDKey is the gin key for the requester id.
	UserIDKey = "user_id"

	requestContextKey = "request_context"
)

// RequestContext is what the access log and the rate limiter know about a request.
// EnrichContext fills TraceID, IP and UserAgent. UserID comes from Requester and
// Peer from TrustedPeers.
type RequestContext struct {
	TraceID   string
	UserID    string
	IP        string
	UserAgent string
	Peer      string
}

// EnrichContext attaches a RequestContext and echoes the trace id in TraceIDHeader.
// The id of the active OpenTelemetry span wins over the inbound header so access logs
// line up with exported traces.
func EnrichContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := ""
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
		if traceID == "" {
			traceID = c.GetHeader(TraceIDHeader)
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Set(TraceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)
		c.Set(requestContextKey, &RequestContext{
			TraceID:   traceID,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})

		c.Next()
	}
}

func GetTraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

// GetRequestContext returns the request's RequestContext. Outside EnrichContext it
// returns a detached zero value, so writes to it are dropped.
func GetRequestContext(c *gin.Context) *RequestContext {
	if v, ok := c.Get(requestContextKey); ok {
		if reqCtx, ok := v.(*RequestContext); ok {
			return reqCtx
		}
	}
	return &RequestContext{}
}
