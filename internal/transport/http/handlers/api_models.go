package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	traceID, _ := c.Get("trace_id")
	traceIDStr, _ := traceID.(string)

	return ErrorResponse{
		Error:   errorMsg,
		TraceID: traceIDStr,
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserPayload is the body of the add-user endpoint. ID is optional and must match the path.
type UserPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
	LastActive int64  `json:"last_active"`
}

// BookingQuery selects a screening for the who-booked endpoint.
type BookingQuery struct {
	Date  string `json:"date" form:"date"`
	Movie string `json:"movie" form:"movie"`
}

// BookedUsersResponse lists the names of users holding a booking.
type BookedUsersResponse struct {
	Users []string `json:"users"`
}

// HealthResponse describes the service health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service,omitempty"`
	StartedAt time.Time `json:"started_at"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse describes readiness results with dependency checks.
type ReadyResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
