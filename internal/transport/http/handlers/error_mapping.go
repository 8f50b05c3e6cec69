package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// ErrorCase maps a sentinel error to an HTTP status code and response message.
// An empty Message means the error's own client message is used.
type ErrorCase struct {
	Err     error
	Status  int
	Message string
}

// DomainErrorCases is the status table shared by every HTTP handler.
var DomainErrorCases = []ErrorCase{
	{Err: domain.ErrUnauthorized, Status: http.StatusForbidden},
	{Err: domain.ErrVerificationFailed, Status: http.StatusUnauthorized},
	{Err: domain.ErrVerificationUnavailable, Status: http.StatusServiceUnavailable},
	{Err: domain.ErrMovieNotScheduled, Status: http.StatusConflict},
	{Err: domain.ErrNotFound, Status: http.StatusNotFound},
	{Err: domain.ErrAlreadyExists, Status: http.StatusBadRequest},
	{Err: domain.ErrInvalidArgument, Status: http.StatusBadRequest},
	{Err: domain.ErrPeerUnavailable, Status: http.StatusServiceUnavailable},
}

// RespondWithMappedError resolves the provided error against known cases or falls back to a generic response.
func RespondWithMappedError(c *gin.Context, err error, cases []ErrorCase, fallbackStatus int, fallbackMessage string) {
	if err == nil {
		c.Status(http.StatusOK)
		return
	}

	for _, cs := range cases {
		if cs.Err == nil {
			continue
		}
		if errors.Is(err, cs.Err) {
			message := cs.Message
			if message == "" {
				message = clientMessage(err)
			}
			c.JSON(cs.Status, NewErrorResponse(c, message))
			return
		}
	}

	_ = c.Error(err)
	c.JSON(fallbackStatus, NewErrorResponse(c, fallbackMessage))
}

// RespondWithDomainError writes err using DomainErrorCases.
func RespondWithDomainError(c *gin.Context, err error) {
	RespondWithMappedError(c, err, DomainErrorCases, http.StatusInternalServerError, "internal server error")
}

func clientMessage(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	return err.Error()
}
