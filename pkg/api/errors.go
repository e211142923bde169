package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediqo/mediqo/pkg/scheduling"
)

// asError is errors.As with the target already declared at the call
// site, keeping the switch in SuggestSlots readable.
func asError[T error](err error, target *T) bool {
	return errors.As(err, target)
}

// mapSchedulingError translates engine errors to HTTP status codes:
// 404 for absent resources, 409 for lost races and expiry, 422 for
// requests the engine understood but refuses.
func (s *Server) mapSchedulingError(c *gin.Context, err error) {
	var invalid *scheduling.InvalidRequestError
	var policy *scheduling.PolicyViolationError

	switch {
	case errors.Is(err, scheduling.ErrHoldNotFound),
		errors.Is(err, scheduling.ErrEscalationNotFound),
		errors.Is(err, scheduling.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, scheduling.ErrHoldExpired),
		errors.Is(err, scheduling.ErrSlotNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Reason})

	case errors.As(err, &policy):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "policy violation",
			"rule_ids": policy.RuleIDs,
			"messages": policy.Messages,
		})

	default:
		s.logger.Error("unexpected scheduling error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
