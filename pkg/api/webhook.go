package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediqo/mediqo/pkg/messaging"
	"github.com/mediqo/mediqo/pkg/models"
)

// maxWebhookBody caps the payload read; gateway events are small.
const maxWebhookBody = 1 << 20

// Webhook accepts one gateway event, acknowledges it immediately, and
// processes the message in the background. The gateway retries on
// non-2xx, so only an unreadable payload is rejected.
func (s *Server) Webhook(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	req, err := messaging.ParseWebhook(raw, s.defaultClinicID)
	switch {
	case errors.Is(err, messaging.ErrSelfMessage), errors.Is(err, messaging.ErrNoText):
		c.JSON(http.StatusAccepted, gin.H{"status": "ignored"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	go s.processMessage(c.Request.Context(), *req)
}

// processMessage runs the pipeline and delivers the reply. It carries
// the request's values but not its cancellation: the webhook has
// already been acknowledged.
func (s *Server) processMessage(reqCtx context.Context, req models.MessageRequest) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(reqCtx), s.processTimeout)
	defer cancel()

	result, err := s.pipeline.Process(ctx, req)
	if err != nil {
		s.logger.Error("message processing failed",
			slog.String("clinic_id", req.ClinicID),
			slog.String("sid", req.SID),
			slog.String("error", err.Error()))
		return
	}
	if result.Text == "" {
		return
	}

	if err := s.sender.SendText(ctx, req.Metadata["instance"], req.FromPhone, result.Text); err != nil {
		s.logger.Error("reply delivery failed",
			slog.String("session_id", result.SessionID),
			slog.String("error", err.Error()))
	}
}
