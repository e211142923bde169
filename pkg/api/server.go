// Package api exposes the HTTP surface: the messaging webhook, the
// scheduling REST API, and health. Handlers are thin adapters; all
// behavior lives in the pipeline and the scheduling engine.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mediqo/mediqo/pkg/database"
	"github.com/mediqo/mediqo/pkg/messaging"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/pipeline"
	"github.com/mediqo/mediqo/pkg/scheduling"
	"github.com/mediqo/mediqo/pkg/version"
)

// Processor runs one inbound message through the pipeline.
type Processor interface {
	Process(ctx context.Context, req models.MessageRequest) (*pipeline.TurnResult, error)
}

// SchedulingService is the slice of the engine the REST API exposes.
type SchedulingService interface {
	SuggestSlots(ctx context.Context, input models.SuggestSlotsInput) (*models.SuggestSlotsResult, error)
	HoldSlot(ctx context.Context, input models.HoldSlotInput) (*models.HoldSlotResult, error)
	ConfirmHold(ctx context.Context, input models.ConfirmHoldInput) (*models.ConfirmHoldResult, error)
	CancelAppointment(ctx context.Context, input scheduling.CancelInput) error
	Queue(ctx context.Context, clinicID string) ([]*scheduling.Escalation, error)
	Assign(ctx context.Context, escalationID, assignee string) (*scheduling.Escalation, error)
	Decline(ctx context.Context, escalationID, reason string) error
	Resolve(ctx context.Context, input scheduling.ResolveInput) (*models.ConfirmHoldResult, error)
}

// Server holds the handler dependencies.
type Server struct {
	pipeline   Processor
	scheduling SchedulingService
	sender     messaging.Sender
	db         *database.Client

	defaultClinicID string
	logger          *slog.Logger

	// processTimeout bounds one background message processing run.
	processTimeout time.Duration
}

// Deps wires a server.
type Deps struct {
	Pipeline        Processor
	Scheduling      SchedulingService
	Sender          messaging.Sender
	DB              *database.Client
	DefaultClinicID string
	Logger          *slog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		pipeline:        deps.Pipeline,
		scheduling:      deps.Scheduling,
		sender:          deps.Sender,
		db:              deps.DB,
		defaultClinicID: deps.DefaultClinicID,
		logger:          logger,
		processTimeout:  60 * time.Second,
	}
}

// Register mounts all routes on the engine.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/health", s.Health)
	r.POST("/webhooks/whatsapp", s.Webhook)

	sched := r.Group("/api/scheduling")
	sched.POST("/suggest", s.SuggestSlots)
	sched.POST("/holds", s.HoldSlot)
	sched.POST("/holds/:id/confirm", s.ConfirmHold)
	sched.POST("/appointments/:id/cancel", s.CancelAppointment)
	sched.GET("/escalations", s.EscalationQueue)
	sched.POST("/escalations/:id/assign", s.AssignEscalation)
	sched.POST("/escalations/:id/decline", s.DeclineEscalation)
	sched.POST("/escalations/:id/resolve", s.ResolveEscalation)
}

// Health reports process and database liveness.
func (s *Server) Health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full(), "database": dbHealth})
}
