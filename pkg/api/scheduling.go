package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

// SuggestSlots enumerates and scores candidate slots. A zero-slot
// outcome is a 200 with the opened escalation id, not an error: the
// caller is expected to relay the holding message.
func (s *Server) SuggestSlots(c *gin.Context) {
	var input models.SuggestSlotsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.scheduling.SuggestSlots(c.Request.Context(), input)
	if err != nil {
		var noSlots *scheduling.NoSlotsError
		var escalated *scheduling.EscalatedError
		switch {
		case asError(err, &noSlots):
			c.JSON(http.StatusOK, gin.H{"slots": []models.Slot{}, "escalation_id": noSlots.EscalationID})
		case asError(err, &escalated):
			c.JSON(http.StatusOK, gin.H{"slots": []models.Slot{}, "escalation_id": escalated.EscalationID})
		default:
			s.mapSchedulingError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// HoldSlot creates (or idempotently returns) a temporary reservation.
func (s *Server) HoldSlot(c *gin.Context) {
	var input models.HoldSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.scheduling.HoldSlot(c.Request.Context(), input)
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

type confirmHoldRequest struct {
	PatientID string            `json:"patient_id"`
	ServiceID string            `json:"service_id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ConfirmHold converts a hold into an appointment.
func (s *Server) ConfirmHold(c *gin.Context) {
	var body confirmHoldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.scheduling.ConfirmHold(c.Request.Context(), models.ConfirmHoldInput{
		HoldID:    c.Param("id"),
		PatientID: body.PatientID,
		ServiceID: body.ServiceID,
		Metadata:  body.Metadata,
	})
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type cancelAppointmentRequest struct {
	ClinicID  string `json:"clinic_id"`
	PatientID string `json:"patient_id"`
}

// CancelAppointment cancels a confirmed appointment and frees its slot.
func (s *Server) CancelAppointment(c *gin.Context) {
	var body cancelAppointmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.scheduling.CancelAppointment(c.Request.Context(), scheduling.CancelInput{
		ClinicID:      body.ClinicID,
		AppointmentID: c.Param("id"),
		PatientID:     body.PatientID,
	})
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// EscalationQueue lists a clinic's open escalations, oldest SLA first.
func (s *Server) EscalationQueue(c *gin.Context) {
	clinicID := c.Query("clinic_id")
	if clinicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clinic_id is required"})
		return
	}

	queue, err := s.scheduling.Queue(c.Request.Context(), clinicID)
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"escalations": queue})
}

type assignRequest struct {
	Assignee string `json:"assignee"`
}

// AssignEscalation marks an escalation as being worked by a staff
// member.
func (s *Server) AssignEscalation(c *gin.Context) {
	var body assignRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	esc, err := s.scheduling.Assign(c.Request.Context(), c.Param("id"), body.Assignee)
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, esc)
}

type declineRequest struct {
	Reason string `json:"reason"`
}

// DeclineEscalation closes an escalation without booking.
func (s *Server) DeclineEscalation(c *gin.Context) {
	var body declineRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.scheduling.Decline(c.Request.Context(), c.Param("id"), body.Reason); err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}

type resolveRequest struct {
	SuggestionIndex *int         `json:"suggestion_index,omitempty"`
	Slot            *models.Slot `json:"slot,omitempty"`
	ActorID         string       `json:"actor_id,omitempty"`
}

// ResolveEscalation books a chosen slot through the normal hold →
// confirm path and closes the escalation.
func (s *Server) ResolveEscalation(c *gin.Context) {
	var body resolveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.scheduling.Resolve(c.Request.Context(), scheduling.ResolveInput{
		EscalationID:    c.Param("id"),
		SuggestionIndex: body.SuggestionIndex,
		ManualSlot:      body.Slot,
		ActorID:         body.ActorID,
	})
	if err != nil {
		s.mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
