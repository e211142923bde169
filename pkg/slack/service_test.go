package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediqo/mediqo/pkg/scheduling"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("EscalationOpened is no-op", func(_ *testing.T) {
		// Should not panic
		s.EscalationOpened(context.Background(), &scheduling.Escalation{ID: "esc-1"})
	})

	t.Run("EscalationClosed is no-op", func(_ *testing.T) {
		s.EscalationClosed(context.Background(), &scheduling.Escalation{
			ID:     "esc-1",
			Status: scheduling.EscalationResolved,
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}
