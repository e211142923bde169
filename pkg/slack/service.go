// Package slack notifies the staff channel about scheduling
// escalations so they are seen before the SLA clock runs out.
package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/mediqo/mediqo/pkg/scheduling"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service delivers escalation notifications to Slack.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// EscalationOpened announces a new escalation in the staff channel.
// Fail-open: errors are logged, never returned.
func (s *Service) EscalationOpened(ctx context.Context, esc *scheduling.Escalation) {
	if s == nil {
		return
	}

	blocks := BuildOpenedMessage(esc, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send escalation notification",
			"escalation_id", esc.ID,
			"error", err)
	}
}

// EscalationClosed posts the outcome, threaded under the opening
// message when it can still be found in recent history.
// Fail-open: errors are logged, never returned.
func (s *Service) EscalationClosed(ctx context.Context, esc *scheduling.Escalation) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindEscalationThread(ctx, esc.ID)
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for escalation",
			"escalation_id", esc.ID,
			"error", err)
	}

	blocks := BuildClosedMessage(esc, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send escalation outcome notification",
			"escalation_id", esc.ID,
			"status", esc.Status,
			"error", err)
	}
}
