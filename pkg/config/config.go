// Package config loads process configuration from the environment.
// A .env file is read by the binary before this package is consulted;
// every knob has a compiled-in default so a bare environment still
// boots. Fatal configuration problems (unparsable values for required
// knobs) surface at startup, never at request time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load().
type Config struct {
	HTTPPort string

	// Pipeline feature flag: when false, the legacy single-shot path
	// handles messages instead of the step pipeline.
	EnablePipeline bool

	// BoundaryLockTTL bounds the distributed boundary-detection lock.
	BoundaryLockTTL time.Duration

	// ClinicCacheWarmTTL is how long a clinic profile stays warm before
	// the background refresher re-reads it.
	ClinicCacheWarmTTL time.Duration

	// PatientUpsertCacheTTL throttles repeated patient upserts from the
	// webhook path.
	PatientUpsertCacheTTL time.Duration

	// ConversationLogFailFast aborts the request when async conversation
	// logging fails. Off in production; on in tests that assert logging.
	ConversationLogFailFast bool

	// Outbound messaging transport.
	MessagingBaseURL string
	MessagingAPIKey  string

	// DefaultClinicID is used when the webhook instance name is not in
	// the clinic-{uuid}-{timestamp} shape.
	DefaultClinicID string

	// LLM provider credentials. A provider with an empty key is simply
	// not registered.
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// Per-turn budgets.
	ToolCallBudget     int
	CalendarCallBudget int
	ToolLoopTimeout    time.Duration
	FallbackTimeout    time.Duration

	// Slack escalation notifications; an empty token or channel
	// disables them.
	SlackToken   string
	SlackChannel string
	DashboardURL string

	// OutreachInterval is how often the follow-up worker scans for due
	// promises.
	OutreachInterval time.Duration

	// Retention knobs for the cleanup loop.
	SessionRetentionDays int
	RetentionInterval    time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	lockTTL, err := durationMS("BOUNDARY_LOCK_TTL_MS", 5000)
	if err != nil {
		return nil, err
	}
	warmTTL, err := durationSec("CLINIC_CACHE_WARM_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	upsertTTL, err := durationSec("PATIENT_UPSERT_CACHE_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	outreachInterval, err := durationSec("OUTREACH_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	retentionInterval, err := durationSec("RETENTION_INTERVAL_SECONDS", 3600)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:                getEnvOrDefault("HTTP_PORT", "8080"),
		EnablePipeline:          truthy(getEnvOrDefault("ENABLE_PIPELINE", "true")),
		BoundaryLockTTL:         lockTTL,
		ClinicCacheWarmTTL:      warmTTL,
		PatientUpsertCacheTTL:   upsertTTL,
		ConversationLogFailFast: truthy(os.Getenv("CONVERSATION_LOG_FAIL_FAST")),
		MessagingBaseURL:        getEnvOrDefault("MESSAGING_BASE_URL", "http://localhost:8081"),
		MessagingAPIKey:         os.Getenv("MESSAGING_API_KEY"),
		DefaultClinicID:         getEnvOrDefault("DEFAULT_CLINIC_ID", "default"),
		AnthropicAPIKey:         os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:            os.Getenv("OPENAI_API_KEY"),
		ToolCallBudget:          intOrDefault("TOOL_CALL_BUDGET", 8),
		CalendarCallBudget:      intOrDefault("CALENDAR_CALL_BUDGET", 3),
		ToolLoopTimeout:         20 * time.Second,
		FallbackTimeout:         10 * time.Second,
		SlackToken:              os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannel:            os.Getenv("SLACK_CHANNEL"),
		DashboardURL:            getEnvOrDefault("DASHBOARD_URL", "http://localhost:3000"),
		OutreachInterval:        outreachInterval,
		SessionRetentionDays:    intOrDefault("SESSION_RETENTION_DAYS", 90),
		RetentionInterval:       retentionInterval,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func durationMS(key string, defaultMS int) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return time.Duration(defaultMS) * time.Millisecond, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(n) * time.Millisecond, nil
}

func durationSec(key string, defaultSec int) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return time.Duration(defaultSec) * time.Second, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
}

// truthy mirrors the loose boolean parsing used by operator tooling:
// "1", "true", "yes", "on" (any case) are true.
func truthy(val string) bool {
	switch val {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	}
	return false
}
