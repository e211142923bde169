package scheduling

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
)

const (
	defaultHoldTTL     = 5 * time.Minute
	settingsCacheTTL   = 60 * time.Second
	escalationSLA      = 24 * time.Hour
	escalationDedupWin = 24 * time.Hour
	maxSuggestions     = 10
	calendarSyncWait   = 2 * time.Second
	calendarSyncLimit  = 10 * time.Second
)

// Notifier receives escalation lifecycle events. Implementations are
// expected to fail open; the engine never acts on their outcome.
type Notifier interface {
	EscalationOpened(ctx context.Context, esc *Escalation)
	EscalationClosed(ctx context.Context, esc *Escalation)
}

// Deps wires the engine's collaborators. Calendar and Notifier are
// optional.
type Deps struct {
	Clinics     ClinicSource
	Holds       HoldRepo
	Appts       AppointmentRepo
	Escalations EscalationRepo
	Policies    PolicySource
	Limits      kv.LimitCounter
	Calendar    CalendarSync
	Notifier    Notifier
	Logger      *slog.Logger
}

// Engine is the scheduling core: suggest, hold, confirm, escalate.
type Engine struct {
	clinics     ClinicSource
	holds       HoldRepo
	appts       AppointmentRepo
	escalations EscalationRepo
	policies    PolicySource
	limits      kv.LimitCounter
	calendar    CalendarSync
	notifier    Notifier
	logger      *slog.Logger

	holdTTL time.Duration
	now     func() time.Time

	settingsMu sync.Mutex
	settings   map[string]settingsEntry
}

type settingsEntry struct {
	value    models.SchedulingSettings
	cachedAt time.Time
}

// Option tunes an Engine.
type Option func(*Engine)

// WithHoldTTL overrides the 5-minute hold lifetime.
func WithHoldTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.holdTTL = ttl }
}

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds a scheduling engine.
func NewEngine(deps Deps, opts ...Option) *Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		clinics:     deps.Clinics,
		holds:       deps.Holds,
		appts:       deps.Appts,
		escalations: deps.Escalations,
		policies:    deps.Policies,
		limits:      deps.Limits,
		calendar:    deps.Calendar,
		notifier:    deps.Notifier,
		logger:      logger,
		holdTTL:     defaultHoldTTL,
		now:         time.Now,
		settings:    map[string]settingsEntry{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// settingsFor returns the clinic's normalized scheduling settings,
// cached for 60 seconds so a burst of suggest calls shares one
// normalization.
func (e *Engine) settingsFor(profile models.ClinicProfile) models.SchedulingSettings {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	if entry, ok := e.settings[profile.ClinicID]; ok && e.now().Sub(entry.cachedAt) < settingsCacheTTL {
		return entry.value
	}
	normalized := normalizeSettings(profile.Scheduling)
	e.settings[profile.ClinicID] = settingsEntry{value: normalized, cachedAt: e.now()}
	return normalized
}

// FlushSettings empties the settings cache. Test hook.
func (e *Engine) FlushSettings() {
	e.settingsMu.Lock()
	e.settings = map[string]settingsEntry{}
	e.settingsMu.Unlock()
}

// normalizeSettings fills defaults and rescales the preference weights
// to sum to 1.
func normalizeSettings(s models.SchedulingSettings) models.SchedulingSettings {
	if s.GridMinutes <= 0 {
		s.GridMinutes = 30
	}
	sum := s.WeightLeastBusy + s.WeightPackSchedule + s.WeightPreferredRoom +
		s.WeightTimeOfDay + s.WeightPreferredDoctor
	if sum <= 0 {
		s.WeightLeastBusy = 0.25
		s.WeightPackSchedule = 0.20
		s.WeightPreferredRoom = 0.15
		s.WeightTimeOfDay = 0.20
		s.WeightPreferredDoctor = 0.20
		return s
	}
	s.WeightLeastBusy /= sum
	s.WeightPackSchedule /= sum
	s.WeightPreferredRoom /= sum
	s.WeightTimeOfDay /= sum
	s.WeightPreferredDoctor /= sum
	return s
}
