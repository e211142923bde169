package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/policy"
)

// Fixed clock: Monday 2025-11-24 08:00 UTC.
var testNow = time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC)

func testClinic() models.ClinicProfile {
	return models.ClinicProfile{
		ClinicID: "c1",
		Name:     "Clinica Central",
		Timezone: "UTC",
		BusinessHours: models.BusinessHours{
			OpenHour:   9,
			CloseHour:  18,
			ClosedDays: []int{0}, // Sunday
		},
		Services: []models.Service{
			{ID: "S1", Name: "Consultation", DurationMinutes: 60, Price: 850, Currency: "MXN"},
		},
		Doctors: []models.Doctor{
			{ID: "doc-shtern", Name: "Dr. Shtern", ServiceIDs: []string{"S1"}, PreferredRoom: "r1"},
			{ID: "doc-dan", Name: "Dr. Dan", ServiceIDs: []string{"S1"}},
		},
		Rooms: []models.Room{{ID: "r1"}, {ID: "r2"}},
		Scheduling: models.SchedulingSettings{
			GridMinutes: 30,
		},
	}
}

type stubClinics struct {
	profile models.ClinicProfile
}

func (s *stubClinics) Get(context.Context, string) (models.ClinicProfile, error) {
	return s.profile, nil
}

type stubPolicies struct {
	active *ActivePolicy
}

func (s *stubPolicies) Active(context.Context, string) (*ActivePolicy, error) {
	return s.active, nil
}

func compileTestPolicy(t *testing.T, rulesJSON string) *ActivePolicy {
	t.Helper()
	raw := `{
		"schema_version": "1",
		"bundle_id": "bundle-1",
		"clinic_id": "c1",
		"rules": ` + rulesJSON + `
	}`
	compiled, err := policy.Compile([]byte(raw))
	require.NoError(t, err)
	return &ActivePolicy{SnapshotID: "snap-1", Version: 3, Compiled: compiled}
}

type memHoldRepo struct {
	mu   sync.Mutex
	rows map[string]*Hold
}

func newMemHoldRepo() *memHoldRepo {
	return &memHoldRepo{rows: map[string]*Hold{}}
}

func (r *memHoldRepo) Create(_ context.Context, h *Hold) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *h
	r.rows[h.ID] = &cp
	return nil
}

func (r *memHoldRepo) ByID(_ context.Context, id string) (*Hold, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.rows[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, ErrHoldNotFound
}

func (r *memHoldRepo) ByClientID(_ context.Context, clientHoldID string) (*Hold, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.rows {
		if h.ClientHoldID == clientHoldID {
			cp := *h
			return &cp, nil
		}
	}
	return nil, ErrHoldNotFound
}

func (r *memHoldRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memHoldRepo) ActiveOverlap(_ context.Context, roomID string, start, end, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.rows {
		if h.RoomID == roomID && h.StartTime.Before(end) && start.Before(h.EndTime) && now.Before(h.ExpiresAt) {
			return true, nil
		}
	}
	return false, nil
}

type memApptRepo struct {
	mu         sync.Mutex
	rows       map[string]*Appointment
	failInsert error
	calendar   map[string]string
}

func newMemApptRepo() *memApptRepo {
	return &memApptRepo{rows: map[string]*Appointment{}, calendar: map[string]string{}}
}

func (r *memApptRepo) Insert(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert != nil {
		return r.failInsert
	}
	// Mirrors the database exclusion constraint.
	for _, existing := range r.rows {
		if existing.RoomID == a.RoomID && existing.Status != "cancelled" &&
			existing.StartTime.Before(a.EndTime) && a.StartTime.Before(existing.EndTime) {
			return ErrSlotNotAvailable
		}
	}
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memApptRepo) ByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, ErrAppointmentNotFound
}

func (r *memApptRepo) Cancel(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	a.Status = "cancelled"
	return nil
}

func (r *memApptRepo) Overlap(_ context.Context, roomID string, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.RoomID == roomID && a.Status != "cancelled" &&
			a.StartTime.Before(end) && start.Before(a.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memApptRepo) ListBetween(_ context.Context, clinicID string, from, to time.Time) ([]*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Appointment
	for _, a := range r.rows {
		if a.ClinicID == clinicID && a.Status != "cancelled" &&
			!a.StartTime.Before(from) && a.StartTime.Before(to) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memApptRepo) SetCalendarEvent(_ context.Context, id, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendar[id] = eventID
	return nil
}

func (r *memApptRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type memEscRepo struct {
	mu   sync.Mutex
	rows map[string]*Escalation
}

func newMemEscRepo() *memEscRepo {
	return &memEscRepo{rows: map[string]*Escalation{}}
}

func (r *memEscRepo) Create(_ context.Context, e *Escalation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memEscRepo) ByID(_ context.Context, id string) (*Escalation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.rows[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, ErrEscalationNotFound
}

func (r *memEscRepo) RecentOpen(_ context.Context, patientID, serviceID string, since time.Time) (*Escalation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.PatientID == patientID && e.ServiceID == serviceID &&
			e.Status == EscalationOpen && !e.CreatedAt.Before(since) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEscRepo) Update(_ context.Context, e *Escalation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.rows[e.ID] = &cp
	return nil
}

func (r *memEscRepo) ListByStatus(_ context.Context, clinicID, status string) ([]*Escalation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Escalation
	for _, e := range r.rows {
		if e.ClinicID == clinicID && e.Status == status {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// recordingLimiter counts reserve/release traffic for the P7 checks.
type recordingLimiter struct {
	mu       sync.Mutex
	denyKeys map[string]bool
	reserved []kv.Reservation
	released []kv.Reservation
	next     int
}

func newRecordingLimiter() *recordingLimiter {
	return &recordingLimiter{denyKeys: map[string]bool{}}
}

func (l *recordingLimiter) Reserve(_ context.Context, key string, _ time.Duration, _ int) (kv.Reservation, bool, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.denyKeys[key] {
		return kv.Reservation{}, false, 0, nil
	}
	l.next++
	res := kv.Reservation{Key: key, Token: time.Now().Format("150405.000") + "-" + key}
	l.reserved = append(l.reserved, res)
	return res, true, l.next, nil
}

func (l *recordingLimiter) Release(_ context.Context, res kv.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released = append(l.released, res)
	return nil
}

func (l *recordingLimiter) outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reserved) - len(l.released)
}

type stubCalendar struct {
	eventID string
	err     error
}

func (c *stubCalendar) CreateEvent(context.Context, *Appointment) (string, error) {
	return c.eventID, c.err
}

type engineFixture struct {
	engine  *Engine
	holds   *memHoldRepo
	appts   *memApptRepo
	escs    *memEscRepo
	limiter *recordingLimiter
	clinics *stubClinics
	polices *stubPolicies
}

func newFixture(t *testing.T, active *ActivePolicy, opts ...Option) *engineFixture {
	t.Helper()
	f := &engineFixture{
		holds:   newMemHoldRepo(),
		appts:   newMemApptRepo(),
		escs:    newMemEscRepo(),
		limiter: newRecordingLimiter(),
		clinics: &stubClinics{profile: testClinic()},
		polices: &stubPolicies{active: active},
	}
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	f.engine = NewEngine(Deps{
		Clinics:     f.clinics,
		Holds:       f.holds,
		Appts:       f.appts,
		Escalations: f.escs,
		Policies:    f.polices,
		Limits:      f.limiter,
	}, opts...)
	return f
}

func suggestInput() models.SuggestSlotsInput {
	return models.SuggestSlotsInput{
		ClinicID:  "c1",
		PatientID: "p1",
		ServiceID: "S1",
		DateFrom:  testNow,
		DateTo:    testNow.Add(24 * time.Hour),
	}
}
