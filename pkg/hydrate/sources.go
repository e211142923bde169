package hydrate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/ent"
	entturn "github.com/mediqo/mediqo/ent/conversationturn"
	entpatient "github.com/mediqo/mediqo/ent/patient"
	"github.com/mediqo/mediqo/pkg/models"
)

// EntPatientSource upserts patients in the patients table. A short
// per-process memo skips the upsert round trip when the same patient
// messages again within the cache window.
type EntPatientSource struct {
	client   *ent.Client
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]patientEntry
}

type patientEntry struct {
	profile  models.PatientProfile
	cachedAt time.Time
}

// NewEntPatientSource creates a patient source. cacheTTL comes from
// PATIENT_UPSERT_CACHE_SECONDS; zero disables the memo.
func NewEntPatientSource(client *ent.Client, cacheTTL time.Duration) *EntPatientSource {
	return &EntPatientSource{client: client, cacheTTL: cacheTTL, cache: map[string]patientEntry{}}
}

func (s *EntPatientSource) GetOrCreate(ctx context.Context, clinicID, phone, pushName string) (models.PatientProfile, error) {
	key := clinicID + ":" + phone
	if s.cacheTTL > 0 {
		s.mu.Lock()
		entry, ok := s.cache[key]
		s.mu.Unlock()
		if ok && time.Since(entry.cachedAt) < s.cacheTTL {
			return entry.profile, nil
		}
	}

	row, err := s.client.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.Phone(phone)).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = s.client.Patient.Create().
			SetID(uuid.New().String()).
			SetClinicID(clinicID).
			SetPhone(phone).
			SetFirstName(pushName).
			Save(ctx)
		if ent.IsConstraintError(err) {
			// Concurrent upsert won; re-read.
			row, err = s.client.Patient.Query().
				Where(entpatient.ClinicID(clinicID), entpatient.Phone(phone)).
				Only(ctx)
		}
	}
	if err != nil {
		return models.PatientProfile{}, fmt.Errorf("patient upsert %s: %w", phone, err)
	}

	profile := models.PatientProfile{
		PatientID:         row.ID,
		ClinicID:          row.ClinicID,
		Phone:             row.Phone,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		PreferredLanguage: row.PreferredLanguage,
		HardDoctorBans:    row.HardDoctorBans,
		HardServiceBans:   row.HardServiceBans,
		Allergies:         row.Allergies,
		Preferences:       row.Preferences,
	}

	if s.cacheTTL > 0 {
		s.mu.Lock()
		s.cache[key] = patientEntry{profile: profile, cachedAt: time.Now()}
		s.mu.Unlock()
	}
	return profile, nil
}

// Flush empties the upsert memo. Test hook.
func (s *EntPatientSource) Flush() {
	s.mu.Lock()
	s.cache = map[string]patientEntry{}
	s.mu.Unlock()
}

// EntHistorySource reads conversation turns back as prompt history.
type EntHistorySource struct {
	client *ent.Client
}

// NewEntHistorySource wraps an ent client.
func NewEntHistorySource(client *ent.Client) *EntHistorySource {
	return &EntHistorySource{client: client}
}

// RecentTurns returns up to limit turns, oldest first. Each stored
// turn expands to a user message and, when present, the assistant
// reply.
func (s *EntHistorySource) RecentTurns(ctx context.Context, sessionID string, limit int) ([]models.HistoryMessage, error) {
	rows, err := s.client.ConversationTurn.Query().
		Where(entturn.SessionID(sessionID)).
		Order(ent.Desc(entturn.FieldSequenceNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history %s: %w", sessionID, err)
	}

	// Reverse into chronological order while expanding.
	out := make([]models.HistoryMessage, 0, len(rows)*2)
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		out = append(out, models.HistoryMessage{Role: "user", Content: row.UserMessage, CreatedAt: row.CreatedAt})
		if row.AssistantMessage != "" {
			out = append(out, models.HistoryMessage{Role: "assistant", Content: row.AssistantMessage, CreatedAt: row.CreatedAt})
		}
	}
	return out, nil
}
