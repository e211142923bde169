package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/ent"
	entsession "github.com/mediqo/mediqo/ent/session"
	testdb "github.com/mediqo/mediqo/test/database"
)

func newService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, Config{SessionRetentionDays: 30})
	return svc, client.Client
}

func createHold(t *testing.T, client *ent.Client, expiresAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	start := time.Now().Add(24 * time.Hour)
	err := client.Hold.Create().
		SetID(id).
		SetClientHoldID(uuid.New().String()).
		SetClinicID("c1").
		SetPatientID("p1").
		SetDoctorID("d1").
		SetRoomID("r1").
		SetServiceID("s1").
		SetStartTime(start).
		SetEndTime(start.Add(30 * time.Minute)).
		SetScore(1).
		SetExpiresAt(expiresAt).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func createClosedSession(t *testing.T, client *ent.Client, lastActivity time.Time, turns int) string {
	t.Helper()
	id := uuid.New().String()
	err := client.Session.Create().
		SetID(id).
		SetPhone("+5215550001").
		SetClinicID("c1").
		SetStatus(entsession.StatusClosed).
		SetStartedAt(lastActivity.Add(-time.Hour)).
		SetLastActivityAt(lastActivity).
		SetClosedAt(lastActivity).
		Exec(context.Background())
	require.NoError(t, err)

	for i := 0; i < turns; i++ {
		err := client.ConversationTurn.Create().
			SetID(uuid.New().String()).
			SetSessionID(id).
			SetClinicID("c1").
			SetSequenceNumber(i + 1).
			SetUserMessage("hola").
			Exec(context.Background())
		require.NoError(t, err)
	}
	return id
}

func TestPurgeExpiredHolds(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	createHold(t, client, time.Now().Add(-2*time.Hour))
	kept := createHold(t, client, time.Now().Add(5*time.Minute))

	count, err := svc.PurgeExpiredHolds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := client.Hold.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{kept}, remaining)
}

func TestPurgeExpiredHolds_GraceWindowKeepsRecentlyExpired(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	// Expired, but inside the grace hour: a racing confirm should still
	// find it and get the expired error.
	createHold(t, client, time.Now().Add(-10*time.Minute))

	count, err := svc.PurgeExpiredHolds(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPurgeOldSessions(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	old := createClosedSession(t, client, time.Now().AddDate(0, 0, -45), 3)
	recent := createClosedSession(t, client, time.Now().AddDate(0, 0, -5), 2)

	count, err := svc.PurgeOldSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := client.Session.Query().Where(entsession.ID(old)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Session.Query().Where(entsession.ID(recent)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	turns, err := client.ConversationTurn.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, turns, "only the recent session's turns survive")
}

func TestPurgeOldSessions_IgnoresActiveSessions(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	// Active session with ancient activity: the boundary detector owns
	// closing it, retention must not race that.
	err := client.Session.Create().
		SetID(uuid.New().String()).
		SetPhone("+5215550002").
		SetClinicID("c1").
		SetLastActivityAt(time.Now().AddDate(0, 0, -100)).
		Exec(ctx)
	require.NoError(t, err)

	count, err := svc.PurgeOldSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
