package constraints

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
)

func TestStore_GetMissingReturnsFresh(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())

	block, err := s.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", block.SessionID)
	assert.True(t, block.FreshSession)
	assert.Empty(t, block.ExcludedDoctors)
}

func TestStore_UpdateAccumulatesExclusions(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())
	ctx := context.Background()

	block, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{
		ExcludeDoctors: []string{"Dr. Dan"},
	}, lang.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Dan"}, block.ExcludedDoctors)

	block, err = s.Update(ctx, "sess-1", models.ConstraintUpdate{
		ExcludeDoctors: []string{"Dr. Shtern"},
	}, lang.English)
	require.NoError(t, err)

	// Exclusions never shrink within a session.
	assert.Equal(t, []string{"Dr. Dan", "Dr. Shtern"}, block.ExcludedDoctors)
	assert.False(t, block.FreshSession)
	assert.False(t, block.LastUpdated.IsZero())
}

func TestStore_UpdateDeduplicatesMorphologicalVariants(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{
		ExcludeDoctors: []string{"Штерн"},
	}, lang.Russian)
	require.NoError(t, err)

	block, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{
		ExcludeDoctors: []string{"Штерна"},
	}, lang.Russian)
	require.NoError(t, err)
	assert.Len(t, block.ExcludedDoctors, 1)
}

func TestStore_UpdateReplacesDesiredFields(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{DesiredService: "cleaning"}, lang.English)
	require.NoError(t, err)

	window := &models.TimeWindow{Start: "2025-11-25", End: "2025-11-25", Display: "tomorrow"}
	block, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{
		DesiredService: "whitening",
		TimeWindow:     window,
	}, lang.English)
	require.NoError(t, err)

	assert.Equal(t, "whitening", block.DesiredService)
	assert.Equal(t, *window, block.TimeWindow)
}

func TestStore_MetaResetClearsEverything(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{
		ExcludeDoctors: []string{"Dr. Dan"},
		DesiredService: "cleaning",
	}, lang.English)
	require.NoError(t, err)

	block, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{MetaReset: true}, lang.English)
	require.NoError(t, err)
	assert.Empty(t, block.ExcludedDoctors)
	assert.Empty(t, block.DesiredService)
	assert.True(t, block.FreshSession)

	reloaded, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.ExcludedDoctors)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Update(ctx, "sess-1", models.ConstraintUpdate{DesiredDoctor: "Dr. Dan"}, lang.English)
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx, "sess-1"))

	block, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, block.FreshSession)
	assert.Empty(t, block.DesiredDoctor)
}
