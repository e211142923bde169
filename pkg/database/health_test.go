package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/database"
	testdb "github.com/mediqo/mediqo/test/database"
)

func TestHealth_ReportsPoolStats(t *testing.T) {
	client := testdb.NewTestClient(t)

	h, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.GreaterOrEqual(t, h.Open, 1)
	assert.GreaterOrEqual(t, h.MaxOpen, h.Open)
}

func TestHealth_UnhealthyWhenPingFails(t *testing.T) {
	client := testdb.NewTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, err := database.Health(ctx, client.DB())
	require.Error(t, err)
	assert.Equal(t, "unhealthy", h.Status)
}
