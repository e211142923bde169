package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PoolHealth is the database portion of the health endpoint payload.
// WaitCount and WaitMillis growing between scrapes means the pool is
// saturating under webhook load.
type PoolHealth struct {
	Status     string `json:"status"`
	PingMillis int64  `json:"ping_ms"`
	Open       int    `json:"open_connections"`
	InUse      int    `json:"in_use"`
	Idle       int    `json:"idle"`
	WaitCount  int64  `json:"wait_count"`
	WaitMillis int64  `json:"wait_ms"`
	MaxOpen    int    `json:"max_open_connections"`
}

// Health pings the database and snapshots pool statistics.
func Health(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, fmt.Errorf("database ping: %w", err)
	}

	stats := db.Stats()
	return &PoolHealth{
		Status:     "healthy",
		PingMillis: time.Since(start).Milliseconds(),
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		WaitCount:  stats.WaitCount,
		WaitMillis: stats.WaitDuration.Milliseconds(),
		MaxOpen:    stats.MaxOpenConnections,
	}, nil
}
