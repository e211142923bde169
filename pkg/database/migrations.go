package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateRoomExclusionConstraint installs the (room_id, tstzrange)
// exclusion constraint on appointments. Ent cannot express EXCLUDE
// constraints, so this runs as custom SQL after migrations — the same
// hook migrations use for other Postgres-only features.
//
// Cancelled appointments do not block a room; holds are checked in
// application code because they expire by wall clock, not by status.
func CreateRoomExclusionConstraint(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS btree_gist`); err != nil {
		return fmt.Errorf("failed to create btree_gist extension: %w", err)
	}

	_, err := db.ExecContext(ctx, `
		DO $$ BEGIN
			ALTER TABLE appointments ADD CONSTRAINT appointments_room_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				tstzrange(start_time, end_time) WITH &&
			) WHERE (status <> 'cancelled');
		EXCEPTION
			WHEN duplicate_table THEN NULL;
			WHEN duplicate_object THEN NULL;
		END $$`)
	if err != nil {
		return fmt.Errorf("failed to create appointments exclusion constraint: %w", err)
	}

	return nil
}
