package store

import (
	"database/sql"
	"fmt"

	"stride/internal/strava"
)

// ReplaceRecent replaces the cached activity list with a freshly fetched one.
// The API's most-recent-first ordering is preserved via the position column;
// comparisons depend on that ordering.
func (s *Store) ReplaceRecent(activities []strava.Activity) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return fmt.Errorf("clearing activity cache: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO activities
			(id, position, name, type, start_date_local, distance, moving_time,
			 average_speed, average_heartrate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range activities {
		var hr sql.NullFloat64
		if a.AverageHeartrate != nil {
			hr = sql.NullFloat64{Float64: *a.AverageHeartrate, Valid: true}
		}
		if _, err := stmt.Exec(
			a.ID, i, a.Name, a.Type, a.StartDateLocal,
			a.Distance, a.MovingTime, a.AverageSpeed, hr,
		); err != nil {
			return fmt.Errorf("caching activity %d: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// RecentActivities returns the cached activity list in fetch order.
func (s *Store) RecentActivities() ([]strava.Activity, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, start_date_local, distance, moving_time,
			average_speed, average_heartrate
		 FROM activities ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []strava.Activity
	for rows.Next() {
		var a strava.Activity
		var hr sql.NullFloat64
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.StartDateLocal,
			&a.Distance, &a.MovingTime, &a.AverageSpeed, &hr,
		); err != nil {
			return nil, err
		}
		if hr.Valid {
			v := hr.Float64
			a.AverageHeartrate = &v
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
