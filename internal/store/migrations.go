package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Workouts table - one row per tracking session
		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		)`,

		// Workout sets table - reps counted for one exercise within a workout
		`CREATE TABLE IF NOT EXISTS workout_sets (
			id TEXT PRIMARY KEY,
			workout_id TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
			exercise TEXT NOT NULL CHECK(exercise IN ('curl', 'pushup', 'pullup')),
			reps INTEGER NOT NULL CHECK(reps >= 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_workout_sets_workout_id ON workout_sets(workout_id)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_started_at ON workouts(started_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
