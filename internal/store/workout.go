package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Workout represents one tracking session stored in the database.
// EndedAt is nil while the session is still running.
type Workout struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
}

// WorkoutSet represents the reps counted for one exercise within a workout.
type WorkoutSet struct {
	ID        string
	WorkoutID string
	Exercise  string
	Reps      int
	CreatedAt time.Time
}

// WorkoutRepository provides CRUD operations for workouts and their sets.
type WorkoutRepository struct {
	db *sql.DB
}

// Workouts returns the workout repository for this store.
func (s *Store) Workouts() *WorkoutRepository {
	return &WorkoutRepository{db: s.db}
}

// Create inserts a new workout into the database.
func (r *WorkoutRepository) Create(w *Workout) error {
	if w.StartedAt.IsZero() {
		w.StartedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO workouts (id, started_at, ended_at) VALUES (?, ?, ?)`,
		w.ID, w.StartedAt, nullableTime(w.EndedAt),
	)
	return err
}

// Finish marks a workout as ended at the given time.
func (r *WorkoutRepository) Finish(id string, endedAt time.Time) error {
	res, err := r.db.Exec(
		`UPDATE workouts SET ended_at = ? WHERE id = ?`,
		endedAt, id,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a workout by its ID.
func (r *WorkoutRepository) GetByID(id string) (*Workout, error) {
	w := &Workout{}
	var ended sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at FROM workouts WHERE id = ?`,
		id,
	).Scan(&w.ID, &w.StartedAt, &ended)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ended.Valid {
		w.EndedAt = &ended.Time
	}
	return w, nil
}

// List retrieves all workouts, newest first.
func (r *WorkoutRepository) List() ([]*Workout, error) {
	rows, err := r.db.Query(
		`SELECT id, started_at, ended_at FROM workouts ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []*Workout
	for rows.Next() {
		w := &Workout{}
		var ended sql.NullTime

		if err := rows.Scan(&w.ID, &w.StartedAt, &ended); err != nil {
			return nil, err
		}
		if ended.Valid {
			w.EndedAt = &ended.Time
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

// Delete removes a workout and, via cascade, its sets.
func (r *WorkoutRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddSet inserts a counted set for a workout.
func (r *WorkoutRepository) AddSet(set *WorkoutSet) error {
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO workout_sets (id, workout_id, exercise, reps, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		set.ID, set.WorkoutID, set.Exercise, set.Reps, set.CreatedAt,
	)
	return err
}

// ListSets retrieves all sets for a workout in insertion order.
func (r *WorkoutRepository) ListSets(workoutID string) ([]*WorkoutSet, error) {
	rows, err := r.db.Query(
		`SELECT id, workout_id, exercise, reps, created_at
		 FROM workout_sets WHERE workout_id = ? ORDER BY created_at`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []*WorkoutSet
	for rows.Next() {
		set := &WorkoutSet{}
		if err := rows.Scan(&set.ID, &set.WorkoutID, &set.Exercise, &set.Reps, &set.CreatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, rows.Err()
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
