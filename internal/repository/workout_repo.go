package repository

import (
	"context"

	"github.com/anoteng/Exerlog/internal/models"
)

// WorkoutRepository is scoped to one owner at construction time.
type WorkoutRepository struct {
	db      DBTX
	ownerID int64
}

func NewWorkoutRepository(db DBTX, ownerID int64) *WorkoutRepository {
	return &WorkoutRepository{db: db, ownerID: ownerID}
}

// Start opens a workout against one of the owner's programs. start_time is
// assigned by the database. A program id that is missing or not the owner's
// inserts nothing, surfacing as pgx.ErrNoRows.
func (r *WorkoutRepository) Start(ctx context.Context, programID int64) (int64, error) {
	query := `
		INSERT INTO workouts (user_id, program_id)
		SELECT $1, p.id
		FROM programs p
		WHERE p.id = $2 AND p.user_id = $1
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, r.ownerID, programID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Exercises returns the workout's prescribed exercises, left-joined with the
// sets already logged in this workout, plus the owner's most recent prior
// weight/reps for each exercise.
//
// "Prior" uses (start_time, id) as the one recency key: earlier workouts are
// those ordered strictly before the current one by start time, with id
// breaking ties between identical timestamps. Within the chosen workout the
// highest set number wins, set id breaking duplicate set numbers so weight
// and reps always come from the same row.
func (r *WorkoutRepository) Exercises(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error) {
	query := `
		SELECT pe.id, pe.program_id, pe.exercise_id, pe.sets, pe.reps, e.name,
			ws.weight, ws.reps, ws.set_number,
			(
				SELECT ws2.weight
				FROM workout_sets ws2
				JOIN workouts w2 ON ws2.workout_id = w2.id
				WHERE ws2.exercise_id = pe.exercise_id
					AND w2.user_id = $1
					AND (w2.start_time, w2.id) < (w.start_time, w.id)
				ORDER BY w2.start_time DESC, w2.id DESC, ws2.set_number DESC, ws2.id DESC
				LIMIT 1
			) AS previous_weight,
			(
				SELECT ws2.reps
				FROM workout_sets ws2
				JOIN workouts w2 ON ws2.workout_id = w2.id
				WHERE ws2.exercise_id = pe.exercise_id
					AND w2.user_id = $1
					AND (w2.start_time, w2.id) < (w.start_time, w.id)
				ORDER BY w2.start_time DESC, w2.id DESC, ws2.set_number DESC, ws2.id DESC
				LIMIT 1
			) AS previous_reps
		FROM workouts w
		JOIN program_exercises pe ON pe.program_id = w.program_id
		JOIN exercises e ON pe.exercise_id = e.id
		LEFT JOIN workout_sets ws ON ws.exercise_id = pe.exercise_id AND ws.workout_id = w.id
		WHERE w.id = $2 AND w.user_id = $1
		ORDER BY pe.id, ws.set_number
	`
	rows, err := r.db.Query(ctx, query, r.ownerID, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.WorkoutExercise, 0)
	for rows.Next() {
		var entry models.WorkoutExercise
		if err := rows.Scan(
			&entry.ID,
			&entry.ProgramID,
			&entry.ExerciseID,
			&entry.Sets,
			&entry.Reps,
			&entry.Name,
			&entry.Weight,
			&entry.LoggedReps,
			&entry.SetNumber,
			&entry.PreviousWeight,
			&entry.PreviousReps,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ExerciseHistory returns every set the owner has logged for the exercise,
// across all workouts, most recent session first and set number ascending
// within a session.
func (r *WorkoutRepository) ExerciseHistory(ctx context.Context, exerciseID int64) ([]models.SetHistoryEntry, error) {
	query := `
		SELECT ws.weight, ws.reps, ws.set_number, w.start_time
		FROM workout_sets ws
		JOIN workouts w ON ws.workout_id = w.id
		WHERE ws.exercise_id = $1 AND w.user_id = $2
		ORDER BY w.start_time DESC, w.id DESC, ws.set_number ASC
	`
	rows, err := r.db.Query(ctx, query, exerciseID, r.ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.SetHistoryEntry, 0)
	for rows.Next() {
		var entry models.SetHistoryEntry
		if err := rows.Scan(&entry.Weight, &entry.Reps, &entry.SetNumber, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// LogSet appends one set to a workout owned by the scoped owner. Set numbers
// are caller-supplied and not checked for uniqueness or contiguity. A workout
// that is missing or not the owner's inserts nothing (pgx.ErrNoRows).
func (r *WorkoutRepository) LogSet(ctx context.Context, workoutID, exerciseID int64, setNumber int, weight float64, reps int) (int64, error) {
	query := `
		INSERT INTO workout_sets (workout_id, exercise_id, set_number, weight, reps)
		SELECT w.id, $2, $3, $4, $5
		FROM workouts w
		WHERE w.id = $1 AND w.user_id = $6
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, workoutID, exerciseID, setNumber, weight, reps, r.ownerID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Finish closes a workout exactly once: end_time and comment are only set
// while end_time is still null. found=false covers a missing id, someone
// else's workout, and an already finished one alike.
func (r *WorkoutRepository) Finish(ctx context.Context, workoutID int64, comment string) (bool, error) {
	query := `
		UPDATE workouts
		SET end_time = now(), comment = $1
		WHERE id = $2 AND user_id = $3 AND end_time IS NULL
	`
	tag, err := r.db.Exec(ctx, query, comment, workoutID, r.ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
