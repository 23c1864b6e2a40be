package repository

import (
	"context"

	"github.com/anoteng/Exerlog/internal/models"
)

// ProgramRepository is scoped to one owner at construction time.
type ProgramRepository struct {
	db      DBTX
	ownerID int64
}

func NewProgramRepository(db DBTX, ownerID int64) *ProgramRepository {
	return &ProgramRepository{db: db, ownerID: ownerID}
}

func (r *ProgramRepository) Create(ctx context.Context, name string) (*models.Program, error) {
	query := `
		INSERT INTO programs (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	program := &models.Program{Name: name, UserID: r.ownerID}
	if err := r.db.QueryRow(ctx, query, name, r.ownerID).Scan(&program.ID); err != nil {
		return nil, err
	}
	return program, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	query := `
		SELECT id, name, user_id
		FROM programs
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, r.ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.ID, &program.Name, &program.UserID); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) Get(ctx context.Context, id int64) (*models.Program, error) {
	query := `
		SELECT id, name, user_id
		FROM programs
		WHERE id = $1 AND user_id = $2
	`
	var program models.Program
	err := r.db.QueryRow(ctx, query, id, r.ownerID).
		Scan(&program.ID, &program.Name, &program.UserID)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepository) Rename(ctx context.Context, id int64, name string) (bool, error) {
	query := `
		UPDATE programs
		SET name = $1
		WHERE id = $2 AND user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, name, id, r.ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM programs
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, id, r.ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddExercise links an exercise into a program with a sets x reps
// prescription. The insert only succeeds when both the program and the
// exercise belong to the scoped owner; otherwise it inserts nothing and the
// RETURNING scan reports pgx.ErrNoRows.
func (r *ProgramRepository) AddExercise(ctx context.Context, programID, exerciseID int64, sets, reps int) (int64, error) {
	query := `
		INSERT INTO program_exercises (program_id, exercise_id, sets, reps)
		SELECT p.id, e.id, $3, $4
		FROM programs p
		JOIN exercises e ON e.id = $2 AND e.user_id = $5
		WHERE p.id = $1 AND p.user_id = $5
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, programID, exerciseID, sets, reps, r.ownerID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListExercises returns the program's prescriptions joined with exercise
// names. A program that does not belong to the scoped owner yields an empty
// list.
func (r *ProgramRepository) ListExercises(ctx context.Context, programID int64) ([]models.ProgramExercise, error) {
	query := `
		SELECT pe.id, pe.program_id, pe.exercise_id, pe.sets, pe.reps, e.name
		FROM program_exercises pe
		JOIN programs p ON pe.program_id = p.id
		JOIN exercises e ON pe.exercise_id = e.id
		WHERE pe.program_id = $1 AND p.user_id = $2
		ORDER BY pe.id
	`
	rows, err := r.db.Query(ctx, query, programID, r.ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ProgramExercise, 0)
	for rows.Next() {
		var entry models.ProgramExercise
		if err := rows.Scan(
			&entry.ID,
			&entry.ProgramID,
			&entry.ExerciseID,
			&entry.Sets,
			&entry.Reps,
			&entry.Name,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
