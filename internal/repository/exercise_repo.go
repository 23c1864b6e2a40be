package repository

import (
	"context"

	"github.com/anoteng/Exerlog/internal/models"
)

// ExerciseRepository is scoped to one owner at construction time, so every
// query in it carries the owner filter.
type ExerciseRepository struct {
	db      DBTX
	ownerID int64
}

func NewExerciseRepository(db DBTX, ownerID int64) *ExerciseRepository {
	return &ExerciseRepository{db: db, ownerID: ownerID}
}

func (r *ExerciseRepository) Create(ctx context.Context, name string) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	exercise := &models.Exercise{Name: name, UserID: r.ownerID}
	if err := r.db.QueryRow(ctx, query, name, r.ownerID).Scan(&exercise.ID); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (r *ExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT id, name, user_id
		FROM exercises
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, r.ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.UserID); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}

func (r *ExerciseRepository) Get(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `
		SELECT id, name, user_id
		FROM exercises
		WHERE id = $1 AND user_id = $2
	`
	var exercise models.Exercise
	err := r.db.QueryRow(ctx, query, id, r.ownerID).
		Scan(&exercise.ID, &exercise.Name, &exercise.UserID)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// Rename reports found=false when no row matched, which covers both a
// missing id and an exercise owned by someone else.
func (r *ExerciseRepository) Rename(ctx context.Context, id int64, name string) (bool, error) {
	query := `
		UPDATE exercises
		SET name = $1
		WHERE id = $2 AND user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, name, id, r.ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM exercises
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, id, r.ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
