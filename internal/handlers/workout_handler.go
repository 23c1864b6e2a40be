package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/anoteng/Exerlog/internal/models"
	"github.com/anoteng/Exerlog/internal/repository"
)

type workoutStore interface {
	Start(ctx context.Context, programID int64) (int64, error)
	Exercises(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error)
	ExerciseHistory(ctx context.Context, exerciseID int64) ([]models.SetHistoryEntry, error)
	LogSet(ctx context.Context, workoutID, exerciseID int64, setNumber int, weight float64, reps int) (int64, error)
	Finish(ctx context.Context, workoutID int64, comment string) (bool, error)
}

type WorkoutHandler struct {
	store func(ownerID int64) workoutStore
}

func NewWorkoutHandler(db repository.DBTX) *WorkoutHandler {
	return &WorkoutHandler{
		store: func(ownerID int64) workoutStore {
			return repository.NewWorkoutRepository(db, ownerID)
		},
	}
}

type startWorkoutRequest struct {
	ProgramID int64 `json:"programId" validate:"required"`
}

// Set numbers, weights and reps are recorded as supplied; the log is the
// user's own account of the session.
type logSetRequest struct {
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
}

type finishWorkoutRequest struct {
	Comment string `json:"comment"`
}

func (h *WorkoutHandler) Start(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req startWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "programId is required"})
	}

	workoutID, err := h.store(userID).Start(c.Context(), req.ProgramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to start workout"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workoutId": workoutID})
}

func (h *WorkoutHandler) Exercises(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := paramID(c, "workoutId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	entries, err := h.store(userID).Exercises(c.Context(), workoutID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercises for workout"})
	}

	return c.JSON(entries)
}

// History spans every workout of the caller for the exercise; the workoutId
// path segment only anchors the URL.
func (h *WorkoutHandler) History(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	exerciseID, err := paramID(c, "exerciseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	entries, err := h.store(userID).ExerciseHistory(c.Context(), exerciseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercise history"})
	}

	return c.JSON(entries)
}

func (h *WorkoutHandler) LogSet(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := paramID(c, "workoutId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}
	exerciseID, err := paramID(c, "exerciseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	var req logSetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	setID, err := h.store(userID).LogSet(c.Context(), workoutID, exerciseID, req.SetNumber, req.Weight, req.Reps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to log set"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"setId": setID})
}

func (h *WorkoutHandler) Finish(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := paramID(c, "workoutId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var req finishWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	found, err := h.store(userID).Finish(c.Context(), workoutID, req.Comment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to finish workout"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"error": "Workout not found or already finished"})
	}

	return c.JSON(fiber.Map{"message": "Workout finished successfully"})
}
