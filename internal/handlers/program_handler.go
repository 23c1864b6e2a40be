package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/anoteng/Exerlog/internal/models"
	"github.com/anoteng/Exerlog/internal/repository"
)

type programStore interface {
	Create(ctx context.Context, name string) (*models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
	Get(ctx context.Context, id int64) (*models.Program, error)
	Rename(ctx context.Context, id int64, name string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	AddExercise(ctx context.Context, programID, exerciseID int64, sets, reps int) (int64, error)
	ListExercises(ctx context.Context, programID int64) ([]models.ProgramExercise, error)
}

type ProgramHandler struct {
	store func(ownerID int64) programStore
}

func NewProgramHandler(db repository.DBTX) *ProgramHandler {
	return &ProgramHandler{
		store: func(ownerID int64) programStore {
			return repository.NewProgramRepository(db, ownerID)
		},
	}
}

type programNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type addExerciseRequest struct {
	ExerciseID int64 `json:"exerciseId" validate:"required"`
	Sets       int   `json:"sets" validate:"required,gt=0"`
	Reps       int   `json:"reps" validate:"required,gt=0"`
}

func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req programNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	program, err := h.store(userID).Create(c.Context(), req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create program"})
	}

	return c.Status(fiber.StatusCreated).JSON(program)
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	programs, err := h.store(userID).List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch programs"})
	}

	return c.JSON(programs)
}

func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	program, err := h.store(userID).Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch program"})
	}

	return c.JSON(program)
}

func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	var req programNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	found, err := h.store(userID).Rename(c.Context(), id, req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update program"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
	}

	return c.JSON(fiber.Map{"id": id, "name": req.Name})
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	found, err := h.store(userID).Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete program"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
	}

	return c.JSON(fiber.Map{"message": "Program deleted"})
}

func (h *ProgramHandler) AddExercise(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	programID, err := paramID(c, "programId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	var req addExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "exerciseId, sets and reps must be positive"})
	}

	id, err := h.store(userID).AddExercise(c.Context(), programID, req.ExerciseID, req.Sets, req.Reps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Program or exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to add exercise to program"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *ProgramHandler) ListExercises(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	programID, err := paramID(c, "programId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	entries, err := h.store(userID).ListExercises(c.Context(), programID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercises for program"})
	}

	return c.JSON(entries)
}
