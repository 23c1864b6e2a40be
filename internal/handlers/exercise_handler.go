package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/anoteng/Exerlog/internal/models"
	"github.com/anoteng/Exerlog/internal/repository"
)

type exerciseStore interface {
	Create(ctx context.Context, name string) (*models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
	Get(ctx context.Context, id int64) (*models.Exercise, error)
	Rename(ctx context.Context, id int64, name string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ExerciseHandler struct {
	store func(ownerID int64) exerciseStore
}

func NewExerciseHandler(db repository.DBTX) *ExerciseHandler {
	return &ExerciseHandler{
		store: func(ownerID int64) exerciseStore {
			return repository.NewExerciseRepository(db, ownerID)
		},
	}
}

type exerciseNameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req exerciseNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	exercise, err := h.store(userID).Create(c.Context(), req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create exercise"})
	}

	return c.Status(fiber.StatusCreated).JSON(exercise)
}

func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	exercises, err := h.store(userID).List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}

	return c.JSON(exercises)
}

func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	exercise, err := h.store(userID).Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercise"})
	}

	return c.JSON(exercise)
}

func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	var req exerciseNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	found, err := h.store(userID).Rename(c.Context(), id, req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update exercise"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}

	return c.JSON(fiber.Map{"id": id, "name": req.Name})
}

func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	userID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	found, err := h.store(userID).Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete exercise"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}

	return c.JSON(fiber.Map{"message": "Exercise deleted"})
}
