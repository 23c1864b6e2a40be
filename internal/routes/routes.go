package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anoteng/Exerlog/internal/config"
	"github.com/anoteng/Exerlog/internal/handlers"
	"github.com/anoteng/Exerlog/internal/middleware"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, cfg.TokenTTL)
	exerciseHandler := handlers.NewExerciseHandler(db)
	programHandler := handlers.NewProgramHandler(db)
	workoutHandler := handlers.NewWorkoutHandler(db)

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	exercises := app.Group("/exercises", middleware.AuthRequired(cfg.JWTSecret))
	exercises.Post("/", exerciseHandler.Create)
	exercises.Get("/", exerciseHandler.List)
	exercises.Get("/:id", exerciseHandler.Get)
	exercises.Put("/:id", exerciseHandler.Update)
	exercises.Delete("/:id", exerciseHandler.Delete)

	programs := app.Group("/programs", middleware.AuthRequired(cfg.JWTSecret))
	programs.Post("/", programHandler.Create)
	programs.Get("/", programHandler.List)
	programs.Get("/:id", programHandler.Get)
	programs.Put("/:id", programHandler.Update)
	programs.Delete("/:id", programHandler.Delete)
	programs.Post("/:programId/exercises", programHandler.AddExercise)
	programs.Get("/:programId/exercises", programHandler.ListExercises)

	workouts := app.Group("/workouts", middleware.AuthRequired(cfg.JWTSecret))
	workouts.Post("/", workoutHandler.Start)
	workouts.Get("/:workoutId/exercises", workoutHandler.Exercises)
	workouts.Get("/:workoutId/exercises/:exerciseId/history", workoutHandler.History)
	workouts.Post("/:workoutId/exercises/:exerciseId/sets", workoutHandler.LogSet)
	workouts.Post("/:workoutId/finish", workoutHandler.Finish)
}
