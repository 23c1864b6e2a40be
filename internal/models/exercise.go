package models

type Exercise struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

type Program struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// ProgramExercise is one prescription row: exercise E in program P,
// planned for Sets x Reps.
type ProgramExercise struct {
	ID         int64  `json:"id"`
	ProgramID  int64  `json:"program_id"`
	ExerciseID int64  `json:"exercise_id"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
	Name       string `json:"name"`
}
