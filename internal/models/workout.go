package models

import "time"

// WorkoutExercise is one row of the workout view: the prescription joined
// with this workout's logged sets (nullable, one row per logged set) and the
// most recent weight/reps the user logged for the exercise in an earlier
// workout (nullable when there is no history).
type WorkoutExercise struct {
	ID             int64    `json:"id"`
	ProgramID      int64    `json:"program_id"`
	ExerciseID     int64    `json:"exercise_id"`
	Sets           int      `json:"sets"`
	Reps           int      `json:"reps"`
	Name           string   `json:"name"`
	Weight         *float64 `json:"weight"`
	LoggedReps     *int     `json:"logged_reps"`
	SetNumber      *int     `json:"set_number"`
	PreviousWeight *float64 `json:"previous_weight"`
	PreviousReps   *int     `json:"previous_reps"`
}

// SetHistoryEntry is one logged set of an exercise, with the start time of
// the workout it was logged in.
type SetHistoryEntry struct {
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	SetNumber int       `json:"set_number"`
	Date      time.Time `json:"date"`
}
