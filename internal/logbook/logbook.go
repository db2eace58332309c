package logbook

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWorkoutProgramNotFound = errors.New("workout program not found")
	ErrWorkoutDayNotFound     = errors.New("workout day not found")
)

type WorkoutProgram struct {
	ID          int       `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type WorkoutDay struct {
	ID               int       `json:"id"`
	WorkoutProgramID int       `json:"workoutProgramId"`
	Name             string    `json:"name"`
	DayOfWeek        *int      `json:"dayOfWeek,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Exercise is one exercise instance logged on a workout day. SetCount
// sets of Reps reps each, all done with the same Weight.
type Exercise struct {
	ID           int       `json:"id"`
	WorkoutDayID int       `json:"workoutDayId"`
	Name         string    `json:"name"`
	SetCount     int       `json:"setCount"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NutritionLog struct {
	ID            int       `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Date          time.Time `json:"date"`
	MealType      string    `json:"mealType,omitempty"`
	Calories      int       `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates *float64  `json:"carbohydrates,omitempty"`
	Fat           *float64  `json:"fat,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
