package aicoach

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Goal int

const (
	GoalBulk Goal = iota
	GoalCut
	GoalMaintain
)

func (g Goal) Valid() bool {
	return g >= GoalBulk && g <= GoalMaintain
}

func (g Goal) String() string {
	switch g {
	case GoalBulk:
		return "Bulk"
	case GoalCut:
		return "Cut"
	case GoalMaintain:
		return "Maintain"
	default:
		return fmt.Sprintf("Goal(%d)", int(g))
	}
}

// UnmarshalJSON accepts both the numeric value and the goal name.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*g = Goal(n)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("goal must be a number or a name: %w", err)
	}
	switch strings.ToLower(name) {
	case "bulk":
		*g = GoalBulk
	case "cut":
		*g = GoalCut
	case "maintain":
		*g = GoalMaintain
	default:
		return fmt.Errorf("unknown goal: %s", name)
	}
	return nil
}

// ExerciseEntry is one logged exercise instance (not one set).
type ExerciseEntry struct {
	Name        string
	SetCount    int
	Reps        int
	Weight      *float64
	PerformedAt time.Time
}

type NutritionEntry struct {
	Calories      int
	Protein       float64
	Carbohydrates *float64
	Fat           *float64
	Date          time.Time
}

type AnalysisRequest struct {
	Height                 float64 `json:"height"`
	Weight                 float64 `json:"weight"`
	BodyFatPercentage      float64 `json:"bodyFatPercentage"`
	Goal                   Goal    `json:"goal"`
	WeeklyWorkoutFrequency int     `json:"weeklyWorkoutFrequency"`
}

type CalculatedMetrics struct {
	WeeklyVolumePerExercise     map[string]float64 `json:"weeklyVolumePerExercise"`
	AverageWeeklyCalories       float64            `json:"averageWeeklyCalories"`
	AverageWeeklyProtein        float64            `json:"averageWeeklyProtein"`
	ProteinPercent              float64            `json:"proteinPercent"`
	CarbsPercent                float64            `json:"carbsPercent"`
	FatPercent                  float64            `json:"fatPercent"`
	ProgressiveOverloadDetected bool               `json:"progressiveOverloadDetected"`
	PlateauDetected             bool               `json:"plateauDetected"`
	PlateauExercises            []string           `json:"plateauExercises"`
}

type AnalysisResponse struct {
	TrainingAdvice        string            `json:"trainingAdvice"`
	NutritionAdvice       string            `json:"nutritionAdvice"`
	BulkCutRecommendation string            `json:"bulkCutRecommendation"`
	MacroSuggestion       string            `json:"macroSuggestion"`
	PlateauWarning        string            `json:"plateauWarning"`
	RawAiRecommendation   string            `json:"rawAiRecommendation"`
	CalculatedMetrics     CalculatedMetrics `json:"calculatedMetrics"`
}

// Report is the persisted outcome of one analysis. Never updated once stored.
type Report struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"userId"`
	AnalysisDate       time.Time       `json:"analysisDate"`
	TrainingSummary    string          `json:"trainingSummary"`
	NutritionSummary   string          `json:"nutritionSummary"`
	RecommendationText string          `json:"recommendationText"`
	MetricsJSON        json.RawMessage `json:"calculatedMetrics"`
	CreatedAt          time.Time       `json:"createdAt"`
}
