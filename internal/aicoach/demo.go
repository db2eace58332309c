package aicoach

import (
	"fmt"
	"strings"
)

const demoHeader = "DEMO RESPONSE (OpenAI disabled):"

func goalLabel(g Goal) string {
	switch g {
	case GoalBulk:
		return "mass/weight gain (bulk)"
	case GoalCut:
		return "fat loss (cut)"
	default:
		return "weight maintenance (maintain)"
	}
}

// DemoRecommendation synthesizes the advice from the metrics and the request
// only, so identical inputs always give identical text. Used both for demo
// mode and as the fallback when the completion call fails.
func DemoRecommendation(req AnalysisRequest, m CalculatedMetrics) *AnalysisResponse {
	resp := &AnalysisResponse{
		TrainingAdvice:        demoTrainingAdvice(req, m),
		NutritionAdvice:       demoNutritionAdvice(m),
		BulkCutRecommendation: demoBulkCutRecommendation(req.Goal),
		MacroSuggestion: "As a general starting point, set protein to 25-30% of total calories, carbohydrates to 40-50% and fat to 20-25%. " +
			"Shifting more carbohydrates and protein to your pre and post workout meals helps recovery.",
		PlateauWarning:    demoPlateauWarning(m),
		CalculatedMetrics: m,
	}

	sections := []string{
		resp.TrainingAdvice,
		resp.NutritionAdvice,
		resp.BulkCutRecommendation,
		resp.MacroSuggestion,
		resp.PlateauWarning,
	}
	var raw strings.Builder
	raw.WriteString(demoHeader)
	for i, section := range sections {
		fmt.Fprintf(&raw, "\n\n%s\n%s", sectionHeaders[i], section)
	}
	resp.RawAiRecommendation = raw.String()

	return resp
}

func demoTrainingAdvice(req AnalysisRequest, m CalculatedMetrics) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Your goal is %s. A weekly training frequency of %d sessions fits this goal well. ",
		goalLabel(req.Goal), req.WeeklyWorkoutFrequency,
	)

	if m.ProgressiveOverloadDetected {
		sb.WriteString("Your set volume has increased over the weeks, you are applying progressive overload, keep it up. ")
	} else {
		sb.WriteString("Your set volume is not changing much over the weeks, try adding weight or reps to apply progressive overload. ")
	}

	if m.PlateauDetected && len(m.PlateauExercises) > 0 {
		fmt.Fprintf(&sb,
			"%s show signs of a plateau; consider different rep ranges, exercise variations or a deload week.",
			strings.Join(m.PlateauExercises, ", "),
		)
	} else {
		sb.WriteString("Adding a deload week and some variation to every exercise from time to time helps keep your performance up in the long run.")
	}

	return sb.String()
}

func demoNutritionAdvice(m CalculatedMetrics) string {
	var dailyCalories, dailyProtein float64
	if m.AverageWeeklyCalories > 0 {
		dailyCalories = m.AverageWeeklyCalories / 7
	}
	if m.AverageWeeklyProtein > 0 {
		dailyProtein = m.AverageWeeklyProtein / 7
	}

	return fmt.Sprintf(
		"Your average daily intake is about %s kcal, with an average of %s g of protein per day. "+
			"Depending on your goal, try to keep protein between 1.6-2.2 g per kg of body weight. "+
			"Keeping carbohydrates a bit higher on training days and lower on rest days supports your performance.",
		formatWhole(dailyCalories), formatWhole(dailyProtein),
	)
}

func demoBulkCutRecommendation(goal Goal) string {
	switch goal {
	case GoalCut:
		return "Your priority right now is fat loss. Aim for a mild calorie deficit so that your weight drops by about 0.5-0.75% per week."
	case GoalBulk:
		return "For muscle gain a mild, not too aggressive calorie surplus (about 5-10% above maintenance calories) works best."
	default:
		return "To improve performance while keeping your weight, stay around maintenance calories and adjust small ups and downs based on your performance."
	}
}

func demoPlateauWarning(m CalculatedMetrics) string {
	if m.PlateauDetected {
		return fmt.Sprintf(
			"Volume progress looks limited on some exercises. Consider updating the set/rep scheme, tempo and rest times, especially for %s.",
			strings.Join(m.PlateauExercises, ", "),
		)
	}
	return "No clear plateau signal, but refreshing your training structure with small changes every 6-8 weeks is still useful."
}
