package aicoach

import (
	"fmt"
)

var sectionHeaders = [...]string{
	"1) Training advice",
	"2) Nutrition advice",
	"3) Bulk/Cut confirmation",
	"4) Macro distribution suggestion",
	"5) Plateau warning (if applicable)",
}

const promptTemplate = `You are a professional fitness coach. Analyze the following athlete data and respond in the same language as the input.

Height: %s cm
Weight: %s kg
Body Fat: %s%%
Goal: %s
Weekly workout frequency: %d

Workout Summary:
%s

Nutrition Summary:
%s

Provide a concise but professional response with these sections (use exact headers):
%s
%s
%s
%s
%s

Keep it concise but actionable.`

func BuildPrompt(req AnalysisRequest, trainingSummary, nutritionSummary string) string {
	goal := req.Goal.String()
	if !req.Goal.Valid() {
		goal = GoalMaintain.String()
	}

	return fmt.Sprintf(
		promptTemplate,
		formatNumber(req.Height),
		formatNumber(req.Weight),
		formatNumber(req.BodyFatPercentage),
		goal,
		req.WeeklyWorkoutFrequency,
		trainingSummary,
		nutritionSummary,
		sectionHeaders[0], sectionHeaders[1], sectionHeaders[2], sectionHeaders[3], sectionHeaders[4],
	)
}
