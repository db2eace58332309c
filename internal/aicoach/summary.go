package aicoach

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// BuildTrainingSummary renders one line per exercise, sorted by name,
// followed by the overload and plateau lines.
func BuildTrainingSummary(m CalculatedMetrics) string {
	names := make([]string, 0, len(m.WeeklyVolumePerExercise))
	for name := range m.WeeklyVolumePerExercise {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s: weekly average volume = %s kg", name, formatWhole(m.WeeklyVolumePerExercise[name]))
	}
	if sb.Len() == 0 {
		sb.WriteString("No training logged in the last 30 days.")
	}

	fmt.Fprintf(&sb, "\nProgressive overload: %s", yesNo(m.ProgressiveOverloadDetected))
	if m.PlateauDetected {
		fmt.Fprintf(&sb, "\nPlateau detected: Yes (%s)", strings.Join(m.PlateauExercises, ", "))
	} else {
		sb.WriteString("\nPlateau detected: No")
	}

	return sb.String()
}

func BuildNutritionSummary(m CalculatedMetrics) string {
	return fmt.Sprintf(
		"Average weekly calories: %s\nAverage weekly protein: %s g\nMacro distribution (P/C/F): %s%% / %s%% / %s%%",
		formatWhole(m.AverageWeeklyCalories),
		formatWhole(m.AverageWeeklyProtein),
		formatWhole(m.ProteinPercent),
		formatWhole(m.CarbsPercent),
		formatWhole(m.FatPercent),
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// formatWhole rounds half away from zero, so 2.5 renders as 3.
func formatWhole(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// no "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// formatNumber renders the shortest exact representation, 180 or 180.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
