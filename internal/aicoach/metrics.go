package aicoach

import (
	"math"
	"sort"
	"time"
)

const (
	AnalysisWindow = 30 * 24 * time.Hour
	week           = 7 * 24 * time.Hour

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// CalculateMetrics aggregates the exercise and nutrition entries of the
// analysis window starting at since. It does no I/O.
func CalculateMetrics(exercises []ExerciseEntry, nutrition []NutritionEntry, since time.Time) CalculatedMetrics {
	weeklyVolumes := weeklyVolumesPerExercise(exercises, since)

	m := CalculatedMetrics{
		WeeklyVolumePerExercise: make(map[string]float64, len(weeklyVolumes)),
		PlateauExercises:        []string{},
	}

	for name, volumes := range weeklyVolumes {
		m.WeeklyVolumePerExercise[name] = average(volumes)

		if overloaded(volumes) {
			m.ProgressiveOverloadDetected = true
		}
		if plateaued(volumes) {
			m.PlateauExercises = append(m.PlateauExercises, name)
		}
	}
	sort.Strings(m.PlateauExercises)
	m.PlateauDetected = len(m.PlateauExercises) > 0

	applyNutrition(&m, nutrition)

	return m
}

// weeklyVolumesPerExercise buckets the volume of each exercise into the
// window weeks. Weeks without volume stay zero, up to the last logged week.
func weeklyVolumesPerExercise(exercises []ExerciseEntry, since time.Time) map[string][]float64 {
	weeklyVolumes := make(map[string][]float64)
	for _, ex := range exercises {
		elapsed := ex.PerformedAt.Sub(since)
		if elapsed < 0 {
			// not part of the window
			continue
		}
		weekIdx := int(math.Floor(elapsed.Hours() / week.Hours()))

		volumes := weeklyVolumes[ex.Name]
		for len(volumes) <= weekIdx {
			volumes = append(volumes, 0)
		}
		volumes[weekIdx] += ex.volume()
		weeklyVolumes[ex.Name] = volumes
	}
	return weeklyVolumes
}

func (ex ExerciseEntry) volume() float64 {
	var weight float64
	if ex.Weight != nil {
		weight = *ex.Weight
	}
	return weight * float64(ex.SetCount) * float64(ex.Reps)
}

// overloaded reports whether the last week beats the one before it.
func overloaded(volumes []float64) bool {
	n := len(volumes)
	return n >= 2 && volumes[n-1] > volumes[n-2]
}

// plateaued reports three non-increasing weeks at the end of the series.
func plateaued(volumes []float64) bool {
	n := len(volumes)
	return n >= 3 && volumes[n-1] <= volumes[n-2] && volumes[n-2] <= volumes[n-3]
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func applyNutrition(m *CalculatedMetrics, nutrition []NutritionEntry) {
	if len(nutrition) == 0 {
		return
	}

	var totalCalories int
	var totalProtein, totalCarbs, totalFat float64
	days := make(map[string]struct{})
	for _, n := range nutrition {
		totalCalories += n.Calories
		totalProtein += n.Protein
		if n.Carbohydrates != nil {
			totalCarbs += *n.Carbohydrates
		}
		if n.Fat != nil {
			totalFat += *n.Fat
		}
		days[n.Date.Format(time.DateOnly)] = struct{}{}
	}

	daysCount := float64(len(days))
	m.AverageWeeklyCalories = float64(totalCalories) / daysCount * 7
	m.AverageWeeklyProtein = totalProtein / daysCount * 7

	// percentages come from the totals, and are not normalized to 100
	if totalCalories > 0 {
		calories := float64(totalCalories)
		m.ProteinPercent = totalProtein * kcalPerGramProtein / calories * 100
		m.CarbsPercent = totalCarbs * kcalPerGramCarbs / calories * 100
		m.FatPercent = totalFat * kcalPerGramFat / calories * 100
	}
}
