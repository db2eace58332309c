package aicoach

const (
	maxHeightCm       = 300
	maxWeightKg       = 500
	maxBodyFatPercent = 60
	minWeeklyWorkouts = 1
	maxWeeklyWorkouts = 14
)

// ValidateAnalysisRequest returns all the violations found, or nil if the request is valid.
func ValidateAnalysisRequest(req AnalysisRequest) []string {
	var violations []string

	if req.Height <= 0 {
		violations = append(violations, "height must be greater than 0")
	} else if req.Height > maxHeightCm {
		violations = append(violations, "height must be a valid value in cm (at most 300)")
	}

	if req.Weight <= 0 {
		violations = append(violations, "weight must be greater than 0")
	} else if req.Weight > maxWeightKg {
		violations = append(violations, "weight must be a valid value in kg (at most 500)")
	}

	if req.BodyFatPercentage < 0 {
		violations = append(violations, "body fat percentage cannot be negative")
	} else if req.BodyFatPercentage > maxBodyFatPercent {
		violations = append(violations, "body fat percentage must be between 0 and 60")
	}

	if !req.Goal.Valid() {
		violations = append(violations, "goal must be one of: Bulk, Cut, Maintain")
	}

	if req.WeeklyWorkoutFrequency < minWeeklyWorkouts {
		violations = append(violations, "weekly workout frequency must be at least 1")
	} else if req.WeeklyWorkoutFrequency > maxWeeklyWorkouts {
		violations = append(violations, "weekly workout frequency cannot exceed 14")
	}

	return violations
}
