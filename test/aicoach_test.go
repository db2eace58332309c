package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/fitlog/internal/aicoach"
	"github.com/2beens/fitlog/internal/logbook"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestAICoach_Unauthorized() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, _ := s.doRequest(ctx, "POST", "/aicoach/analyze", "", aicoach.AnalysisRequest{
		Height: 180, Weight: 80, Goal: aicoach.GoalBulk, WeeklyWorkoutFrequency: 4,
	})
	assert.Equal(s.T(), http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, "POST", "/aicoach/analyze", "not-a-real-token", aicoach.AnalysisRequest{
		Height: 180, Weight: 80, Goal: aicoach.GoalBulk, WeeklyWorkoutFrequency: 4,
	})
	assert.Equal(s.T(), http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestAICoach_AnalyzeEmptyLogbook() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	_, token := s.newSession(ctx)

	status, body := s.doRequest(ctx, "POST", "/aicoach/analyze", token, aicoach.AnalysisRequest{
		Height: 175, Weight: 70, Goal: aicoach.GoalMaintain, WeeklyWorkoutFrequency: 3,
	})
	s.Require().Equal(http.StatusOK, status, string(body))

	var resp aicoach.AnalysisResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	assert.NotEmpty(t, resp.TrainingAdvice)
	assert.NotEmpty(t, resp.RawAiRecommendation)
	assert.Empty(t, resp.CalculatedMetrics.WeeklyVolumePerExercise)
	assert.False(t, resp.CalculatedMetrics.PlateauDetected)
	assert.Equal(t, float64(0), resp.CalculatedMetrics.AverageWeeklyCalories)

	status, body = s.doRequest(ctx, "GET", "/aicoach/reports/page/1/size/10", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var listResp aicoach.ListReportsResponse
	s.Require().NoError(json.Unmarshal(body, &listResp))
	s.Require().Equal(1, listResp.Total)
	s.Require().Len(listResp.Reports, 1)
	assert.Equal(t, resp.RawAiRecommendation, listResp.Reports[0].RecommendationText)

	// past the last page
	status, body = s.doRequest(ctx, "GET", "/aicoach/reports/page/2/size/10", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var pastEndResp aicoach.ListReportsResponse
	s.Require().NoError(json.Unmarshal(body, &pastEndResp))
	assert.Equal(t, 1, pastEndResp.Total)
	assert.Empty(t, pastEndResp.Reports)
}

func (s *IntegrationTestSuite) TestAICoach_AnalyzeLoggedData() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	userID, token := s.newSession(ctx)
	faker := gofakeit.New(7)

	status, body := s.doRequest(ctx, "POST", "/logbook/programs", token, logbook.AddProgramRequest{
		Name:        faker.Word() + " split",
		Description: faker.Sentence(6),
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var program logbook.WorkoutProgram
	s.Require().NoError(json.Unmarshal(body, &program))
	assert.Equal(t, userID, program.UserID)

	status, body = s.doRequest(ctx, "POST", fmt.Sprintf("/logbook/programs/%d/days", program.ID), token, logbook.AddDayRequest{
		Name: "Push",
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var day logbook.WorkoutDay
	s.Require().NoError(json.Unmarshal(body, &day))

	// three weeks of bench press, the weight going up every week
	for week, kilos := range []float64{80, 82.5, 85} {
		performedAt := s.nowUTC().AddDate(0, 0, -7*(2-week)-1)
		status, body = s.doRequest(ctx, "POST", fmt.Sprintf("/logbook/workouts/days/%d/exercises", day.ID), token, logbook.AddExerciseRequest{
			Name:        "Bench Press",
			SetCount:    4,
			Reps:        8,
			Weight:      &kilos,
			PerformedAt: &performedAt,
		})
		s.Require().Equal(http.StatusCreated, status, string(body))
	}

	for i := 0; i < 5; i++ {
		status, body = s.doRequest(ctx, "POST", "/logbook/nutrition", token, logbook.AddNutritionRequest{
			Date:     s.nowUTC().AddDate(0, 0, -i).Format("2006-01-02"),
			MealType: "Dinner",
			Calories: 2800,
			Protein:  170,
		})
		s.Require().Equal(http.StatusCreated, status, string(body))
	}

	analysisReq := aicoach.AnalysisRequest{
		Height: 182, Weight: 84, BodyFatPercentage: 15, Goal: aicoach.GoalBulk, WeeklyWorkoutFrequency: 4,
	}
	status, body = s.doRequest(ctx, "POST", "/aicoach/analyze", token, analysisReq)
	s.Require().Equal(http.StatusOK, status, string(body))

	var resp aicoach.AnalysisResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	assert.True(t, resp.CalculatedMetrics.ProgressiveOverloadDetected)
	assert.Contains(t, resp.CalculatedMetrics.WeeklyVolumePerExercise, "Bench Press")
	assert.Greater(t, resp.CalculatedMetrics.AverageWeeklyCalories, float64(0))

	// same stats again are served from the cache, without a new report
	status, cachedBody := s.doRequest(ctx, "POST", "/aicoach/analyze", token, analysisReq)
	s.Require().Equal(http.StatusOK, status)
	assert.JSONEq(t, string(body), string(cachedBody))

	status, body = s.doRequest(ctx, "GET", "/aicoach/reports/page/1/size/5", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var listResp aicoach.ListReportsResponse
	s.Require().NoError(json.Unmarshal(body, &listResp))
	s.Require().Equal(1, listResp.Total)

	report := listResp.Reports[0]
	status, body = s.doRequest(ctx, "GET", "/aicoach/reports/"+report.ID.String(), token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var gotReport aicoach.Report
	s.Require().NoError(json.Unmarshal(body, &gotReport))
	assert.Equal(t, report.ID, gotReport.ID)
	assert.Equal(t, userID, gotReport.UserID)

	var metrics aicoach.CalculatedMetrics
	s.Require().NoError(json.Unmarshal(gotReport.MetricsJSON, &metrics))
	assert.Equal(t, resp.CalculatedMetrics, metrics)

	// reports are private
	_, otherToken := s.newSession(ctx)
	status, _ = s.doRequest(ctx, "GET", "/aicoach/reports/"+report.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestLogbook_ExerciseForForeignDay() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, ownerToken := s.newSession(ctx)
	_, token := s.newSession(ctx)

	status, body := s.doRequest(ctx, "POST", "/logbook/programs", ownerToken, logbook.AddProgramRequest{Name: "Upper/Lower"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var program logbook.WorkoutProgram
	s.Require().NoError(json.Unmarshal(body, &program))

	status, body = s.doRequest(ctx, "POST", fmt.Sprintf("/logbook/programs/%d/days", program.ID), token, logbook.AddDayRequest{Name: "Upper"})
	assert.Equal(s.T(), http.StatusNotFound, status, string(body))

	status, body = s.doRequest(ctx, "POST", fmt.Sprintf("/logbook/programs/%d/days", program.ID), ownerToken, logbook.AddDayRequest{Name: "Upper"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var day logbook.WorkoutDay
	s.Require().NoError(json.Unmarshal(body, &day))

	status, _ = s.doRequest(ctx, "POST", fmt.Sprintf("/logbook/workouts/days/%d/exercises", day.ID), token, logbook.AddExerciseRequest{
		Name: "Row", SetCount: 3, Reps: 10,
	})
	assert.Equal(s.T(), http.StatusNotFound, status)
}
