package test

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/logbook"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestLogbook_LoadNutritionIgnoresSessionTimeZone() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	userID := uuid.New()
	sinceDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	for _, date := range []string{"2026-09-13", "2026-09-14", "2026-09-20"} {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO nutrition_log (user_id, date, calories, protein)
			VALUES ($1, $2, 2400, 150)
		`, userID, date)
		s.Require().NoError(err)
	}

	// a session west of UTC would turn midnight UTC into the previous day
	poolConfig, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable", s.pgPort, testDBName,
	))
	s.Require().NoError(err)
	poolConfig.ConnConfig.RuntimeParams["timezone"] = "America/Los_Angeles"
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	s.Require().NoError(err)
	defer pool.Close()

	entries, err := logbook.NewRepo(pool).LoadNutrition(ctx, userID, sinceDate)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	assert.Equal(t, "2026-09-14", entries[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2026-09-20", entries[1].Date.Format(time.DateOnly))
}
