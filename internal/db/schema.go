package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema holds the logbook and ai coach tables, safe to run more than once.
const Schema = `
CREATE TABLE IF NOT EXISTS workout_program
(
    id          SERIAL PRIMARY KEY,
    user_id     UUID        NOT NULL,
    name        VARCHAR     NOT NULL,
    description TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_program_user_id ON workout_program (user_id);

CREATE TABLE IF NOT EXISTS workout_day
(
    id                 SERIAL PRIMARY KEY,
    workout_program_id INTEGER     NOT NULL REFERENCES workout_program (id) ON DELETE CASCADE,
    name               VARCHAR     NOT NULL,
    day_of_week        INTEGER,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise
(
    id             SERIAL PRIMARY KEY,
    workout_day_id INTEGER     NOT NULL REFERENCES workout_day (id) ON DELETE CASCADE,
    name           VARCHAR     NOT NULL,
    set_count      INTEGER     NOT NULL CHECK (set_count >= 0),
    reps           INTEGER     NOT NULL CHECK (reps >= 0),
    weight         NUMERIC(8, 2),
    notes          TEXT,
    created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_exercise_created_at ON exercise (created_at);

CREATE TABLE IF NOT EXISTS nutrition_log
(
    id            SERIAL PRIMARY KEY,
    user_id       UUID          NOT NULL,
    date          DATE          NOT NULL,
    meal_type     VARCHAR,
    calories      INTEGER       NOT NULL CHECK (calories >= 0),
    protein       NUMERIC(8, 2) NOT NULL,
    carbohydrates NUMERIC(8, 2),
    fat           NUMERIC(8, 2),
    notes         TEXT,
    created_at    TIMESTAMPTZ   NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_nutrition_log_user_date ON nutrition_log (user_id, date);

CREATE TABLE IF NOT EXISTS aicoach_report
(
    id                  UUID PRIMARY KEY,
    user_id             UUID        NOT NULL,
    analysis_date       TIMESTAMPTZ NOT NULL,
    training_summary    TEXT        NOT NULL,
    nutrition_summary   TEXT        NOT NULL,
    recommendation_text TEXT        NOT NULL,
    metrics_json        JSONB       NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_aicoach_report_user_created ON aicoach_report (user_id, created_at DESC);
`

func EnsureSchema(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
