package logbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/aicoach"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddProgram(ctx context.Context, program WorkoutProgram) (_ *WorkoutProgram, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.program.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", program.UserID.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_program (user_id, name, description)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at
	`,
		program.UserID,
		program.Name,
		program.Description,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// AddDay adds a day to a program, only if the program belongs to the user.
func (r *Repo) AddDay(ctx context.Context, userID uuid.UUID, day WorkoutDay) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.day.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("program.id", day.WorkoutProgramID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_day (workout_program_id, name, day_of_week)
		SELECT wp.id, $3::varchar, $4::integer
		FROM workout_program wp
		WHERE wp.id = $1 AND wp.user_id = $2
		RETURNING id, created_at
	`,
		day.WorkoutProgramID,
		userID,
		day.Name,
		day.DayOfWeek,
	).Scan(&day.ID, &day.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutProgramNotFound
		}
		return nil, err
	}
	return &day, nil
}

// AddExercise logs an exercise for a workout day owned by the user.
func (r *Repo) AddExercise(ctx context.Context, userID uuid.UUID, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.exercise.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("day.id", exercise.WorkoutDayID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise (workout_day_id, name, set_count, reps, weight, notes, created_at)
		SELECT wd.id, $3::varchar, $4::integer, $5::integer, $6::numeric, NULLIF($7::text, ''), $8::timestamptz
		FROM workout_day wd
		JOIN workout_program wp ON wp.id = wd.workout_program_id
		WHERE wd.id = $1 AND wp.user_id = $2
		RETURNING id
	`,
		exercise.WorkoutDayID,
		userID,
		exercise.Name,
		exercise.SetCount,
		exercise.Reps,
		exercise.Weight,
		exercise.Notes,
		exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		// the day can be deleted between the select and the insert
		if errors.Is(err, pgx.ErrNoRows) || pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutDayNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *Repo) AddNutrition(ctx context.Context, entry NutritionLog) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", entry.UserID.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO nutrition_log (user_id, date, meal_type, calories, protein, carbohydrates, fat, notes)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id, created_at
	`,
		entry.UserID,
		entry.Date,
		entry.MealType,
		entry.Calories,
		entry.Protein,
		entry.Carbohydrates,
		entry.Fat,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// LoadExercises returns all exercises of the user logged at or after since,
// across all of the user's programs and days.
func (r *Repo) LoadExercises(ctx context.Context, userID uuid.UUID, since time.Time) (_ []aicoach.ExerciseEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.exercises.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(ctx, `
		SELECT e.name, e.set_count, e.reps, e.weight, e.created_at
		FROM exercise e
		JOIN workout_day wd ON wd.id = e.workout_day_id
		JOIN workout_program wp ON wp.id = wd.workout_program_id
		WHERE wp.user_id = $1 AND e.created_at >= $2
		ORDER BY e.created_at
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]aicoach.ExerciseEntry, 0)
	for rows.Next() {
		var e aicoach.ExerciseEntry
		if err := rows.Scan(&e.Name, &e.SetCount, &e.Reps, &e.Weight, &e.PerformedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}

// LoadNutrition returns the user's nutrition entries dated on or after sinceDate.
// The cutoff is sent as a plain calendar date, so the session time zone cannot shift it.
func (r *Repo) LoadNutrition(ctx context.Context, userID uuid.UUID, sinceDate time.Time) (_ []aicoach.NutritionEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.nutrition.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("since", sinceDate.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT calories, protein, carbohydrates, fat, date
		FROM nutrition_log
		WHERE user_id = $1 AND date >= $2::date
		ORDER BY date
	`, userID, sinceDate.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]aicoach.NutritionEntry, 0)
	for rows.Next() {
		var n aicoach.NutritionEntry
		if err := rows.Scan(&n.Calories, &n.Protein, &n.Carbohydrates, &n.Fat, &n.Date); err != nil {
			return nil, fmt.Errorf("scan nutrition: %w", err)
		}
		entries = append(entries, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}
