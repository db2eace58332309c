package aicoach

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrReportNotFound = errors.New("report not found")

// ReportsRepo stores analysis reports. Reports are written once and never
// updated.
type ReportsRepo struct {
	db *pgxpool.Pool
}

func NewReportsRepo(db *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{
		db: db,
	}
}

func (r *ReportsRepo) Save(ctx context.Context, report Report) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aicoach.reports.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("report.id", report.ID.String()))
	span.SetAttributes(attribute.String("user.id", report.UserID.String()))

	_, err = r.db.Exec(ctx, `
		INSERT INTO aicoach_report (
			id, user_id, analysis_date, training_summary, nutrition_summary,
			recommendation_text, metrics_json, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		report.ID,
		report.UserID,
		report.AnalysisDate,
		report.TrainingSummary,
		report.NutritionSummary,
		report.RecommendationText,
		string(report.MetricsJSON),
		report.CreatedAt,
	)
	return err
}

func (r *ReportsRepo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aicoach.reports.get")
	defer func() {
		if errors.Is(err, ErrReportNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("report.id", id.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, analysis_date, training_summary, nutrition_summary,
			recommendation_text, metrics_json, created_at
		FROM aicoach_report
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return nil, err
	}

	reports, err := rows2reports(rows)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrReportNotFound
	}
	return &reports[0], nil
}

// List returns one page of the user's reports, newest first, and the total
// number of reports the user has.
func (r *ReportsRepo) List(ctx context.Context, userID uuid.UUID, page, size int) (_ []Report, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aicoach.reports.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, userID)
	if err != nil {
		return nil, -1, err
	}

	limit, offset := pageBounds(countAll, page, size)

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	if limit == 0 {
		return []Report{}, countAll, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, analysis_date, training_summary, nutrition_summary,
			recommendation_text, metrics_json, created_at
		FROM aicoach_report
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
		OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, -1, err
	}

	reports, err := rows2reports(rows)
	if err != nil {
		return nil, -1, err
	}
	return reports, countAll, nil
}

func (r *ReportsRepo) Count(ctx context.Context, userID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aicoach.reports.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM aicoach_report WHERE user_id = $1
	`, userID).Scan(&count); err != nil {
		return -1, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}

func rows2reports(rows pgx.Rows) ([]Report, error) {
	defer rows.Close()

	reports := make([]Report, 0)
	for rows.Next() {
		var (
			report      Report
			metricsJson []byte
		)
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.AnalysisDate,
			&report.TrainingSummary,
			&report.NutritionSummary,
			&report.RecommendationText,
			&metricsJson,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		report.MetricsJSON = metricsJson
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// pageBounds maps a 1-based page onto limit/offset. A page past the last
// report gets a zero limit, the last page may be shorter than size.
func pageBounds(countAll, page, size int) (limit, offset int) {
	offset = (page - 1) * size
	if offset >= countAll {
		return 0, offset
	}
	return min(size, countAll-offset), offset
}
