package aicoach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/cache"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=aicoach_test

type windowLoader interface {
	LoadExercises(ctx context.Context, userID uuid.UUID, since time.Time) ([]ExerciseEntry, error)
	LoadNutrition(ctx context.Context, userID uuid.UUID, sinceDate time.Time) ([]NutritionEntry, error)
}

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type responseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type reportSaver interface {
	Save(ctx context.Context, report Report) error
}

type Settings struct {
	UseDemoMode bool
	// zero or less disables caching
	CacheDuration time.Duration
}

type Service struct {
	loader         windowLoader
	completer      completer
	cache          responseCache
	reports        reportSaver
	metricsManager *metrics.Manager
	settings       Settings

	// collapses concurrent recomputations of the same cache key
	inFlight singleflight.Group

	// injectable for tests
	NowFunc   func() time.Time
	NewIDFunc func() uuid.UUID
}

func NewService(
	loader windowLoader,
	completer completer,
	cache responseCache,
	reports reportSaver,
	metricsManager *metrics.Manager,
	settings Settings,
) *Service {
	return &Service{
		loader:         loader,
		completer:      completer,
		cache:          cache,
		reports:        reports,
		metricsManager: metricsManager,
		settings:       settings,
		NowFunc:        time.Now,
		NewIDFunc:      uuid.New,
	}
}

// CacheKey identifies an analysis by the user and the body stats/goal/frequency.
// Body fat and the logged data are not part of the key, so a cached analysis
// can be stale until it expires.
func CacheKey(userID uuid.UUID, req AnalysisRequest) string {
	return fmt.Sprintf(
		"aicoach::%s:%s:%s:%s:%d",
		userID, formatNumber(req.Height), formatNumber(req.Weight), req.Goal, req.WeeklyWorkoutFrequency,
	)
}

func (s *Service) cachingEnabled() bool {
	return s.cache != nil && s.settings.CacheDuration > 0
}

// Analyze loads the last 30 days of the user's training and nutrition, and
// turns them into a recommendation. Completion failures fall back to demo
// synthesis, while load failures and cancellation are returned as errors.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, req AnalysisRequest) (_ *AnalysisResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.aicoach.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("goal", req.Goal.String()))

	defer func(begin time.Time) {
		s.metricsManager.HistAnalysisDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	if !s.cachingEnabled() {
		resp, _, err := s.analyze(ctx, userID, req)
		return resp, err
	}

	cacheKey := CacheKey(userID, req)
	if cached := s.cachedResponse(ctx, cacheKey); cached != nil {
		log.Debugf("ai coach analysis served from cache, user [%s]", userID)
		span.SetAttributes(attribute.Bool("from-cache", true))
		s.metricsManager.CounterAnalyses.WithLabelValues(metrics.SourceCache).Inc()
		return cached, nil
	}

	// the shared call runs with the leader's context, each caller still
	// stops waiting on its own one
	resCh := s.inFlight.DoChan(cacheKey, func() (any, error) {
		resp, persisted, err := s.analyze(ctx, userID, req)
		if err != nil {
			return nil, err
		}
		if persisted {
			s.storeInCache(ctx, cacheKey, resp)
		}
		return resp, nil
	})

	var res singleflight.Result
	select {
	case res = <-resCh:
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for analysis: %w", ctx.Err())
	}

	if res.Err != nil {
		// the leading call was canceled by its own caller, not by us
		if res.Shared && isContextErr(res.Err) && ctx.Err() == nil {
			resp, _, err := s.analyze(ctx, userID, req)
			return resp, err
		}
		return nil, res.Err
	}

	return res.Val.(*AnalysisResponse), nil
}

// analyze runs the whole pipeline and stores the report. The returned bool
// tells whether the report was persisted.
func (s *Service) analyze(ctx context.Context, userID uuid.UUID, req AnalysisRequest) (*AnalysisResponse, bool, error) {
	now := s.NowFunc().UTC()
	since := now.Add(-AnalysisWindow)
	sinceDate := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)

	exercises, err := s.loader.LoadExercises(ctx, userID, since)
	if err != nil {
		return nil, false, fmt.Errorf("load exercises: %w", err)
	}
	nutrition, err := s.loader.LoadNutrition(ctx, userID, sinceDate)
	if err != nil {
		return nil, false, fmt.Errorf("load nutrition: %w", err)
	}

	m := CalculateMetrics(exercises, nutrition, since)
	trainingSummary := BuildTrainingSummary(m)
	nutritionSummary := BuildNutritionSummary(m)

	resp, source, err := s.recommend(ctx, userID, req, m, trainingSummary, nutritionSummary)
	if err != nil {
		return nil, false, err
	}
	s.metricsManager.CounterAnalyses.WithLabelValues(source).Inc()

	metricsJson, err := json.Marshal(m)
	if err != nil {
		return nil, false, fmt.Errorf("marshal metrics: %w", err)
	}

	report := Report{
		ID:                 s.NewIDFunc(),
		UserID:             userID,
		AnalysisDate:       now,
		TrainingSummary:    trainingSummary,
		NutritionSummary:   nutritionSummary,
		RecommendationText: resp.RawAiRecommendation,
		MetricsJSON:        metricsJson,
		CreatedAt:          now,
	}
	if err := s.reports.Save(ctx, report); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, fmt.Errorf("save report: %w", ctxErr)
		}
		// the analysis itself is fine, the user still gets it
		log.Errorf("failed to save ai coach report for user [%s]: %s", userID, err)
		s.metricsManager.CounterReportPersistFailures.Inc()
		return resp, false, nil
	}

	log.Debugf("ai coach report [%s] saved for user [%s], source: %s", report.ID, userID, source)
	return resp, true, nil
}

func (s *Service) recommend(
	ctx context.Context,
	userID uuid.UUID,
	req AnalysisRequest,
	m CalculatedMetrics,
	trainingSummary, nutritionSummary string,
) (*AnalysisResponse, string, error) {
	if s.settings.UseDemoMode {
		log.Debugf("ai coach demo mode on, skipping completion call, user [%s]", userID)
		return DemoRecommendation(req, m), metrics.SourceDemo, nil
	}

	completion, err := s.completer.Complete(ctx, BuildPrompt(req, trainingSummary, nutritionSummary))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", fmt.Errorf("completion: %w", ctxErr)
		}
		log.Errorf("completion call failed, falling back to demo synthesis, user [%s]: %s", userID, err)
		s.metricsManager.CounterCompletionFailures.Inc()
		return DemoRecommendation(req, m), metrics.SourceFallback, nil
	}

	return ParseCompletion(completion, m), metrics.SourceCompletion, nil
}

func (s *Service) cachedResponse(ctx context.Context, key string) *AnalysisResponse {
	cachedBytes, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Errorf("failed to get ai coach analysis from cache [%s]: %s", key, err)
		}
		return nil
	}

	resp := &AnalysisResponse{}
	if err := json.Unmarshal(cachedBytes, resp); err != nil {
		log.Errorf("failed to unmarshal cached ai coach analysis [%s]: %s", key, err)
		return nil
	}
	return resp
}

func (s *Service) storeInCache(ctx context.Context, key string, resp *AnalysisResponse) {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal ai coach analysis for cache [%s]: %s", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, respBytes, s.settings.CacheDuration); err != nil {
		log.Errorf("failed to cache ai coach analysis [%s]: %s", key, err)
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
