package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitlog/internal/aicoach"
	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/cache"
	"github.com/2beens/fitlog/internal/completion"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/logbook"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient    *redis.Client
	sessionChecker *auth.SessionChecker
	aiCoach        *aicoach.Service
	reportsRepo    *aicoach.ReportsRepo
	logbookRepo    *logbook.Repo

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	DBPassword              string
	OpenAIAPIKey            string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("ensure db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	coachCfg := params.Config.AICoach
	completionClient := completion.NewOpenAIClient(completion.OpenAIClientParams{
		APIKey:     params.OpenAIAPIKey,
		Model:      coachCfg.OpenAIModel,
		BaseURL:    coachCfg.OpenAIBaseURL,
		MaxTokens:  coachCfg.OpenAIMaxTokens,
		Timeout:    time.Duration(coachCfg.CompletionTimeoutSeconds) * time.Second,
		HTTPClient: tracedHttpClient,
	})

	var responseCache cache.Cache
	switch coachCfg.CacheBackend {
	case config.CacheBackendMemory:
		responseCache = cache.NewMemoryCache(coachCfg.MemoryCacheSizeMB * 1024 * 1024)
	default:
		responseCache = cache.NewRedisCache(rdb)
	}
	log.Debugf("aicoach cache: backend [%s], duration [%d min], demo mode [%t]",
		coachCfg.CacheBackend, coachCfg.CacheMinutes(), coachCfg.UseDemoMode)

	logbookRepo := logbook.NewRepo(dbPool)
	reportsRepo := aicoach.NewReportsRepo(dbPool)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		sessionChecker: auth.NewSessionChecker(rdb),
		logbookRepo:    logbookRepo,
		reportsRepo:    reportsRepo,
		aiCoach: aicoach.NewService(
			logbookRepo,
			completionClient,
			responseCache,
			reportsRepo,
			metricsManager,
			aicoach.Settings{
				UseDemoMode:   coachCfg.UseDemoMode,
				CacheDuration: time.Duration(coachCfg.CacheMinutes()) * time.Minute,
			},
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitlog-router"))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("healthz")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	analyzeRateLimit := middleware.RateLimit(
		reqRateLimiter,
		middleware.PerUserKey("analyze"),
		s.config.AnalyzeRateLimitPerMin,
		s.metricsManager,
	)

	coachHandler := aicoach.NewHandler(s.aiCoach, s.reportsRepo)
	r.Handle("/aicoach/analyze", analyzeRateLimit(http.HandlerFunc(coachHandler.HandleAnalyze))).Methods("POST", "OPTIONS").Name("aicoach-analyze")
	r.HandleFunc("/aicoach/reports/page/{page}/size/{size}", coachHandler.HandleListReports).Methods("GET", "OPTIONS").Name("aicoach-list-reports")
	r.HandleFunc("/aicoach/reports/{id}", coachHandler.HandleGetReport).Methods("GET", "OPTIONS").Name("aicoach-get-report")

	logbookHandler := logbook.NewHandler(s.logbookRepo, s.metricsManager)
	r.HandleFunc("/logbook/programs", logbookHandler.HandleAddProgram).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/logbook/programs/{programId}/days", logbookHandler.HandleAddDay).Methods("POST", "OPTIONS").Name("new-workout-day")
	r.HandleFunc("/logbook/workouts/days/{dayId}/exercises", logbookHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/logbook/nutrition", logbookHandler.HandleAddNutrition).Methods("POST", "OPTIONS").Name("new-nutrition-log")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// completions can take a while
		WriteTimeout: 2 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, in-flight analyses still need redis and the db
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
