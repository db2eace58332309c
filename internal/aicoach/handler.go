package aicoach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=aicoach_test

type analyzer interface {
	Analyze(ctx context.Context, userID uuid.UUID, req AnalysisRequest) (*AnalysisResponse, error)
}

type reportsRepo interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*Report, error)
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]Report, int, error)
}

type ListReportsResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}

type Handler struct {
	analyzer analyzer
	reports  reportsRepo
}

func NewHandler(analyzer analyzer, reports reportsRepo) *Handler {
	return &Handler{
		analyzer: analyzer,
		reports:  reports,
	}
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.analyze")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("analyze, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if validationErrs := ValidateAnalysisRequest(req); len(validationErrs) > 0 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", validationErrs...)
		return
	}

	resp, err := handler.analyzer.Analyze(ctx, userID, req)
	if err != nil {
		if ctxErr := r.Context().Err(); ctxErr != nil {
			// the client is most likely gone, the status is for logs and proxies
			log.Debugf("analyze for user [%s] aborted: %s", userID, ctxErr)
			http.Error(w, "request canceled", http.StatusServiceUnavailable)
			return
		}
		log.Errorf("ai coach analysis failed for user [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "error occurred while analyzing data")
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal ai coach analysis: %s", err)
		http.Error(w, "failed to marshal analysis", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.reports.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle get reports page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle get reports page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	reports, total, err := handler.reports.List(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list ai coach reports for user [%s]: %s", userID, err)
		http.Error(w, "failed to get reports", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListReportsResponse{
		Reports: reports,
		Total:   total,
	})
	if err != nil {
		log.Errorf("failed to marshal reports: %s", err)
		http.Error(w, "failed to marshal reports", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.reports.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid report id", http.StatusBadRequest)
		return
	}

	report, err := handler.reports.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get ai coach report [%s]: %s", id, err)
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal report: %s", err)
		http.Error(w, "failed to marshal report", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}
