package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionChecker interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

const AuthTokenHeader = "X-FITLOG-TOKEN"

type AuthMiddlewareHandler struct {
	sessionChecker sessionChecker
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(sessionChecker sessionChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessionChecker: sessionChecker,
		allowedPaths: map[string]bool{
			"/healthz": true,
		},
	}
}

// AuthCheck resolves the session token into the user id, and puts it into
// the request context for the handlers.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.sessionChecker.UserID(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-session-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
