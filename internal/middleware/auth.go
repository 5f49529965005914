package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

const AuthTokenHeader = "X-HEALTH-TOKEN"

type tokenChecker interface {
	IsAuthorized(ctx context.Context, token string) (bool, error)
}

type AuthMiddlewareHandler struct {
	tokenChecker tokenChecker
	publicPaths  map[string]bool
}

func NewAuthMiddlewareHandler(tokenChecker tokenChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenChecker: tokenChecker,
		publicPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/version": true,
		},
	}
}

// requestToken reads the API token from the health token header or, for
// MCP clients, from a bearer Authorization header.
func requestToken(r *http.Request) string {
	if token := r.Header.Get(AuthTokenHeader); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, span trace.Span, reason string) {
	log.WithField("path", r.URL.Path).Tracef("unauthorized: %s", reason)
	span.SetStatus(codes.Error, reason)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			// CORS preflight, browsers never send the token with it
			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "preflight")
				return
			}

			if h.publicPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "public")
				next.ServeHTTP(w, r)
				return
			}

			token := requestToken(r)
			if token == "" {
				unauthorized(w, r, span, "missing token")
				return
			}

			authorized, err := h.tokenChecker.IsAuthorized(ctx, token)
			if err != nil {
				log.Errorf("check api token, %s: %s", r.URL.Path, err)
				span.RecordError(err)
				unauthorized(w, r, span, "token check failed")
				return
			}
			if !authorized {
				unauthorized(w, r, span, "invalid token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
