package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hemis/m/internal/auth"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ctxClaims).(*auth.Claims)
	return claims
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(header[len("Bearer "):])
		claims, err := h.tokens.Verify(tokenString)
		if err != nil {
			h.logger.Debug("token rejected", zap.Error(err))
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// allow writes 401/403 and returns false unless the caller may perform op.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, op auth.Operation) bool {
	claims := claimsFrom(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "missing role")
		return false
	}
	if err := h.policy.Check(op, claims.Role); err != nil {
		h.logger.Info("access denied",
			zap.String("username", claims.Username()),
			zap.String("role", string(claims.Role)),
			zap.String("operation", string(op)))
		respondError(w, http.StatusForbidden, "insufficient permissions")
		return false
	}
	return true
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			h.logger.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		}()
		next.ServeHTTP(ww, r)
	})
}
