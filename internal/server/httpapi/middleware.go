package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/fairhub/internal/common"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext returns the authenticated user ID set by the auth
// middleware, or "" when the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// authMiddleware requires a valid bearer access token and attaches the
// resolved user ID to the request context.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AccessTokenHeaderName)
		if !strings.HasPrefix(header, "Bearer ") {
			h.writeError(r.Context(), w, common.ErrorUnauthorized)
			return
		}

		userID, err := h.users.ResolveToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			h.writeError(r.Context(), w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
