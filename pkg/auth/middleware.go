package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/khesal1978-cpu/siku/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// Middleware validates the bearer token and stores the token's subject in the
// request context. Path ownership is enforced by RequireOwner, which runs
// after routing when the path parameters are bound.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := verifier.VerifyToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner rejects requests whose userId path parameter does not match
// the authenticated subject. It wraps the handler rather than the router so
// chi has already resolved the route parameters when the check runs. With no
// subject in the context (auth disabled) it is a passthrough.
func RequireOwner(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claimID, ok := r.Context().Value(UserIDKey).(string); ok {
			if userID := chi.URLParam(r, "userId"); userID != "" && userID != claimID {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
		}
		next(w, r)
	}
}
