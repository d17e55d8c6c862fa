package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// MatchFromContext returns the match id stored by RequireToken.
func MatchFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}

// RequireToken rejects requests without a valid token for the requested
// match. The token is read from the Authorization bearer header or the token
// query parameter, since browsers cannot set headers on websocket upgrades.
// When the service has no secret requests pass through untouched.
func RequireToken(s *Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		matchID, err := s.Verify(token)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if requested := r.URL.Query().Get("matchId"); requested != "" && requested != matchID {
			http.Error(w, "token does not grant this match", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, matchID)))
	})
}
