package middleware

import (
	"log/slog"
	"net/http"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/domain"
)

// SessionCookieName is the cookie carrying the signed admin session credential.
const SessionCookieName = "admin_token"

// RequireAdmin returns a wrapper that verifies the admin session cookie.
// Missing, invalid, or forged credentials, and credentials whose role claim
// is not "admin", get a 401 without calling next. The gate runs before any
// database access and propagates nothing downstream: every admin request is
// equally privileged.
func RequireAdmin(verifier domain.SessionVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			role, err := verifier.Verify(cookie.Value)
			if err != nil {
				logger.DebugContext(r.Context(), "session verification failed", "err", err)
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if role != "admin" {
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next(w, r)
		}
	}
}
