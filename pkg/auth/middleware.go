package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/ordersvc/pkg/httpx"
	"github.com/ghuser/ordersvc/pkg/logger"
)

const (
	sessionName          = "ordersvc_session"
	sessionOperatorIDKey = "operator_id"

	msgAuthRequired   = "Autenticação necessária."
	msgInvalidSession = "Sessão inválida."
)

// RequireAuth enforces a back-office session on every request it wraps.
// The operator ID from the session is injected into the request context;
// requests without one get a 401 StandardError.
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, r, http.StatusUnauthorized, "", msgAuthRequired)
				return
			}

			raw, ok := session.Values[sessionOperatorIDKey].(string)
			if !ok || raw == "" {
				log.WarnContext(r.Context(), "session missing operator_id")
				httpx.JSONError(w, r, http.StatusUnauthorized, "", msgAuthRequired)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				log.WarnContext(r.Context(), "invalid operator_id in session", "operator_id", raw, "error", err)
				httpx.JSONError(w, r, http.StatusUnauthorized, "", msgInvalidSession)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOperatorID(r.Context(), id)))
		})
	}
}

// StartSession stores operatorID in a fresh session and writes its cookie.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, operatorID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Values[sessionOperatorIDKey] = operatorID.String()
	return session.Save(r, w)
}

// EndSession expires the session cookie and removes the stored session.
func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
