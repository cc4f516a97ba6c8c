package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/ordersvc/pkg/httpx"
	"github.com/ghuser/ordersvc/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// requestWithValue builds a request whose session cookie carries value under
// the operator key. A nil value leaves the key unset.
func requestWithValue(t *testing.T, store sessions.Store, value any) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/pedidos", http.NoBody)

	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if value != nil {
		session.Values[sessionOperatorIDKey] = value
	}
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/pedidos", http.NoBody)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	operatorID := uuid.New()

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = OperatorIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	RequireAuth(store, logger.Discard())(next).ServeHTTP(w, requestWithValue(t, store, operatorID.String()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != operatorID {
		t.Fatalf("expected operator %v in context, got %v", operatorID, captured)
	}
}

func TestRequireAuth_Rejects(t *testing.T) {
	store := newTestStore()
	tests := []struct {
		name    string
		req     func(t *testing.T) *http.Request
		wantMsg string
	}{
		{"missing cookie", func(*testing.T) *http.Request {
			return httptest.NewRequest(http.MethodPost, "/api/pedidos", http.NoBody)
		}, msgAuthRequired},
		{"missing operator_id", func(t *testing.T) *http.Request { return requestWithValue(t, store, nil) }, msgAuthRequired},
		{"invalid operator_id", func(t *testing.T) *http.Request { return requestWithValue(t, store, "not-a-uuid") }, msgInvalidSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next handler should not be called")
			})
			w := httptest.NewRecorder()
			RequireAuth(store, logger.Discard())(next).ServeHTTP(w, tt.req(t))

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			var body httpx.StandardError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Message != tt.wantMsg {
				t.Errorf("message: got %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestStartSession_EndSession(t *testing.T) {
	store := newTestStore()
	operatorID := uuid.New()

	w := httptest.NewRecorder()
	if err := StartSession(w, httptest.NewRequest(http.MethodPost, "/login", http.NoBody), store, operatorID); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	r := httptest.NewRequest(http.MethodGet, "/api/pedidos", http.NoBody)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	ok := false
	RequireAuth(store, logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { ok = true })).
		ServeHTTP(httptest.NewRecorder(), r)
	if !ok {
		t.Fatal("session from StartSession was rejected")
	}

	w = httptest.NewRecorder()
	if err := EndSession(w, r, store); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	expired := w.Result().Cookies()
	if len(expired) == 0 || expired[0].MaxAge >= 0 {
		t.Errorf("expected an expiring cookie, got %+v", expired)
	}
}
