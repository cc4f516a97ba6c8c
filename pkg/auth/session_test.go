package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/ordersvc/pkg/logger"
)

func TestNewSessionStore_DefaultMaxAge(t *testing.T) {
	s := NewSessionStore(nil, SessionOptions{AuthKey: []byte("k")})
	if got := s.options.MaxAge; got != int(defaultMaxAge/time.Second) {
		t.Errorf("MaxAge = %d", got)
	}
	if !s.options.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

// Integration test, skipped unless REDIS_URL is set.
func TestRedisStoreIntegration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close() //nolint:errcheck

	store := NewSessionStore(client, SessionOptions{
		AuthKey:       []byte("test-auth-key-must-be-32-bytes!!"),
		EncryptionKey: []byte("test-enc-key-must-be-32-bytes!!!"),
		MaxAge:        time.Minute,
	})
	operatorID := uuid.New()

	w := httptest.NewRecorder()
	if err := StartSession(w, httptest.NewRequest(http.MethodPost, "/login", http.NoBody), store, operatorID); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/pedidos", http.NoBody)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	var got uuid.UUID
	RequireAuth(store, logger.Discard())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = OperatorIDFromCtx(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), r)
	if got != operatorID {
		t.Fatalf("expected operator %v, got %v", operatorID, got)
	}

	session, _ := store.Get(r, sessionName)
	if err := EndSession(httptest.NewRecorder(), r, store); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if n, _ := client.Exists(context.Background(), sessionKeyPrefix+session.ID).Result(); n != 0 {
		t.Error("session key should be deleted after EndSession")
	}
}
