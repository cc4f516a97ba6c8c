package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/httpx"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{"not found", domainerr.NotFound(7), http.StatusNotFound, TitleNotFound},
		{"database", domainerr.Database("Erro ao excluir", errors.New("fk")), http.StatusBadRequest, TitleDatabase},
		{"business rule", domainerr.BusinessRule("Pedido deve conter pelo menos um item."), http.StatusBadRequest, TitleBusinessRule},
		{"insufficient stock", domainerr.InsufficientStock(), http.StatusBadRequest, TitleInsufficientStock},
		{"notification", domainerr.Notification(errors.New("smtp down")), http.StatusInternalServerError, TitleNotification},
		{"notification caused by not found", fmt.Errorf("process order: %w", domainerr.Notification(domainerr.NotFound(3))), http.StatusInternalServerError, TitleNotification},
		{"wrapped not found", fmt.Errorf("get order: %w", domainerr.NotFound(1)), http.StatusNotFound, TitleNotFound},
		{"bare kind", domainerr.ErrBusinessRule, http.StatusBadRequest, TitleBusinessRule},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/1", http.NoBody), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body httpx.StandardError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body.Error != tt.wantTitle {
				t.Errorf("error title: got %q, want %q", body.Error, tt.wantTitle)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("status field: got %d", body.Status)
			}
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/api/clientes/42", http.NoBody), domainerr.NotFound(42))

	var body httpx.StandardError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Message != "Recurso não encontrado. Id 42" {
		t.Errorf("message: got %q", body.Message)
	}
	if body.Path != "/api/clientes/42" {
		t.Errorf("path: got %q", body.Path)
	}
	if body.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_HidesWrappedCause(t *testing.T) {
	err := fmt.Errorf("save customer: %w",
		domainerr.Database("Erro ao excluir cliente.", errors.New(`pq: violates foreign key constraint "orders_customer_id_fkey"`)))

	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodDelete, "/api/clientes/1", http.NoBody), err)

	var body httpx.StandardError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Erro ao excluir cliente." {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestWriteError_ProductionHidesUnclassified(t *testing.T) {
	SetProduction(true)
	t.Cleanup(func() { SetProduction(false) })

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos", http.NoBody)

	w := httptest.NewRecorder()
	WriteError(w, req, errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	var body httpx.StandardError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Internal Server Error" {
		t.Errorf("unclassified message leaked: %q", body.Message)
	}

	w = httptest.NewRecorder()
	WriteError(w, req, domainerr.Notification(errors.New("ses throttled")))
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Erro ao enviar notificação para o cliente." {
		t.Errorf("domain message should survive production mode, got %q", body.Message)
	}
}
