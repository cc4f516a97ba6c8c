// Package errhttp maps domain errors to HTTP responses.
//
// Every response body is an httpx.StandardError. The status and title come from
// the error's domainerr kind; the message is the domain message, never the text
// of a wrapped driver error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/httpx"
	"github.com/ghuser/ordersvc/pkg/telemetry"
)

const (
	TitleNotFound          = "Recurso não encontrado"
	TitleDatabase          = "Erro de banco de dados"
	TitleBusinessRule      = "Violação de regra de negócio"
	TitleInsufficientStock = "Estoque insuficiente"
	TitleNotification      = "Erro ao enviar notificação"
)

var production atomic.Bool

// SetProduction hides the message of unclassified 5xx errors when enabled.
func SetProduction(enabled bool) {
	production.Store(enabled)
}

// WriteError maps err to a status code and writes a StandardError response.
// Wrapped errors are matched by kind.
// Server errors are reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, title := mapError(err)
	if status >= http.StatusInternalServerError {
		telemetry.CaptureHTTPError(r, err, status, title)
	}
	httpx.JSONError(w, r, status, title, message(err, status))
}

// mapError uses the outermost kind, so a notification error wrapping a
// gateway's not-found is still a notification error.
func mapError(err error) (int, string) {
	switch domainerr.KindOf(err) {
	case domainerr.ErrResourceNotFound:
		return http.StatusNotFound, TitleNotFound
	case domainerr.ErrDatabase:
		return http.StatusBadRequest, TitleDatabase
	case domainerr.ErrBusinessRule:
		return http.StatusBadRequest, TitleBusinessRule
	case domainerr.ErrInsufficientStock:
		return http.StatusBadRequest, TitleInsufficientStock
	case domainerr.ErrNotification:
		return http.StatusInternalServerError, TitleNotification
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func message(err error, status int) string {
	var de *domainerr.Error
	if errors.As(err, &de) {
		return de.Error()
	}
	return httpx.SafeError(err, status, production.Load())
}
