package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidID is returned by PathID for missing, non-numeric or non-positive ids.
var ErrInvalidID = errors.New("invalid id")

const msgInvalidID = "Identificador inválido."

// PathID parses the chi URL parameter name as a positive int64.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// RequirePathID is PathID that writes a 400 StandardError on failure.
func RequirePathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := PathID(r, name)
	if err != nil {
		JSONError(w, r, http.StatusBadRequest, "", msgInvalidID)
		return 0, false
	}
	return id, true
}

// Created writes v with 201 and a Location header pointing at location.
func Created(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
