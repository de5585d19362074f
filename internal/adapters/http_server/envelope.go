package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"coral_cove/internal/domain"
)

// Envelope wraps every /api response.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func ok[T any](data T, msg string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeFail(w http.ResponseWriter, status int, msg string, fields map[string][]string) {
	writeJSON(w, status, Envelope[any]{Success: false, Data: nil, Message: msg, Errors: fields})
}

// writeError maps domain errors to statuses. Upstream and unexpected errors
// get the caller's generic message; details only go to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFail(w, http.StatusBadRequest, verr.Error(), verr.Fields())
	case errors.Is(err, domain.ErrValidation):
		writeFail(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrRoomNotFound):
		writeFail(w, http.StatusNotFound, "Room not found", nil)
	case errors.Is(err, domain.ErrNotFound):
		writeFail(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, domain.ErrUnavailable):
		writeFail(w, http.StatusConflict, "Room is not available for the selected dates", nil)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg(generic)
		writeFail(w, http.StatusInternalServerError, generic, nil)
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached serves static catalog reads with a weak ETag.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeFail(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cached body")
	}
}
