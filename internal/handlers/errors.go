package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/adstradigital/adinvoice-sub000/internal/services"
)

// writeDomainError maps engine and service errors onto HTTP statuses.
// Structural errors are malformed input (400), validation errors are
// well-formed but unacceptable documents (422).
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *proposal.StructuralError
	if errors.As(err, &serr) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_record", map[string]string{
			"field":  serr.Field,
			"reason": serr.Reason,
		})
		return
	}
	var verr *proposal.ValidationError
	if errors.As(err, &verr) {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", verr.Violations)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	internalError(w, r, err)
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}
