// Package server wires handlers, services and middleware into the HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/export"
	"github.com/adstradigital/adinvoice-sub000/internal/handlers"
	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/services"
)

// New builds the API handler with all routes configured.
func New(db *gorm.DB, exporter export.Exporter) http.Handler {
	mux := http.NewServeMux()

	proposalSvc := services.NewProposalService(db)
	templateSvc := services.NewTemplateService(db)

	ph := handlers.NewProposalHandler(proposalSvc, templateSvc, exporter)
	ch := handlers.NewClientHandler(db)
	prh := handlers.NewProductHandler(db)
	coh := handlers.NewCompanyHandler(db)
	th := handlers.NewTemplateHandler(templateSvc)

	health := func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	mux.HandleFunc("GET /health", health)
	mux.HandleFunc("GET /healthz", health)

	// Proposals
	mux.HandleFunc("GET /api/proposals", ph.List)
	mux.HandleFunc("POST /api/proposals", ph.Create)
	mux.HandleFunc("GET /api/proposals/{id}", ph.Get)
	mux.HandleFunc("PUT /api/proposals/{id}", ph.Update)
	mux.HandleFunc("DELETE /api/proposals/{id}", ph.Delete)
	mux.HandleFunc("POST /api/proposals/{id}/status", ph.Status)
	mux.HandleFunc("GET /api/proposals/{id}/preview", ph.Preview)
	mux.HandleFunc("GET /api/proposals/{id}/pdf", ph.PDF)

	// Client companies
	mux.HandleFunc("GET /api/clients", ch.List)
	mux.HandleFunc("POST /api/clients", ch.Create)
	mux.HandleFunc("GET /api/clients/{id}", ch.Get)
	mux.HandleFunc("PUT /api/clients/{id}", ch.Update)
	mux.HandleFunc("DELETE /api/clients/{id}", ch.Delete)
	mux.HandleFunc("GET /api/clients/{id}/party", ch.Party)

	// Product/service catalog
	mux.HandleFunc("GET /api/products", prh.List)
	mux.HandleFunc("POST /api/products", prh.Create)
	mux.HandleFunc("GET /api/products/{id}", prh.Get)
	mux.HandleFunc("PUT /api/products/{id}", prh.Update)
	mux.HandleFunc("DELETE /api/products/{id}", prh.Delete)
	mux.HandleFunc("GET /api/products/{id}/item", prh.Item)

	// Company profile
	mux.HandleFunc("GET /api/company", coh.Get)
	mux.HandleFunc("PUT /api/company", coh.Update)
	mux.HandleFunc("GET /api/company/issuer", coh.Issuer)

	// Templates
	mux.HandleFunc("GET /api/templates", th.List)
	mux.HandleFunc("POST /api/templates", th.Create)
	mux.HandleFunc("GET /api/templates/{id}", th.Get)

	return withLogging(withRecover(mux))
}

// withLogging logs every request with its duration and status.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// withRecover converts panics into 500s instead of killing the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
