package handlers

import (
	"net/http"
	"strconv"

	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/adstradigital/adinvoice-sub000/internal/services"
	"github.com/adstradigital/adinvoice-sub000/internal/validation"
)

type TemplateHandler struct {
	templates *services.TemplateService
}

func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List returns every template style visible to the tenant.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	styles, err := h.templates.List(r.Context(), tenant)
	if err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"templates": styles})
}

// Get returns one resolved style. Unknown ids fall back to the default, so
// this never 404s.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.templates.Resolve(r.Context(), tenant, id))
}

// Create stores a tenant-defined template style.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var style proposal.TemplateStyle
	if err := httpx.Decode(r, &style); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", style.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	rec, err := h.templates.Create(r.Context(), tenant, style)
	if err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, rec)
}
