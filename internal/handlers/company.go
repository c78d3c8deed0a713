package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/models"
	"github.com/adstradigital/adinvoice-sub000/internal/normalize"
)

type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

// Get returns the tenant's company profile. Missing profiles come back as an
// empty object so a fresh tenant can render a settings form.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var profile models.CompanyProfile
	err := h.db.WithContext(r.Context()).Where("tenant_id = ?", tenant).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(w, r, err)
		return
	}
	profile.TenantID = tenant
	httpx.JSON(w, http.StatusOK, profile)
}

// Update upserts the tenant's company profile.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var existing models.CompanyProfile
	err := h.db.WithContext(r.Context()).Where("tenant_id = ?", tenant).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(w, r, err)
		return
	}

	var in models.CompanyProfile
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	in.ID = existing.ID
	in.TenantID = tenant
	in.CreatedAt = existing.CreatedAt
	if err := h.db.WithContext(r.Context()).Save(&in).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, in)
}

// Issuer returns the profile normalized into the document header shape,
// including the placeholder fallbacks when fields are missing.
func (h *CompanyHandler) Issuer(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var profile models.CompanyProfile
	err := h.db.WithContext(r.Context()).Where("tenant_id = ?", tenant).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(w, r, err)
		return
	}
	rec := profile.AsRecord()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"issuer": normalize.Issuer(rec),
		"tax_id": normalize.TaxID(rec),
	})
}
