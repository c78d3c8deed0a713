package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/models"
	"github.com/adstradigital/adinvoice-sub000/internal/normalize"
	"github.com/adstradigital/adinvoice-sub000/internal/validation"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var clients []models.ClientCompany
	if err := h.db.WithContext(r.Context()).Where("tenant_id = ?", tenant).Order("name ASC").Find(&clients).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"clients": clients})
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var client models.ClientCompany
	if err := httpx.Decode(r, &client); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", client.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	client.ID = 0
	client.TenantID = tenant
	if err := h.db.WithContext(r.Context()).Create(&client).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	client, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	client, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	var in models.ClientCompany
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	in.ID = client.ID
	in.TenantID = tenant
	in.CreatedAt = client.CreatedAt
	if err := h.db.WithContext(r.Context()).Save(&in).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, in)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	res := h.db.WithContext(r.Context()).
		Where("id = ? AND tenant_id = ?", r.PathValue("id"), tenant).
		Delete(&models.ClientCompany{})
	if res.Error != nil {
		internalError(w, r, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Party returns the client in the normalized shape the proposal editor
// drops into a document's recipient slot.
func (h *ClientHandler) Party(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	client, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	rec := client.AsRecord()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"party":  normalize.Party(rec),
		"tax_id": normalize.TaxID(rec),
	})
}

func (h *ClientHandler) find(w http.ResponseWriter, r *http.Request, tenant string) (*models.ClientCompany, bool) {
	var client models.ClientCompany
	err := h.db.WithContext(r.Context()).
		Where("id = ? AND tenant_id = ?", r.PathValue("id"), tenant).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		} else {
			internalError(w, r, err)
		}
		return nil, false
	}
	return &client, true
}
