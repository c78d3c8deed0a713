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

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	q := h.db.WithContext(r.Context()).Where("tenant_id = ?", tenant)
	if kind := r.URL.Query().Get("type"); kind != "" {
		q = q.Where("type = ?", kind)
	}
	var products []models.ProductService
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var product models.ProductService
	if err := httpx.Decode(r, &product); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", product.Name, v)
	validation.NonNegativeFloat("unit_price", product.UnitPrice, v)
	if product.Type != "" {
		validation.OneOf("type", product.Type, []string{"product", "service"}, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	product.ID = 0
	product.TenantID = tenant
	if err := h.db.WithContext(r.Context()).Create(&product).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	product, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	product, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	var in models.ProductService
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	in.ID = product.ID
	in.TenantID = tenant
	in.CreatedAt = product.CreatedAt
	if err := h.db.WithContext(r.Context()).Save(&in).Error; err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, in)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	res := h.db.WithContext(r.Context()).
		Where("id = ? AND tenant_id = ?", r.PathValue("id"), tenant).
		Delete(&models.ProductService{})
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

// Item returns the catalog entry as a ready-made document line with the
// default quantity and tax rate applied.
func (h *ProductHandler) Item(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	product, ok := h.find(w, r, tenant)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"item": normalize.CatalogItem(product.AsRecord())})
}

func (h *ProductHandler) find(w http.ResponseWriter, r *http.Request, tenant string) (*models.ProductService, bool) {
	var product models.ProductService
	err := h.db.WithContext(r.Context()).
		Where("id = ? AND tenant_id = ?", r.PathValue("id"), tenant).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		} else {
			internalError(w, r, err)
		}
		return nil, false
	}
	return &product, true
}
