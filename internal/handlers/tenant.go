package handlers

import (
	"net/http"

	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
)

// TenantHeader carries the tenant id on every API request. There is no
// ambient tenant state; handlers thread the id explicitly into services.
const TenantHeader = "X-Tenant-ID"

// tenantID extracts the tenant id or writes a 400 and returns "".
func tenantID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(TenantHeader)
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_tenant", nil)
	}
	return id
}
