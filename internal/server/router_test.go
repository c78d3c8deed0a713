package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/db"
	"github.com/adstradigital/adinvoice-sub000/internal/export"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dbi, err := gorm.Open(sqlite.Open("file:api_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(dbi); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(dbi, export.NewPDFExporter())
}

func doJSON(t *testing.T, h http.Handler, method, path, tenant string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
}

func proposalPayload() map[string]any {
	return map[string]any{
		"proposal_number": "PRO-0007",
		"date":            "2026-08-15",
		"client_name":     "Acme Corp",
		"client_email":    "accounts@acme.example",
		"client_address": map[string]any{
			"line1":   "12 Industrial Way",
			"city":    "Springfield",
			"pincode": "90210",
		},
		"company_name":  "Adstra Digital",
		"company_email": "billing@adstra.example",
		"company_phone": "555-0100",
		"template":      2,
		"notes":         "Valid for 30 days.",
		"items": []any{
			map[string]any{"name": "Ad campaign setup", "quantity": 1, "price": 500, "gst_rate": 10, "type": "service"},
			map[string]any{"name": "Banner pack", "description": "10 display banners", "quantity": 2, "price": "75", "gst": 10},
		},
	}
}

func TestProposalLifecycle(t *testing.T) {
	h := setupRouter(t)

	rec := doJSON(t, h, "POST", "/api/proposals", "tenant-a", proposalPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID         string  `json:"id"`
		Subtotal   float64 `json:"subtotal"`
		TotalGST   float64 `json:"total_gst"`
		GrandTotal float64 `json:"grand_total"`
		Template   int     `json:"template"`
	}
	decodeBody(t, rec, &created)
	if created.ID == "" {
		t.Fatalf("no id in response: %s", rec.Body.String())
	}
	if created.Subtotal != 650 || created.TotalGST != 65 || created.GrandTotal != 715 {
		t.Fatalf("totals = %v/%v/%v", created.Subtotal, created.TotalGST, created.GrandTotal)
	}
	if created.Template != 2 {
		t.Fatalf("template = %d, want 2", created.Template)
	}

	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID, "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got struct {
		Proposal struct {
			Client struct {
				Address string `json:"address"`
			} `json:"client"`
			Items []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"items"`
		} `json:"proposal"`
		Totals map[string]float64 `json:"totals"`
	}
	decodeBody(t, rec, &got)
	if got.Proposal.Client.Address != "12 Industrial Way, Springfield, 90210" {
		t.Fatalf("address = %q", got.Proposal.Client.Address)
	}
	if len(got.Proposal.Items) != 2 || got.Proposal.Items[1].Price != 75 {
		t.Fatalf("items = %+v", got.Proposal.Items)
	}
	if got.Totals["grand_total"] != 715 {
		t.Fatalf("grand_total = %v", got.Totals["grand_total"])
	}

	rec = doJSON(t, h, "POST", "/api/proposals/"+created.ID+"/status", "tenant-a", map[string]any{"status": "sent"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status update = %d", rec.Code)
	}

	rec = doJSON(t, h, "GET", "/api/proposals", "tenant-a", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "PRO-0007") {
		t.Fatalf("list = %d, body: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, "DELETE", "/api/proposals/"+created.ID, "tenant-a", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete = %d", rec.Code)
	}
	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID, "tenant-a", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d", rec.Code)
	}
}

func TestCreateRequiresTenant(t *testing.T) {
	h := setupRouter(t)
	rec := doJSON(t, h, "POST", "/api/proposals", "", proposalPayload())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing_tenant") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestCreateValidation(t *testing.T) {
	h := setupRouter(t)
	payload := proposalPayload()
	delete(payload, "client_name")
	rec := doJSON(t, h, "POST", "/api/proposals", "tenant-a", payload)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "client_name") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestCreateRejectsMalformedItems(t *testing.T) {
	h := setupRouter(t)
	payload := proposalPayload()
	payload["items"] = "not a list"
	rec := doJSON(t, h, "POST", "/api/proposals", "tenant-a", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid_record") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestPreviewPagination(t *testing.T) {
	h := setupRouter(t)

	payload := proposalPayload()
	items := make([]any, 0, 23)
	for i := 0; i < 23; i++ {
		items = append(items, map[string]any{"name": "Item", "quantity": 1, "price": 10, "gst_rate": 10})
	}
	payload["items"] = items
	rec := doJSON(t, h, "POST", "/api/proposals", "tenant-a", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID+"/preview", "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("preview = %d", rec.Code)
	}
	var preview struct {
		PageCount int `json:"page_count"`
		Pages     []struct {
			Kind   string `json:"kind"`
			Number int    `json:"number"`
		} `json:"pages"`
	}
	decodeBody(t, rec, &preview)
	// 23 items at capacity 10: 3 primary pages then 3 explanation pages.
	if preview.PageCount != 6 {
		t.Fatalf("page_count = %d, want 6", preview.PageCount)
	}
	for i, pg := range preview.Pages {
		if pg.Number != i+1 {
			t.Fatalf("page %d numbered %d", i, pg.Number)
		}
		wantKind := "primary"
		if i >= 3 {
			wantKind = "explanation"
		}
		if pg.Kind != wantKind {
			t.Fatalf("page %d kind = %q, want %q", i, pg.Kind, wantKind)
		}
	}

	// A custom capacity changes chunking but not content.
	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID+"/preview?capacity=5", "tenant-a", nil)
	decodeBody(t, rec, &preview)
	if preview.PageCount != 10 {
		t.Fatalf("page_count at capacity 5 = %d, want 10", preview.PageCount)
	}

	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID+"/preview?capacity=0", "tenant-a", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("capacity=0 = %d, want 400", rec.Code)
	}
}

func TestPDFDownload(t *testing.T) {
	h := setupRouter(t)

	rec := doJSON(t, h, "POST", "/api/proposals", "tenant-a", proposalPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = doJSON(t, h, "GET", "/api/proposals/"+created.ID+"/pdf", "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="PRO-0007.pdf"`) {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body does not look like a PDF")
	}
}

func TestClientCatalog(t *testing.T) {
	h := setupRouter(t)

	rec := doJSON(t, h, "POST", "/api/clients", "tenant-a", map[string]any{
		"name":           "Globex",
		"email":          "billing@globex.example",
		"address_line_1": "1 Monorail Ave",
		"city":           "Ogdenville",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client = %d, body: %s", rec.Code, rec.Body.String())
	}
	var client struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rec, &client)

	rec = doJSON(t, h, "GET", fmt.Sprintf("/api/clients/%d/party", client.ID), "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("party = %d", rec.Code)
	}
	var party struct {
		Party struct {
			Name    string
			Address string
		} `json:"party"`
	}
	decodeBody(t, rec, &party)
	if party.Party.Name != "Globex" {
		t.Fatalf("party name = %q", party.Party.Name)
	}

	// Missing name is rejected.
	rec = doJSON(t, h, "POST", "/api/clients", "tenant-a", map[string]any{"email": "x@example.com"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("create without name = %d", rec.Code)
	}
}

func TestProductCatalogItem(t *testing.T) {
	h := setupRouter(t)

	rec := doJSON(t, h, "POST", "/api/products", "tenant-a", map[string]any{
		"name":         "SEO audit",
		"unit_price":   250,
		"type":         "service",
		"hsn_sac_code": "9983",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product = %d, body: %s", rec.Code, rec.Body.String())
	}
	var product struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rec, &product)

	rec = doJSON(t, h, "GET", fmt.Sprintf("/api/products/%d/item", product.ID), "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("item = %d", rec.Code)
	}
	var out struct {
		Item struct {
			Name     string  `json:"name"`
			Quantity int     `json:"quantity"`
			Price    float64 `json:"price"`
			GSTRate  float64 `json:"gst_rate"`
		} `json:"item"`
	}
	decodeBody(t, rec, &out)
	if out.Item.Quantity != 1 || out.Item.GSTRate != 10 {
		t.Fatalf("catalog defaults = %+v", out.Item)
	}
	if out.Item.Price != 250 {
		t.Fatalf("unit price = %v", out.Item.Price)
	}
}

func TestCompanyIssuerFallback(t *testing.T) {
	h := setupRouter(t)

	// No profile saved: the issuer falls back to the placeholder name.
	rec := doJSON(t, h, "GET", "/api/company/issuer", "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("issuer = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your Company Name") {
		t.Fatalf("body: %s", rec.Body.String())
	}

	rec = doJSON(t, h, "PUT", "/api/company", "tenant-a", map[string]any{
		"company_name": "Adstra Digital",
		"email":        "billing@adstra.example",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update company = %d", rec.Code)
	}

	rec = doJSON(t, h, "GET", "/api/company/issuer", "tenant-a", nil)
	if !strings.Contains(rec.Body.String(), "Adstra Digital") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestTemplateEndpoints(t *testing.T) {
	h := setupRouter(t)

	rec := doJSON(t, h, "GET", "/api/templates", "tenant-a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d", rec.Code)
	}
	for _, name := range []string{"Classic", "Modern", "Professional"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Fatalf("missing builtin %q in %s", name, rec.Body.String())
		}
	}

	rec = doJSON(t, h, "GET", "/api/templates/99", "tenant-a", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Classic") {
		t.Fatalf("fallback = %d, body: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, "POST", "/api/templates", "tenant-a", map[string]any{
		"name": "Branded",
		"file": "branded.jpg",
		"regions": map[string]any{
			"header": map[string]any{"fontFamily": "Georgia", "color": "#222222"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create template = %d, body: %s", rec.Code, rec.Body.String())
	}
}
