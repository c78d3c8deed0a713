package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/adstradigital/adinvoice-sub000/internal/export"
	"github.com/adstradigital/adinvoice-sub000/internal/httpx"
	"github.com/adstradigital/adinvoice-sub000/internal/normalize"
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/adstradigital/adinvoice-sub000/internal/services"
)

type ProposalHandler struct {
	proposals *services.ProposalService
	templates *services.TemplateService
	exporter  export.Exporter
}

func NewProposalHandler(proposals *services.ProposalService, templates *services.TemplateService, exporter export.Exporter) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, templates: templates, exporter: exporter}
}

// List returns the tenant's proposals without items.
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	recs, err := h.proposals.List(r.Context(), tenant)
	if err != nil {
		internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"proposals": recs})
}

// Create accepts a raw proposal record. The body passes through the
// normalizer, so legacy field aliases and loosely typed values are accepted.
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// Update replaces an existing proposal.
func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, r.PathValue("id"))
}

func (h *ProposalHandler) save(w http.ResponseWriter, r *http.Request, id string) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var raw map[string]any
	if err := httpx.Decode(r, &raw); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	doc, err := normalize.Document(raw)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	doc.ID = id

	rec, err := h.proposals.Save(r.Context(), tenant, doc)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	status := http.StatusCreated
	if id != "" {
		status = http.StatusOK
	}
	httpx.JSON(w, status, rec)
}

// Get returns the document form of one proposal, with totals recomputed.
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	doc, err := h.proposals.Load(r.Context(), tenant, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	totals, err := proposal.ComputeTotals(doc.Items)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"proposal": doc,
		"totals": map[string]float64{
			"subtotal":    totals.Subtotal,
			"total_gst":   totals.TaxTotal,
			"grand_total": totals.GrandTotal,
		},
	})
}

// Status updates the lifecycle state of a proposal.
func (h *ProposalHandler) Status(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := httpx.Decode(r, &body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.proposals.UpdateStatus(r.Context(), tenant, r.PathValue("id"), proposal.Status(body.Status)); err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": body.Status})
}

// Delete removes a proposal.
func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	if err := h.proposals.Delete(r.Context(), tenant, r.PathValue("id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Preview returns the rendered page sequence as JSON, the same view-models
// the PDF backends consume.
func (h *ProposalHandler) Preview(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	doc, pages, err := h.renderPages(w, r, tenant)
	if err != nil {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"proposal_number": doc.Number,
		"page_count":      len(pages),
		"pages":           pages,
	})
}

// PDF streams the exported document.
func (h *ProposalHandler) PDF(w http.ResponseWriter, r *http.Request) {
	tenant := tenantID(w, r)
	if tenant == "" {
		return
	}
	doc, pages, err := h.renderPages(w, r, tenant)
	if err != nil {
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(r.Context(), doc, pages, &buf); err != nil {
		internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(doc)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("pdf stream interrupted")
	}
}

// renderPages loads the proposal and runs the full composition pipeline.
// On error it writes the response itself and returns a non-nil error.
func (h *ProposalHandler) renderPages(w http.ResponseWriter, r *http.Request, tenant string) (proposal.Document, []proposal.Page, error) {
	doc, err := h.proposals.Load(r.Context(), tenant, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return proposal.Document{}, nil, err
	}

	capacity := proposal.DefaultCapacity
	if q := r.URL.Query().Get("capacity"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			capacity = n
		}
	}
	plan, err := proposal.Paginate(doc.Items, capacity)
	if err != nil {
		writeDomainError(w, r, err)
		return proposal.Document{}, nil, err
	}

	style := h.templates.Resolve(r.Context(), tenant, doc.TemplateID)
	pages, err := proposal.Render(doc, style, plan)
	if err != nil {
		writeDomainError(w, r, err)
		return proposal.Document{}, nil, err
	}
	return doc, pages, nil
}
