// Package proposal implements the document composition engine: the pure data
// model and the totals, pagination, styling, and rendering steps that turn an
// ordered list of line items plus issuer/recipient parties into a
// deterministic, paginated sequence of page view-models.
//
// Nothing in this package performs I/O. Fetching records and persisting
// documents happen in the services/handlers layers; exporting the rendered
// pages to PDF lives in internal/export.
package proposal

// ItemKind distinguishes catalog products from services on a line item.
type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemService ItemKind = "service"
)

// Status is the lifecycle state of a proposal document.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// Address holds the structured form of a postal address. Any field may be
// empty; formatting skips absent components.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Party is an issuer or recipient as it appears on the document. Address is
// the normalized display string; the normalizer resolves structured vs
// pre-joined input at the boundary.
type Party struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	AltPhone string `json:"alternate_phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Website  string `json:"website,omitempty"`
	Logo     string `json:"logo,omitempty"`
}

// LineItem is one row of the document. The position of an item within
// Document.Items is semantically meaningful: it drives the displayed serial
// number and must survive every transformation.
type LineItem struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Quantity        int      `json:"quantity"`
	UnitPrice       float64  `json:"price"`
	TaxRatePercent  float64  `json:"gst_rate"`
	HSNSACCode      string   `json:"hsn_sac_code,omitempty"`
	PartServiceCode string   `json:"part_service_code,omitempty"`
	Kind            ItemKind `json:"type,omitempty"`
}

// Totals is derived from the item sequence and never stored as a source of
// truth; persisted copies are recomputed on reload.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"total_gst"`
	GrandTotal float64 `json:"grand_total"`
}

// Document is the canonical proposal. Totals and page plans are functions of
// this value, never independent state.
type Document struct {
	ID         string     `json:"id,omitempty"`
	Number     string     `json:"proposal_number"`
	Date       string     `json:"date,omitempty"`
	DueDate    string     `json:"due_date,omitempty"`
	Issuer     Party      `json:"company"`
	Recipient  Party      `json:"client"`
	Items      []LineItem `json:"items"`
	Notes      string     `json:"notes,omitempty"`
	TemplateID int        `json:"template"`
	Status     Status     `json:"status"`
}
