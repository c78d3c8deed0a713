package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proposal is the persisted form of a proposal document. Issuer and
// recipient details are denormalized snapshots taken at save time, so later
// edits to the client or company records do not rewrite history. The stored
// totals are a convenience for list screens only: on reload they are always
// recomputed from the items.
type Proposal struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	TenantID  string         `gorm:"size:36;index;not null" json:"tenant_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title          string `gorm:"size:255" json:"title,omitempty"`
	ProposalNumber string `gorm:"size:50;index;not null" json:"proposal_number"`

	ClientName    string `gorm:"size:255;not null" json:"client_name"`
	ClientEmail   string `gorm:"size:255" json:"client_email,omitempty"`
	ClientPhone   string `gorm:"size:50" json:"client_phone,omitempty"`
	ClientAddress string `gorm:"type:text" json:"client_address,omitempty"`

	CompanyName    string `gorm:"size:255" json:"company_name,omitempty"`
	CompanyEmail   string `gorm:"size:255" json:"company_email,omitempty"`
	CompanyPhone   string `gorm:"size:50" json:"company_phone,omitempty"`
	CompanyAddress string `gorm:"type:text" json:"company_address,omitempty"`
	CompanyLogo    string `gorm:"size:500" json:"company_logo,omitempty"`

	Date    string `gorm:"size:20" json:"date,omitempty"`
	DueDate string `gorm:"size:20" json:"due_date,omitempty"`

	Subtotal   float64 `gorm:"default:0" json:"subtotal"`
	TotalGST   float64 `gorm:"column:total_gst;default:0" json:"total_gst"`
	GrandTotal float64 `gorm:"default:0" json:"grand_total"`

	Notes    string `gorm:"type:text" json:"notes,omitempty"`
	Status   string `gorm:"size:20;default:'draft';index" json:"status"`
	Template int    `gorm:"default:1" json:"template"`

	Items []ProposalItem `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (p *Proposal) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProposalItem is one persisted line item. Position preserves the ordering of
// the item sequence, which drives the displayed serial number.
type ProposalItem struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ProposalID string `gorm:"size:36;index;not null" json:"-"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	ItemType        string  `gorm:"size:20;default:'product'" json:"item_type"`
	Quantity        int     `gorm:"default:1" json:"quantity"`
	Price           float64 `gorm:"not null" json:"price"`
	GSTRate         float64 `gorm:"column:gst_rate;default:0" json:"gst_rate"`
	HSNSACCode      string  `gorm:"size:50" json:"hsn_sac_code,omitempty"`
	PartServiceCode string  `gorm:"size:50" json:"part_service_code,omitempty"`
	Total           float64 `gorm:"default:0" json:"total"`
	Position        int     `gorm:"not null;index" json:"order"`
}

func (i *ProposalItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
