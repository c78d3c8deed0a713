package models

import (
	"time"

	"gorm.io/gorm"
)

// CompanyProfile is the issuer record: the tenant's own business details as
// shown in the document header. One row per tenant.
type CompanyProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  string         `gorm:"size:36;uniqueIndex;not null" json:"tenant_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	CompanyName    string `gorm:"size:255" json:"company_name,omitempty"`
	Email          string `gorm:"size:255" json:"email,omitempty"`
	Phone          string `gorm:"size:50" json:"phone,omitempty"`
	AlternatePhone string `gorm:"size:50" json:"alternate_phone,omitempty"`
	Address        string `gorm:"type:text" json:"address,omitempty"`
	Website        string `gorm:"size:255" json:"website,omitempty"`
	LogoURL        string `gorm:"size:500" json:"logo_url,omitempty"`
	TaxID          string `gorm:"size:100" json:"tax_id,omitempty"`
	Currency       string `gorm:"size:10;default:'USD'" json:"currency"`
	PaymentTerms   string `gorm:"size:100" json:"payment_terms,omitempty"`
}

// AsRecord flattens the row into the raw company record shape the normalizer
// consumes.
func (c *CompanyProfile) AsRecord() map[string]any {
	return map[string]any{
		"company_name":    c.CompanyName,
		"email":           c.Email,
		"phone":           c.Phone,
		"alternate_phone": c.AlternatePhone,
		"address":         c.Address,
		"website":         c.Website,
		"logo_url":        c.LogoURL,
		"tax_id":          c.TaxID,
	}
}
