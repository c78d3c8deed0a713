package models

import (
	"time"

	"gorm.io/gorm"
)

// ClientCompany is a client (recipient) record as managed on the client
// companies screen. Address data may live in the structured columns, in
// AddressLine1 as pre-joined text, or both; the normalizer resolves the
// display form.
type ClientCompany struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  string         `gorm:"size:36;index;not null" json:"tenant_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name    string `gorm:"size:255;not null;index" json:"name"`
	Contact string `gorm:"size:255" json:"contact,omitempty"`
	Email   string `gorm:"size:255" json:"email,omitempty"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`

	AddressLine1 string `gorm:"size:255" json:"address_line1,omitempty"`
	City         string `gorm:"size:100" json:"city,omitempty"`
	State        string `gorm:"size:100" json:"state,omitempty"`
	Country      string `gorm:"size:100" json:"country,omitempty"`
	PostalCode   string `gorm:"size:20" json:"postal_code,omitempty"`

	Industry           string `gorm:"size:255" json:"industry,omitempty"`
	Website            string `gorm:"size:255" json:"website,omitempty"`
	RegistrationNumber string `gorm:"size:100" json:"registration_number,omitempty"`
	TaxID              string `gorm:"size:100" json:"tax_id,omitempty"`
	SupportEmail       string `gorm:"size:255" json:"support_email,omitempty"`
	Notes              string `gorm:"type:text" json:"notes,omitempty"`
	IsActive           bool   `gorm:"default:true" json:"is_active"`
}

// AsRecord flattens the row into the raw record shape the normalizer
// consumes, mirroring the collaborator API payload.
func (c *ClientCompany) AsRecord() map[string]any {
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"contact_person": c.Contact,
		"email":          c.Email,
		"phone":          c.Phone,
		"address_line_1": c.AddressLine1,
		"city":           c.City,
		"state":          c.State,
		"country":        c.Country,
		"postal_code":    c.PostalCode,
		"tax_id":         c.TaxID,
		"website":        c.Website,
	}
}
