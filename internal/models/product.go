package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductService is a catalog entry: a product or service that can be added
// to a proposal as a line item. HSN/SAC and part/service codes ride along
// into line items for tax reporting.
type ProductService struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  string         `gorm:"size:36;index;not null" json:"tenant_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	UnitPrice       float64 `gorm:"not null" json:"unit_price"`
	Type            string  `gorm:"size:20;default:'product'" json:"type"` // product | service
	HSNSACCode      string  `gorm:"size:50" json:"hsn_sac_code,omitempty"`
	PartServiceCode string  `gorm:"size:50" json:"part_service_code,omitempty"`
}

// AsRecord flattens the row into the raw catalog record shape the normalizer
// consumes.
func (p *ProductService) AsRecord() map[string]any {
	return map[string]any{
		"id":                p.ID,
		"name":              p.Name,
		"description":       p.Description,
		"unit_price":        p.UnitPrice,
		"type":              p.Type,
		"hsn_sac_code":      p.HSNSACCode,
		"part_service_code": p.PartServiceCode,
	}
}
