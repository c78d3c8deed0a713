package models

import (
	"time"

	"gorm.io/datatypes"
)

// Template is a tenant-defined document style stored alongside the builtin
// set. Regions holds the per-region style overrides as a JSON document in the
// same shape the style registry uses.
type Template struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  string    `gorm:"size:36;index" json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string         `gorm:"size:100;not null" json:"name"`
	File    string         `gorm:"size:255" json:"file,omitempty"`
	Regions datatypes.JSON `gorm:"type:json" json:"regions,omitempty"`
}
