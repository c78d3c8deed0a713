package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/models"
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// TemplateService resolves document styles. Builtin templates always exist;
// tenant-defined rows in the templates table layer on top of them, with their
// region overrides stored as JSON.
type TemplateService struct {
	db       *gorm.DB
	registry *proposal.Registry
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db, registry: proposal.NewRegistry()}
}

// Resolve returns the style for a template id. Tenant overrides win over the
// builtin set; an unknown id falls back to the default template.
func (s *TemplateService) Resolve(ctx context.Context, tenantID string, id int) proposal.TemplateStyle {
	var rec models.Template
	err := s.db.WithContext(ctx).
		Where("id = ? AND (tenant_id = ? OR tenant_id = '')", id, tenantID).
		First(&rec).Error
	if err == nil {
		if style, ok := styleFromModel(&rec); ok {
			return style
		}
	}
	return s.registry.Lookup(id)
}

// List returns every style visible to the tenant: builtins first, then the
// tenant's own templates.
func (s *TemplateService) List(ctx context.Context, tenantID string) ([]proposal.TemplateStyle, error) {
	styles := proposal.BuiltinStyles()

	var recs []models.Template
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? OR tenant_id = ''", tenantID).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if style, ok := styleFromModel(&recs[i]); ok {
			styles = append(styles, style)
		}
	}
	return styles, nil
}

// Create stores a tenant template. The region set is serialized as JSON so
// partial overrides round-trip untouched.
func (s *TemplateService) Create(ctx context.Context, tenantID string, style proposal.TemplateStyle) (*models.Template, error) {
	regions, err := json.Marshal(style.Regions)
	if err != nil {
		return nil, err
	}
	rec := &models.Template{
		TenantID: tenantID,
		Name:     style.Name,
		File:     style.File,
		Regions:  regions,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func styleFromModel(rec *models.Template) (proposal.TemplateStyle, bool) {
	style := proposal.TemplateStyle{
		ID:   int(rec.ID),
		Name: rec.Name,
		File: rec.File,
	}
	if len(rec.Regions) == 0 {
		return style, false
	}
	if err := json.Unmarshal(rec.Regions, &style.Regions); err != nil {
		return proposal.TemplateStyle{}, false
	}
	return style, true
}
