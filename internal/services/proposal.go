package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/models"
	"github.com/adstradigital/adinvoice-sub000/internal/normalize"
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/adstradigital/adinvoice-sub000/internal/validation"
)

// ErrNotFound is returned when a proposal does not exist for the tenant.
var ErrNotFound = errors.New("proposal not found")

type ProposalService struct {
	db *gorm.DB
}

func NewProposalService(db *gorm.DB) *ProposalService {
	return &ProposalService{db: db}
}

// Save validates and persists a proposal document for the tenant.
// Totals are recomputed from the items before writing; whatever totals the
// caller sent are ignored. Items are stored with their sequence position so a
// reload reproduces the exact ordering.
func (s *ProposalService) Save(ctx context.Context, tenantID string, doc proposal.Document) (*models.Proposal, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	totals, err := proposal.ComputeTotals(doc.Items)
	if err != nil {
		return nil, err
	}

	rec := toModel(tenantID, doc, totals)
	items := rec.Items
	rec.Items = nil
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if doc.ID != "" {
			var existing models.Proposal
			res := tx.Where("id = ? AND tenant_id = ?", doc.ID, tenantID).First(&existing)
			if res.Error != nil {
				if errors.Is(res.Error, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return res.Error
			}
			rec.ID = existing.ID
			rec.CreatedAt = existing.CreatedAt
			if err := tx.Where("proposal_id = ?", existing.ID).Delete(&models.ProposalItem{}).Error; err != nil {
				return err
			}
			if err := tx.Save(rec).Error; err != nil {
				return err
			}
		} else if err := tx.Create(rec).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProposalID = rec.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return rec, nil
}

// Load fetches a proposal and rebuilds its document form. Totals are never
// read back from storage; callers get them from ComputeTotals.
func (s *ProposalService) Load(ctx context.Context, tenantID, id string) (proposal.Document, error) {
	var rec models.Proposal
	err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return proposal.Document{}, ErrNotFound
		}
		return proposal.Document{}, err
	}
	return toDocument(&rec), nil
}

// List returns the tenant's proposals, newest first, without items.
func (s *ProposalService) List(ctx context.Context, tenantID string) ([]models.Proposal, error) {
	var recs []models.Proposal
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

// UpdateStatus moves a proposal through its lifecycle.
func (s *ProposalService) UpdateStatus(ctx context.Context, tenantID, id string, status proposal.Status) error {
	if !proposal.ValidStatus(status) {
		return &proposal.ValidationError{Violations: map[string]string{"status": "invalid_value"}}
	}
	res := s.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a proposal and its items.
func (s *ProposalService) Delete(ctx context.Context, tenantID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.Proposal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("proposal_id = ?", id).Delete(&models.ProposalItem{}).Error
	})
}

func validateDocument(doc proposal.Document) error {
	v := validation.Violations{}
	validation.Required("client_name", doc.Recipient.Name, v)
	validation.Required("client_email", doc.Recipient.Email, v)
	if doc.Recipient.Name == normalize.UnnamedParty {
		v["client_name"] = "required"
	}
	for i, it := range doc.Items {
		if it.Name == "" {
			v[fmt.Sprintf("items[%d].name", i)] = "required"
		}
	}
	if !v.Empty() {
		return &proposal.ValidationError{Violations: v}
	}
	return nil
}

func toModel(tenantID string, doc proposal.Document, totals proposal.Totals) *models.Proposal {
	rec := &models.Proposal{
		ID:             doc.ID,
		TenantID:       tenantID,
		ProposalNumber: doc.Number,
		ClientName:     doc.Recipient.Name,
		ClientEmail:    doc.Recipient.Email,
		ClientPhone:    doc.Recipient.Phone,
		ClientAddress:  doc.Recipient.Address,
		CompanyName:    doc.Issuer.Name,
		CompanyEmail:   doc.Issuer.Email,
		CompanyPhone:   doc.Issuer.Phone,
		CompanyAddress: doc.Issuer.Address,
		CompanyLogo:    doc.Issuer.Logo,
		Date:           doc.Date,
		DueDate:        doc.DueDate,
		Subtotal:       totals.Subtotal,
		TotalGST:       totals.TaxTotal,
		GrandTotal:     totals.GrandTotal,
		Notes:          doc.Notes,
		Status:         string(doc.Status),
		Template:       doc.TemplateID,
	}
	for i, it := range doc.Items {
		rec.Items = append(rec.Items, models.ProposalItem{
			Name:            it.Name,
			Description:     it.Description,
			ItemType:        string(it.Kind),
			Quantity:        it.Quantity,
			Price:           it.UnitPrice,
			GSTRate:         it.TaxRatePercent,
			HSNSACCode:      it.HSNSACCode,
			PartServiceCode: it.PartServiceCode,
			Total:           proposal.LineTotal(it),
			Position:        i,
		})
	}
	return rec
}

func toDocument(rec *models.Proposal) proposal.Document {
	doc := proposal.Document{
		ID:      rec.ID,
		Number:  rec.ProposalNumber,
		Date:    rec.Date,
		DueDate: rec.DueDate,
		Issuer: proposal.Party{
			Name:    rec.CompanyName,
			Email:   rec.CompanyEmail,
			Phone:   rec.CompanyPhone,
			Address: rec.CompanyAddress,
			Logo:    rec.CompanyLogo,
		},
		Recipient: proposal.Party{
			Name:    rec.ClientName,
			Email:   rec.ClientEmail,
			Phone:   rec.ClientPhone,
			Address: rec.ClientAddress,
		},
		Notes:      rec.Notes,
		TemplateID: rec.Template,
		Status:     proposal.Status(rec.Status),
	}
	for _, it := range rec.Items {
		doc.Items = append(doc.Items, proposal.LineItem{
			Name:            it.Name,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.Price,
			TaxRatePercent:  it.GSTRate,
			HSNSACCode:      it.HSNSACCode,
			PartServiceCode: it.PartServiceCode,
			Kind:            proposal.ItemKind(it.ItemType),
		})
	}
	return doc
}
