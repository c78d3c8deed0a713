package normalize

import (
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// Document maps a persisted proposal record into the canonical document.
// Stored totals are deliberately ignored: totals are always recomputed from
// items so stale persisted values cannot drift into a re-render. A record
// whose items field is present but not a sequence fails fast.
func Document(rec map[string]any) (proposal.Document, error) {
	doc := proposal.Document{
		ID:     firstString(rec, []string{"id"}),
		Number: firstString(rec, []string{"proposal_number", "invoice_number"}),
		Date:   firstString(rec, []string{"date"}),
		DueDate: firstString(rec, []string{
			"due_date", "dueDate",
		}),
		Notes: firstString(rec, []string{"notes"}),
		Recipient: proposal.Party{
			Name:    firstString(rec, []string{"client_name"}),
			Email:   firstString(rec, []string{"client_email"}),
			Phone:   firstString(rec, []string{"client_phone"}),
			Address: FormatAddress(rec["client_address"]),
		},
		Issuer: proposal.Party{
			Name:    firstString(rec, []string{"company_name"}),
			Email:   firstString(rec, []string{"company_email"}),
			Phone:   firstString(rec, []string{"company_phone"}),
			Address: FormatAddress(rec["company_address"]),
			Logo:    firstString(rec, logoAliases),
		},
		TemplateID: proposal.DefaultTemplateID,
		Status:     proposal.StatusDraft,
	}

	if v, ok := lookupAny(rec, "template"); ok {
		if n, numeric := asNumber(v); numeric {
			doc.TemplateID = int(n)
		}
	}
	if s := proposal.Status(firstString(rec, []string{"status"})); proposal.ValidStatus(s) {
		doc.Status = s
	}

	if v, ok := lookupAny(rec, "items"); ok {
		seq, isSeq := v.([]any)
		if !isSeq {
			return proposal.Document{}, &proposal.StructuralError{Field: "items", Reason: "not a sequence"}
		}
		for _, raw := range seq {
			itemRec, isMap := raw.(map[string]any)
			if !isMap {
				return proposal.Document{}, &proposal.StructuralError{Field: "items", Reason: "element is not a record"}
			}
			item, err := Item(itemRec)
			if err != nil {
				return proposal.Document{}, err
			}
			doc.Items = append(doc.Items, item)
		}
	}
	return doc, nil
}
