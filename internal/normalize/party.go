package normalize

import (
	"strings"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// UnnamedParty is the sentinel substituted when a client record carries no
// resolvable name. It is not an error: callers that need a valid party list
// are responsible for filtering it out.
const UnnamedParty = "Unnamed Client"

// DefaultIssuerName is the last-resort issuer name when neither a name alias
// nor an email local-part is available.
const DefaultIssuerName = "Your Company Name"

var (
	clientNameAliases = []string{"company_name", "name", "business_name"}
	emailAliases      = []string{"email", "contact_email"}
	phoneAliases      = []string{"phone", "contact_phone", "phone_number"}
	taxIDAliases      = []string{"tax_id", "tax_number", "vat_number"}

	issuerNameAliases = []string{
		"company_name", "business_name", "name",
		"organization", "firm_name", "enterprise_name",
	}
	logoAliases = []string{"logo", "logo_url"}
)

// Party maps a raw client record to a recipient party. Records lacking a name
// get the UnnamedParty sentinel rather than an error.
func Party(rec map[string]any) proposal.Party {
	name := firstString(rec, clientNameAliases)
	if name == "" {
		name = UnnamedParty
	}
	return proposal.Party{
		Name:    name,
		Email:   firstString(rec, emailAliases),
		Phone:   firstString(rec, phoneAliases),
		Address: resolveAddress(rec),
		Website: firstString(rec, []string{"website"}),
	}
}

// TaxID resolves the tax identifier of a client record.
func TaxID(rec map[string]any) string {
	return firstString(rec, taxIDAliases)
}

// Issuer maps a raw company record to the issuer party. Placeholder name
// values ("--", "-") are treated as absent; when no name alias is populated
// the name derives from the email local-part, and failing that falls back to
// DefaultIssuerName.
func Issuer(rec map[string]any) proposal.Party {
	name := firstString(rec, issuerNameAliases, "--", "-")
	email := firstString(rec, emailAliases)
	if name == "" {
		name = issuerNameFromEmail(email)
	}
	return proposal.Party{
		Name:     name,
		Email:    email,
		Phone:    firstString(rec, phoneAliases),
		AltPhone: firstString(rec, []string{"alternate_phone"}),
		Address:  resolveAddress(rec),
		Website:  firstString(rec, []string{"website"}),
		Logo:     firstString(rec, logoAliases),
	}
}

func issuerNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return DefaultIssuerName
	}
	return strings.ToUpper(local[:1]) + local[1:] + " Company"
}
