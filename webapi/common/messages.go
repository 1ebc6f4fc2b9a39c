package common

import (
	"errors"
	"fmt"

	"github.com/bankingsystem/services/pkg/domain"
)

// catalog maps message keys to their English templates. Keys are shared wire
// vocabulary across the three services; adding a locale means adding a second
// catalog, not touching the services.
var catalog = map[string]string{
	"first.name.validation":       "First name is mandatory",
	"last.name.validation":        "Last name is mandatory",
	"customer.not.found":          "Customer %v not found",
	"customer.has.accounts":       "Customer %v cannot be deleted while accounts reference it",
	"customer.deleted.success":    "Customer %v deleted successfully",
	"missing.customer.id":         "Customer id is mandatory",
	"missing.iban.number":         "Iban number is mandatory",
	"iban.number.exist":           "An account with this iban number already exists",
	"missing.bicswift.number":     "BicSwift number is mandatory",
	"account.not.found":           "Account %v not found",
	"account.deletion.rejected":   "Account %v cannot be deleted while cards reference it",
	"account.deletion.successful": "Account %v deleted successfully",
	"account.detail.missing":      "Account id is mandatory",
	"cvv.mandatory":               "CVV is mandatory",
	"invalid.card.cvvformat":      "CVV format is invalid",
	"invalid.card.type":           "Card type must be either VIRTUAL or PHYSICAL, got %v",
	"pan.mandatory":               "PAN is mandatory",
	"invalid.card.panformat":      "PAN format is invalid",
	"account.type.exist":          "A card of this type already exists for account %v",
	"card.pan.exist":              "A card with this PAN already exists",
	"card.not.found":              "Card %v not found",
	"card.deletion.successful":    "Card %v deleted successfully",
}

// Message renders a catalog entry. Unknown keys come back verbatim so a
// missing entry shows up in responses instead of hiding.
func Message(key string, args ...any) string {
	tmpl, ok := catalog[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// MessageFor renders the catalog message of a business error.
func MessageFor(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return Message(de.Key, de.Args...)
	}
	return "Unexpected error"
}
