package card

import "github.com/bankingsystem/services/pkg/domain"

// CreateCardRequest is the create payload. TypeOfCard rejects unknown values
// at decode time; the remaining presence/format rules are checked by the
// service in a fixed order.
type CreateCardRequest struct {
	AccountID  int64           `json:"accountId"`
	TypeOfCard domain.CardType `json:"typeOfCard"`
	Pan        string          `json:"pan" validate:"omitempty,max=19"`
	Cvv        string          `json:"cvv" validate:"omitempty,max=4"`
	CardAlias  string          `json:"cardAlias" validate:"omitempty,max=100"`
}

// UpdateCardRequest is the partial-update payload; only the alias is mutable.
type UpdateCardRequest struct {
	CardAlias *string `json:"cardAlias" validate:"omitempty,max=100"`
}
