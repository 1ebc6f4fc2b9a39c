package dto

import (
	"time"

	"github.com/bankingsystem/services/pkg/domain"
)

// CardRead is the read-side representation of a card. PAN and CVV are masked
// at the response boundary unless the caller explicitly reveals them.
type CardRead struct {
	CardID    int64           `json:"cardId"`
	AccountID int64           `json:"accountId"`
	Type      domain.CardType `json:"typeOfCard"`
	Pan       string          `json:"pan"`
	Cvv       string          `json:"cvv"`
	CardAlias string          `json:"cardAlias,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CardCreate carries the writable fields for a new card.
type CardCreate struct {
	AccountID int64
	Type      domain.CardType
	Pan       string
	Cvv       string
	CardAlias string
}

// CardUpdate is a partial update; only the alias is mutable.
type CardUpdate struct {
	CardAlias *string
}

// CardListFilter holds the optional listing filters.
type CardListFilter struct {
	AccountID *int64
	CardAlias string
	Pan       string
	Type      *domain.CardType
}
