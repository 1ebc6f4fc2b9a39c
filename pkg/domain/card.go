package domain

import (
	"encoding/json"
	"strings"
)

// CardType is the kind of card issued against an account. At most one card of
// each type may exist per account.
type CardType string

const (
	CardTypeVirtual  CardType = "VIRTUAL"
	CardTypePhysical CardType = "PHYSICAL"
)

// ParseCardType accepts the two known card types, case-insensitively.
func ParseCardType(s string) (CardType, error) {
	switch CardType(strings.ToUpper(strings.TrimSpace(s))) {
	case CardTypeVirtual:
		return CardTypeVirtual, nil
	case CardTypePhysical:
		return CardTypePhysical, nil
	default:
		return "", E(InvalidFormat, "invalid.card.type", s)
	}
}

func (t CardType) Valid() bool {
	return t == CardTypeVirtual || t == CardTypePhysical
}

// UnmarshalJSON rejects unknown card types at decode time so a bad payload
// never reaches the persistence layer as an empty enum value.
func (t *CardType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCardType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t CardType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}
