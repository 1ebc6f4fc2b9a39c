package dto

import "time"

// AccountRead is the read-side representation of an account.
type AccountRead struct {
	AccountID  int64     `json:"accountId"`
	Iban       string    `json:"iban"`
	BicSwift   string    `json:"bicSwift"`
	CustomerID int64     `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AccountCreate carries the writable fields for a new account.
type AccountCreate struct {
	Iban       string
	BicSwift   string
	CustomerID int64
}

// AccountUpdate is a partial update; only iban and bicSwift are mutable.
type AccountUpdate struct {
	Iban     *string
	BicSwift *string
}

// AccountListFilter holds the optional listing filters. CardAlias is accepted
// by the endpoint but not applied; see the account service for the rationale.
type AccountListFilter struct {
	CustomerID *int64
	Iban       string
	CardAlias  string
}
