package account

// CreateAccountRequest is the create payload. Presence of iban/bicSwift and
// the customer reference are business rules checked by the service in a fixed
// order.
type CreateAccountRequest struct {
	Iban       string `json:"iban" validate:"omitempty,max=34"`
	BicSwift   string `json:"bicSwift" validate:"omitempty,max=11"`
	CustomerID int64  `json:"customerId"`
}

// UpdateAccountRequest is the partial-update payload; only iban and bicSwift
// are mutable.
type UpdateAccountRequest struct {
	Iban     *string `json:"iban" validate:"omitempty,max=34"`
	BicSwift *string `json:"bicSwift" validate:"omitempty,max=11"`
}
