package customer

// CreateCustomerRequest is the create payload. Presence of the name fields is
// a business rule checked by the service so the catalog message is returned,
// not a generic validation error.
type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	OtherName string `json:"otherName" validate:"omitempty,max=100"`
}

// UpdateCustomerRequest is the partial-update payload; absent fields stay
// untouched.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	OtherName *string `json:"otherName" validate:"omitempty,max=100"`
}
