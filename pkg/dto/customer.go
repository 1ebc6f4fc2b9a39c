package dto

import "time"

// CustomerRead is the read-side representation returned by queries and API
// responses.
type CustomerRead struct {
	CustomerID int64     `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	OtherName  string    `json:"otherName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CustomerCreate carries the writable fields for a new customer.
type CustomerCreate struct {
	FirstName string
	LastName  string
	OtherName string
}

// CustomerUpdate is a partial update: nil fields are left untouched.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	OtherName *string
}

// CustomerListFilter holds the optional listing filters. Name matches any of
// the three name columns, case-insensitively; the date bounds are inclusive.
type CustomerListFilter struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}
