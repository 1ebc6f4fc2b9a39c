package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankingsystem/services/pkg/dto"
)

// AccountClient reads from the account service.
type AccountClient struct {
	httpClient
}

// NewAccountClient builds a client against the account service base URL.
func NewAccountClient(baseURL string, timeout time.Duration, logger *slog.Logger) *AccountClient {
	return &AccountClient{newHTTPClient(baseURL, timeout, logger)}
}

// GetAccountByID fetches one account. Used by the card service as an
// existence check before persisting a card.
func (c *AccountClient) GetAccountByID(ctx context.Context, accountID int64) (*dto.AccountRead, error) {
	var out dto.AccountRead
	if err := c.getJSON(ctx, fmt.Sprintf("/accounts/%d", accountID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccountsByCustomer lists accounts referencing a customer. The customer
// service calls it with page=0,size=1 to learn whether any dependents exist.
func (c *AccountClient) GetAccountsByCustomer(ctx context.Context, customerID int64, page, size int) (*PageSummary, error) {
	var out PageSummary
	path := fmt.Sprintf("/accounts?customerId=%d&page=%d&size=%d", customerID, page, size)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
