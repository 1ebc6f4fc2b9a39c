package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankingsystem/services/pkg/dto"
)

// CustomerClient reads from the customer service.
type CustomerClient struct {
	httpClient
}

// NewCustomerClient builds a client against the customer service base URL.
func NewCustomerClient(baseURL string, timeout time.Duration, logger *slog.Logger) *CustomerClient {
	return &CustomerClient{newHTTPClient(baseURL, timeout, logger)}
}

// GetCustomerByID fetches one customer. Used by the account service as an
// existence check before persisting an account.
func (c *CustomerClient) GetCustomerByID(ctx context.Context, customerID int64) (*dto.CustomerRead, error) {
	var out dto.CustomerRead
	if err := c.getJSON(ctx, fmt.Sprintf("/customer/%d", customerID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
