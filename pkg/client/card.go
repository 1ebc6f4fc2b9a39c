package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CardClient reads from the card service.
type CardClient struct {
	httpClient
}

// NewCardClient builds a client against the card service base URL.
func NewCardClient(baseURL string, timeout time.Duration, logger *slog.Logger) *CardClient {
	return &CardClient{newHTTPClient(baseURL, timeout, logger)}
}

// GetCardsByAccount lists cards referencing an account. The account service
// calls it with page=0,size=1 to learn whether any dependents exist.
func (c *CardClient) GetCardsByAccount(ctx context.Context, accountID int64, page, size int) (*PageSummary, error) {
	var out PageSummary
	path := fmt.Sprintf("/card?accountId=%d&page=%d&size=%d", accountID, page, size)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
