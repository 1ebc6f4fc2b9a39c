// Package client holds the thin synchronous HTTP clients the services use to
// ask a sibling service about referenced or dependent entities. There is no
// caching and no retry; any failure is reported to the caller as-is.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PageSummary is the slice of a sibling's list response the dependency checks
// care about: the total match count. Items are intentionally not decoded; the
// callers request size=1 purely to get the count cheaply.
type PageSummary struct {
	TotalElements int64 `json:"totalElements"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func newHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) httpClient {
	return httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// getJSON performs a GET against the sibling service and decodes a 200
// response into out. Every non-200 status, transport error, or decode error
// is returned as an error; distinguishing them is the caller's business.
func (c httpClient) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("sibling service returned non-200",
			"url", url, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
