package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HTTPClient talks to the identity service's internal REST surface. Every
// call carries a bounded timeout so a slow collaborator cannot pin a
// request worker.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (c *HTTPClient) VendorExists(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	return c.exists(ctx, "vendors", vendorID)
}

func (c *HTTPClient) ClientExists(ctx context.Context, clientID uuid.UUID) (bool, error) {
	return c.exists(ctx, "clients", clientID)
}

func (c *HTTPClient) exists(ctx context.Context, kind string, id uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/internal/%s/%s", c.baseURL, kind, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}
}

var _ Verifier = (*HTTPClient)(nil)
