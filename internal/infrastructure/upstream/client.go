package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"doctor-directory/config"
	"doctor-directory/internal/domain/repository"
)

// maxBodySize caps the upstream payload; the list is a few hundred records.
const maxBodySize = 16 << 20

type Client interface {
	FetchDoctors(ctx context.Context) ([]byte, error)
}

type HTTPClient struct {
	url        string
	httpClient *http.Client
}

func NewHTTPClient(cfg config.UpstreamConfig) *HTTPClient {
	return &HTTPClient{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchDoctors issues the single GET for the doctor list and returns the raw
// body. Transport failures and non-2xx statuses are *repository.FetchError.
func (c *HTTPClient) FetchDoctors(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &repository.FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &repository.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &repository.FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &repository.FetchError{Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}
