package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
)

// maxBodySize bounds the dataset document; the real one is a few kilobytes.
const maxBodySize = 4 << 20

var _ output.DatasetSource = (*Fetcher)(nil)

// Fetcher downloads the dataset document from a fixed URL.
type Fetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewFetcher returns a Fetcher for url. Each Fetch is bounded by timeout.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url:     url,
		client:  &http.Client{},
		timeout: timeout,
	}
}

// SetTimeout sets the bound applied to each Fetch.
func (f *Fetcher) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

// Fetch performs one GET and decodes the body. Timeouts, transport errors,
// non-2xx statuses and malformed JSON are all returned as errors.
func (f *Fetcher) Fetch(ctx context.Context) (*entities.CampaignDataset, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch dataset: %w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	var dataset entities.CampaignDataset
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &dataset, nil
}
