package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"product-scraper/internal/types"
)

// ImageClient fetches raw image bytes with a bounded timeout. A failed
// fetch is reported to the caller and never retried; image downloads are
// best-effort by design.
type ImageClient struct {
	client *http.Client
	config *types.Config
	logger types.Logger
}

// NewImageClient creates an image client with the given configuration.
func NewImageClient(config *types.Config, logger types.Logger) *ImageClient {
	client := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &ImageClient{
		client: client,
		config: config,
		logger: logger,
	}
}

// Fetch performs a single GET for the image at url and returns its bytes.
func (c *ImageClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	c.logger.Debugf("Fetched %d bytes from %s", len(body), url)
	return body, nil
}
