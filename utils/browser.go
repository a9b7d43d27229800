package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/chromedp/chromedp"

	"product-scraper/internal/types"
)

// ErrRenderTimeout is returned when a page fails to produce a body element
// within the configured render bound.
var ErrRenderTimeout = errors.New("page render timed out")

// BrowserClient drives a headless browser to fetch fully rendered pages.
// Every call acquires its own browser context and releases it before
// returning, so one renderer session exists per operation at most.
type BrowserClient struct {
	config   *types.Config
	logger   types.Logger
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowserClient creates a browser client with the allocator options the
// scraper runs with: fixed Chrome identity, certificate-error tolerance and
// suppressed automation signatures.
func NewBrowserClient(config *types.Config, logger types.Logger) *BrowserClient {
	// Suppress chromedp debug logging
	log.SetOutput(io.Discard)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.UserAgent(config.UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserClient{
		config:   config,
		logger:   logger,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// RenderCategoryPage loads a category listing URL, waits for it to settle,
// then scrolls to the bottom until two consecutive height measurements are
// equal (infinite-scroll pagination) and returns the rendered markup.
// MaxScrolls bounds the loop as a safety rail; 0 keeps it unbounded.
func (b *BrowserClient) RenderCategoryPage(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(b.config.SettleDelay),
	); err != nil {
		return "", fmt.Errorf("failed to load category page: %w", err)
	}

	var lastHeight int64
	if err := chromedp.Run(browserCtx,
		chromedp.Evaluate(`document.body.scrollHeight`, &lastHeight),
	); err != nil {
		return "", fmt.Errorf("failed to measure page height: %w", err)
	}

	for round := 0; b.config.MaxScrolls == 0 || round < b.config.MaxScrolls; round++ {
		var newHeight int64
		err := chromedp.Run(browserCtx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight); undefined`, nil),
			chromedp.Sleep(b.config.ScrollDelay),
			chromedp.Evaluate(`document.body.scrollHeight`, &newHeight),
		)
		if err != nil {
			return "", fmt.Errorf("failed to scroll category page: %w", err)
		}
		if newHeight == lastHeight {
			break
		}
		lastHeight = newHeight
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("failed to read category page markup: %w", err)
	}

	b.logger.Debugf("Rendered category page %s (%d bytes)", url, len(html))
	return html, nil
}

// RenderProductPage loads a product detail URL and waits, within the
// configured bound, for the page body to be present before returning the
// rendered markup. A missed bound surfaces as ErrRenderTimeout.
func (b *BrowserClient) RenderProductPage(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.config.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", ErrRenderTimeout, url)
		}
		return "", fmt.Errorf("failed to render product page: %w", err)
	}

	b.logger.Debugf("Rendered product page %s (%d bytes)", url, len(html))
	return html, nil
}

// Close releases the underlying browser allocator.
func (b *BrowserClient) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}
