// Package pipeline drives the product-extraction run: per-category URL
// discovery, sequential per-product processing and the shared result
// store the report is built from.
package pipeline

import (
	"context"
	"time"

	"product-scraper/internal/types"
)

// URLDiscoverer finds product URLs for one category.
type URLDiscoverer interface {
	Discover(ctx context.Context, categoryURL, siteName string) ([]string, error)
}

// ProductProcessor handles one product URL and reports success.
type ProductProcessor interface {
	Process(ctx context.Context, productURL, siteName, folderName string, rec *types.ResultRecord) bool
}

// SiteTally holds the per-site outcome counts for one run.
type SiteTally struct {
	SiteName  string
	Succeeded int
	Failed    int
}

// Summary aggregates the outcome of a full run.
type Summary struct {
	Tallies        []SiteTally
	TotalProcessed int
}

// Orchestrator iterates the configured category targets in order and runs
// discovery and processing for each, strictly sequentially. It owns the
// result store for the lifetime of the run.
type Orchestrator struct {
	discoverer URLDiscoverer
	processor  ProductProcessor
	store      *ResultStore
	logger     types.Logger
	now        func() time.Time
}

// NewOrchestrator creates an orchestrator with a fresh result store.
func NewOrchestrator(discoverer URLDiscoverer, processor ProductProcessor, logger types.Logger) *Orchestrator {
	return &Orchestrator{
		discoverer: discoverer,
		processor:  processor,
		store:      NewResultStore(),
		logger:     logger,
		now:        time.Now,
	}
}

// Store exposes the result store for the post-run report pass.
func (o *Orchestrator) Store() *ResultStore {
	return o.store
}

// Run processes every category target in input order. Each discovered URL
// gets its record created before processing begins, so a failure leaves a
// fully default row rather than a missing one. Discovery errors skip the
// category; per-product failures never stop the run.
func (o *Orchestrator) Run(ctx context.Context, targets []types.CategoryTarget) (*Summary, error) {
	summary := &Summary{}

	for _, target := range targets {
		o.logger.Infof("[%s] Collecting product URLs for category %q...", target.SiteName, target.CategoryName)

		urls, err := o.discoverer.Discover(ctx, target.CategoryURL, target.SiteName)
		if err != nil {
			o.logger.Errorf("[%s] URL discovery failed: %v", target.SiteName, err)
			continue
		}

		o.logger.Infof("[%s] Collected %d product URLs", target.SiteName, len(urls))
		o.logger.Infof("[%s] Collecting product details...", target.SiteName)

		tally := SiteTally{SiteName: target.SiteName}
		for i, url := range urls {
			folderName := o.now().Format("20060102150405")
			rec := o.store.Create(url, target.SiteName, folderName)

			o.logger.Debugf("[%s] Processing product %d/%d: %s", target.SiteName, i+1, len(urls), url)
			if o.processor.Process(ctx, url, target.SiteName, folderName, rec) {
				tally.Succeeded++
			} else {
				tally.Failed++
			}
		}

		summary.Tallies = append(summary.Tallies, tally)
		summary.TotalProcessed += len(urls)

		o.logger.Infof("[%s] Done: %d succeeded, %d failed", target.SiteName, tally.Succeeded, tally.Failed)
	}

	o.logger.Infof("All sites done, %d products processed in total", summary.TotalProcessed)
	return summary, nil
}
