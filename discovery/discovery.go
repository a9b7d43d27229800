// Package discovery turns a category listing page into an ordered,
// deduplicated, size-capped list of product detail URLs. Extraction rules
// are site-specific and keyed by a closed SiteKind variant; a site the
// variant does not know yields an empty list, not an error.
package discovery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"product-scraper/internal/types"
)

// SiteKind identifies one of the storefronts the discoverer knows how to
// walk. Adding a site means adding a variant and a case in extract; the
// compiler then points at every dispatch that needs updating.
type SiteKind int

const (
	SiteUnknown SiteKind = iota
	SiteQualend
	SiteNameValue
	SiteByHeaven
)

// String returns the site label used in logs.
func (k SiteKind) String() string {
	switch k {
	case SiteQualend:
		return "qualend"
	case SiteNameValue:
		return "namevalue"
	case SiteByHeaven:
		return "byheaven"
	default:
		return "unknown"
	}
}

// ParseSiteKind maps a configured site name onto a SiteKind. Matching is by
// substring so category files can carry decorated names like "퀄엔드 신상".
func ParseSiteKind(siteName string) SiteKind {
	switch {
	case strings.Contains(siteName, "퀄엔드"):
		return SiteQualend
	case strings.Contains(siteName, "네임밸류"):
		return SiteNameValue
	case strings.Contains(siteName, "바이헤븐"):
		return SiteByHeaven
	default:
		return SiteUnknown
	}
}

// CategoryRenderer is the slice of the page renderer the discoverer needs:
// a category URL in, fully rendered (post-scroll) markup out.
type CategoryRenderer interface {
	RenderCategoryPage(ctx context.Context, url string) (string, error)
}

// Discoverer finds product URLs for a category using site-specific rules.
type Discoverer struct {
	renderer CategoryRenderer
	config   *types.Config
	logger   types.Logger
}

// NewDiscoverer creates a discoverer backed by the given renderer.
func NewDiscoverer(renderer CategoryRenderer, config *types.Config, logger types.Logger) *Discoverer {
	return &Discoverer{
		renderer: renderer,
		config:   config,
		logger:   logger,
	}
}

// Discover returns up to MaxProducts unique product URLs for the category,
// in first-seen order. An unrecognized site returns an empty, nil-error
// result: not yet supported is not a failure. The renderer session is
// scoped to this call.
func (d *Discoverer) Discover(ctx context.Context, categoryURL, siteName string) ([]string, error) {
	kind := ParseSiteKind(siteName)
	if kind == SiteUnknown {
		d.logger.Warnf("Site %q is not supported yet, skipping discovery", siteName)
		return nil, nil
	}

	// NameValue and ByHeaven are registered but have no extraction rules
	// yet; they behave like unsupported sites for now.
	if kind != SiteQualend {
		d.logger.Warnf("Site %q (%s) has no extraction rules yet", siteName, kind)
		return nil, nil
	}

	html, err := d.renderer.RenderCategoryPage(ctx, categoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to render category page: %w", err)
	}

	urls, err := ExtractProductURLs(html, categoryURL, kind)
	if err != nil {
		return nil, err
	}

	if len(urls) > d.config.MaxProducts {
		urls = urls[:d.config.MaxProducts]
	}

	d.logger.Infof("Discovered %d product URLs for %q", len(urls), siteName)
	return urls, nil
}

// ExtractProductURLs pulls product detail links out of rendered category
// markup using the site's container and link rules, resolves them against
// base and deduplicates them preserving first-seen order. It does not apply
// the result cap; the caller owns that.
func ExtractProductURLs(html, base string, kind SiteKind) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse category markup: %w", err)
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid category URL %q: %w", base, err)
	}

	var candidates []string
	switch kind {
	case SiteQualend:
		candidates = extractQualendURLs(doc, baseURL)
	default:
		return nil, nil
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	return unique, nil
}

// extractQualendURLs applies the Qualend rules: product cards live in
// div.col-sm-3 containers and real product links carry an it_id query
// token.
func extractQualendURLs(doc *goquery.Document, base *url.URL) []string {
	var urls []string
	doc.Find("div.col-sm-3").Each(func(i int, container *goquery.Selection) {
		container.Find("a[href*='it_id']").EachWithBreak(func(j int, link *goquery.Selection) bool {
			href, exists := link.Attr("href")
			if !exists || strings.TrimSpace(href) == "" {
				return true
			}
			ref, err := url.Parse(href)
			if err != nil {
				return true
			}
			urls = append(urls, base.ResolveReference(ref).String())
			return false // one link per product card
		})
	})
	return urls
}
