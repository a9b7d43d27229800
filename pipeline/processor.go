package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"product-scraper/extractor"
	"product-scraper/internal/types"
	"product-scraper/utils"
)

// ProductRenderer is the slice of the page renderer the processor needs.
type ProductRenderer interface {
	RenderProductPage(ctx context.Context, url string) (string, error)
}

// ImageFetcher fetches raw image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FieldParser is the structured-extraction boundary.
type FieldParser interface {
	Extract(ctx context.Context, html string) (*types.ExtractedFields, error)
}

// URL fragments that mark an image as site chrome rather than a product
// photo: data URIs, vector assets, the hosting platform's CDN, theme
// assets and the usual icon/logo/banner naming.
var excludedImageFragments = []string{
	"facebook", "icon", "logo", "common", "banner", "brand",
}

// Processor handles one product URL end to end: render, harvest images,
// extract structured fields, record the outcome. Every error is downgraded
// to a per-URL failure at this boundary; Process never propagates one.
type Processor struct {
	renderer ProductRenderer
	fetcher  ImageFetcher
	parser   FieldParser
	config   *types.Config
	logger   types.Logger
}

// NewProcessor creates a product processor.
func NewProcessor(renderer ProductRenderer, fetcher ImageFetcher, parser FieldParser, config *types.Config, logger types.Logger) *Processor {
	return &Processor{
		renderer: renderer,
		fetcher:  fetcher,
		parser:   parser,
		config:   config,
		logger:   logger,
	}
}

// Process scrapes one product page and fills rec in place. It returns true
// only when a thumbnail was found and structured extraction succeeded; any
// other path marks the record as failed and returns false.
func (p *Processor) Process(ctx context.Context, productURL, siteName, folderName string, rec *types.ResultRecord) bool {
	html, err := p.renderer.RenderProductPage(ctx, productURL)
	if err != nil {
		p.logger.Warnf("Failed to render %s: %v", productURL, err)
		rec.Status = types.StatusFailure
		return false
	}

	thumbPath, err := p.harvestImages(ctx, html, productURL, siteName, folderName)
	if err != nil {
		p.logger.Warnf("Failed to harvest images for %s: %v", productURL, err)
		rec.Status = types.StatusFailure
		return false
	}

	// A product with no usable image is not worth extracting.
	if thumbPath == "" {
		p.logger.Debugf("No valid product image found for %s", productURL)
		rec.Status = types.StatusFailure
		return false
	}

	fields, err := p.parser.Extract(ctx, html)
	if err != nil {
		p.logger.Warnf("Extraction failed for %s: %v", productURL, err)
		rec.Status = types.StatusFailure
		return false
	}

	extractor.ApplyFields(rec, fields)
	rec.Thumbnail = thumbPath
	rec.Status = types.StatusSuccess
	return true
}

// harvestImages walks every img element in the markup, downloads the ones
// that pass the exclusion rules and the image validator, and persists them
// as {index}.jpg under the per-site/per-folder directory. Indices are
// contiguous over accepted images only. It returns the path of the first
// accepted image, or "" when none survived.
func (p *Processor) harvestImages(ctx context.Context, html, productURL, siteName, folderName string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse product markup: %w", err)
	}

	base, err := url.Parse(productURL)
	if err != nil {
		return "", fmt.Errorf("invalid product URL %q: %w", productURL, err)
	}

	folderPath := filepath.Join(p.config.ImagesDir, siteName, folderName)
	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image folder: %w", err)
	}

	thumbPath := ""
	idx := 0
	doc.Find("img").Each(func(i int, img *goquery.Selection) {
		src, exists := img.Attr("src")
		if !exists || strings.TrimSpace(src) == "" {
			return
		}

		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		imgURL := base.ResolveReference(ref).String()
		if isExcludedImage(imgURL) {
			return
		}

		data, err := p.fetcher.Fetch(ctx, imgURL)
		if err != nil {
			p.logger.Debugf("Skipping image %s: %v", imgURL, err)
			return
		}

		if !utils.IsValidImage(data) {
			return
		}

		imgPath := filepath.Join(folderPath, fmt.Sprintf("%d.jpg", idx))
		if err := os.WriteFile(imgPath, data, 0o644); err != nil {
			p.logger.Debugf("Failed to save image %s: %v", imgPath, err)
			return
		}

		if idx == 0 {
			thumbPath = imgPath
		}
		idx++
	})

	return thumbPath, nil
}

// isExcludedImage applies the image exclusion rules to an absolute URL.
func isExcludedImage(imgURL string) bool {
	lower := strings.ToLower(imgURL)
	if strings.Contains(imgURL, ";base64,") ||
		strings.HasSuffix(lower, ".svg") ||
		strings.Contains(imgURL, "//img.echosting.cafe24.com/") ||
		strings.Contains(imgURL, "/theme/") {
		return true
	}
	for _, fragment := range excludedImageFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
