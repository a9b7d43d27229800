package discovery

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-scraper/internal/types"
)

const categoryURL = "https://shop.example.com/list?ca_id=10"

// fakeRenderer serves canned category markup and counts calls.
type fakeRenderer struct {
	html  string
	err   error
	calls int
}

func (f *fakeRenderer) RenderCategoryPage(ctx context.Context, url string) (string, error) {
	f.calls++
	return f.html, f.err
}

func productCard(href string) string {
	return fmt.Sprintf(`<div class="col-sm-3"><a href="%s"><img src="x.jpg"></a></div>`, href)
}

func categoryHTML(cards ...string) string {
	return "<html><body>" + strings.Join(cards, "\n") + "</body></html>"
}

func newTestDiscoverer(r CategoryRenderer) *Discoverer {
	return NewDiscoverer(r, types.DefaultConfig(), logrus.New())
}

func TestParseSiteKind(t *testing.T) {
	assert.Equal(t, SiteQualend, ParseSiteKind("퀄엔드"))
	assert.Equal(t, SiteQualend, ParseSiteKind("퀄엔드 신상"))
	assert.Equal(t, SiteNameValue, ParseSiteKind("네임밸류"))
	assert.Equal(t, SiteByHeaven, ParseSiteKind("바이헤븐"))
	assert.Equal(t, SiteUnknown, ParseSiteKind("somewhere else"))
}

func TestExtractProductURLs_ResolvesAndFilters(t *testing.T) {
	html := categoryHTML(
		productCard("/shop/item.php?it_id=100"),
		productCard("https://shop.example.com/shop/item.php?it_id=200"),
		productCard("/about-us"), // no it_id token, must be ignored
	)

	urls, err := ExtractProductURLs(html, categoryURL, SiteQualend)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://shop.example.com/shop/item.php?it_id=100",
		"https://shop.example.com/shop/item.php?it_id=200",
	}, urls)
}

func TestExtractProductURLs_Deduplicates(t *testing.T) {
	html := categoryHTML(
		productCard("/shop/item.php?it_id=100"),
		productCard("https://shop.example.com/shop/item.php?it_id=100"),
		productCard("/shop/item.php?it_id=300"),
		productCard("/shop/item.php?it_id=100"),
	)

	urls, err := ExtractProductURLs(html, categoryURL, SiteQualend)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Equal(t, "https://shop.example.com/shop/item.php?it_id=100", urls[0])
	assert.Equal(t, "https://shop.example.com/shop/item.php?it_id=300", urls[1])
}

func TestExtractProductURLs_Idempotent(t *testing.T) {
	var cards []string
	for i := 0; i < 20; i++ {
		cards = append(cards, productCard(fmt.Sprintf("/shop/item.php?it_id=%d", i%7)))
	}
	html := categoryHTML(cards...)

	first, err := ExtractProductURLs(html, categoryURL, SiteQualend)
	require.NoError(t, err)
	second, err := ExtractProductURLs(html, categoryURL, SiteQualend)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	seen := map[string]bool{}
	for _, u := range first {
		assert.False(t, seen[u], "duplicate URL %s", u)
		seen[u] = true
	}
}

func TestDiscover_CapsAtMaxProducts(t *testing.T) {
	var cards []string
	for i := 0; i < 150; i++ {
		cards = append(cards, productCard(fmt.Sprintf("/shop/item.php?it_id=%d", i)))
	}
	renderer := &fakeRenderer{html: categoryHTML(cards...)}

	urls, err := newTestDiscoverer(renderer).Discover(context.Background(), categoryURL, "퀄엔드")
	require.NoError(t, err)
	assert.Len(t, urls, 100)
	assert.Equal(t, "https://shop.example.com/shop/item.php?it_id=0", urls[0])
	assert.Equal(t, "https://shop.example.com/shop/item.php?it_id=99", urls[99])
}

func TestDiscover_UnknownSiteYieldsNothing(t *testing.T) {
	renderer := &fakeRenderer{html: categoryHTML(productCard("/shop/item.php?it_id=1"))}

	urls, err := newTestDiscoverer(renderer).Discover(context.Background(), categoryURL, "unknown-shop")
	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.Zero(t, renderer.calls, "no renderer session for an unsupported site")
}

func TestDiscover_RegisteredSitesWithoutRules(t *testing.T) {
	renderer := &fakeRenderer{html: categoryHTML(productCard("/shop/item.php?it_id=1"))}
	d := newTestDiscoverer(renderer)

	for _, site := range []string{"네임밸류", "바이헤븐"} {
		urls, err := d.Discover(context.Background(), categoryURL, site)
		require.NoError(t, err)
		assert.Empty(t, urls)
	}
	assert.Zero(t, renderer.calls)
}

func TestDiscover_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: fmt.Errorf("browser crashed")}

	urls, err := newTestDiscoverer(renderer).Discover(context.Background(), categoryURL, "퀄엔드")
	assert.Error(t, err)
	assert.Empty(t, urls)
}
