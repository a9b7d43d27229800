package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-scraper/internal/types"
)

// fakeGenerator returns a canned response and remembers the prompt.
type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

const sampleResponse = `{
	"price": 1250000,
	"market_price": "1,890,000",
	"brand": "Gucci",
	"first_category": "가방",
	"second_category": "백팩",
	"gender": "남성,여성",
	"colors": ["블랙", "브라운"],
	"sizes": ["S(90)", "M(95)"],
	"kor_name": "[GUCCI] 백팩",
	"eng_name": "[GUCCI] Backpack",
	"genuine_number": "547965"
}`

func TestExtract_ParsesResponse(t *testing.T) {
	gen := &fakeGenerator{response: sampleResponse}
	e := New(gen, logrus.New())

	fields, err := e.Extract(context.Background(), "<html><body>product</body></html>")
	require.NoError(t, err)

	assert.Equal(t, 1250000, fields.Price)
	assert.Equal(t, "Gucci", fields.Brand)
	assert.Equal(t, "가방", fields.FirstCategory)
	assert.Equal(t, "백팩", fields.SecondCategory)
	assert.Equal(t, []string{"S(90)", "M(95)"}, fields.Sizes)
}

func TestExtract_MalformedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "sorry, I could not parse that page"}
	e := New(gen, logrus.New())

	fields, err := e.Extract(context.Background(), "<html></html>")
	assert.Nil(t, fields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestExtract_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	e := New(gen, logrus.New())

	_, err := e.Extract(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestBuildPrompt_EmbedsConstraints(t *testing.T) {
	html := "<html><body>unique-page-marker</body></html>"
	prompt := BuildPrompt(html)

	assert.Contains(t, prompt, html)
	// Brand vocabulary, first and last entries
	assert.Contains(t, prompt, `"ASK YOURSELF"`)
	assert.Contains(t, prompt, `"OTHERS"`)
	// Category taxonomy with second-level lists
	assert.Contains(t, prompt, `"가방"`)
	assert.Contains(t, prompt, `"백팩"`)
	// Field contract
	assert.Contains(t, prompt, "price : int")
	assert.Contains(t, prompt, "genuine_number : string")
	assert.Contains(t, prompt, "'남성,여성'")
}

func TestStripBracketPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"with prefix", "[GUCCI] 백팩", "백팩"},
		{"without prefix", "구찌 백팩", "구찌 백팩"},
		{"empty brackets", "[] 백팩", "백팩"},
		{"no trailing space", "[GUCCI]백팩", "[GUCCI]백팩"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBracketPrefix(tt.in))
		})
	}
}

func TestJoinSizes_RewritesNotation(t *testing.T) {
	assert.Equal(t, "S[90],M[95]", JoinSizes([]string{"S(90)", "M(95)"}))
	assert.Equal(t, "FREE", JoinSizes([]string{"FREE"}))
	assert.Equal(t, "", JoinSizes(nil))
}

func TestApplyFields(t *testing.T) {
	rec := types.NewResultRecord("https://shop.example.com/item?it_id=1", "퀄엔드", "20240101120000")
	fields := &types.ExtractedFields{
		Price:          99000,
		MarketPrice:    "120,000",
		Brand:          "Gucci",
		FirstCategory:  "가방",
		SecondCategory: "백팩",
		Gender:         "여성",
		Colors:         []string{"블랙", "레드"},
		Sizes:          []string{"S(90)", "M(95)"},
		KorName:        "[GUCCI] 백팩",
		EngName:        "[GUCCI] Backpack",
		GenuineNumber:  "547965",
	}

	ApplyFields(rec, fields)

	assert.Equal(t, "99000", rec.UnitPrice)
	assert.Equal(t, "120,000", rec.StorePrice)
	assert.Equal(t, "GUCCI", rec.Brand, "brand is upper-cased")
	assert.Equal(t, "백팩", rec.KorName, "bracket prefix is stripped")
	assert.Equal(t, "Backpack", rec.EngName)
	assert.Equal(t, "블랙,레드", rec.OptionColor)
	assert.Equal(t, "S[90],M[95]", rec.OptionSize)
	assert.Equal(t, "547965", rec.ModelNumber)
	// Defaults survive field application
	assert.Equal(t, types.DefaultShippingMethod, rec.ShippingMethod)
	assert.Equal(t, types.DefaultPackaging, rec.Packaging)
}
