// Package extractor turns rendered product-page markup into the typed
// field set the report needs, by prompting a generative AI capability with
// a schema the closed vocabularies constrain.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"product-scraper/internal/types"
	"product-scraper/internal/vocab"
)

// ErrInvalidResponse is returned when the AI capability's answer is not a
// single valid JSON object matching the field schema.
var ErrInvalidResponse = errors.New("extraction response is not valid JSON")

// TextGenerator is the AI capability boundary: prompt in, text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Extractor builds the extraction prompt and parses responses.
type Extractor struct {
	gen    TextGenerator
	logger types.Logger
}

// New creates an extractor backed by the given text generator.
func New(gen TextGenerator, logger types.Logger) *Extractor {
	return &Extractor{
		gen:    gen,
		logger: logger,
	}
}

// Extract prompts the AI capability with the page markup and parses the
// JSON answer into ExtractedFields. Any transport or parse failure wraps
// ErrInvalidResponse so callers can treat both as one error kind.
func (e *Extractor) Extract(ctx context.Context, html string) (*types.ExtractedFields, error) {
	prompt := BuildPrompt(html)

	response, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var fields types.ExtractedFields
	if err := json.Unmarshal([]byte(response), &fields); err != nil {
		e.logger.Debugf("Unparseable extraction response: %s", response)
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &fields, nil
}

// BuildPrompt assembles the schema-constrained prompt: the raw markup, the
// full brand allow-list, the two-level category taxonomy and a
// field-by-field output contract.
func BuildPrompt(html string) string {
	var sb strings.Builder

	sb.WriteString("```html_data\n")
	sb.WriteString(html)
	sb.WriteString("\n```\n\n")

	sb.WriteString("```available_brand_data\n")
	brands, _ := json.MarshalIndent(vocab.Brands, "", "    ")
	sb.Write(brands)
	sb.WriteString("\n```\n\n")

	sb.WriteString("```available_category_data\n{\n")
	for i, first := range vocab.FirstCategories {
		seconds, _ := json.Marshal(vocab.Categories[first])
		fmt.Fprintf(&sb, "    %q: %s", first, seconds)
		if i < len(vocab.FirstCategories)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n```\n\n")

	sb.WriteString(`Process the given html_data into a comma-separated dict format JSON data containing the following elements.

price : int (상품의 판매 가격),
market_price : str (상품의 정품 가격 또는 매장 가격. 찾을 수 없다면 공백),
brand : string (상품의 영어 브랜드 이름. 반드시 available_brand_data 에 포함되어야 함. 포함되지 않는다면 공백),
first_category : string (상품의 1차 카테고리 분류. 반드시 available_category_data의 key 에 포함되어야 함. 포함되지 않는다면 공백),
second_category : string (상품의 2차 카테고리 분류. 반드시 first_category로 고른 key의 list에 포함되어야 함. 포함되지 않거나 first_category가 공백이라면 공백),
gender : string (상품의 대상 성별. '남성', '여성', '남성,여성' 중 하나. 정확하지 않다면 '남성,여성'),
colors : list(string) (상품의 색상 옵션값. 찾을 수 없다면 []),
sizes : list(string) (상품의 사이즈 옵션값. 찾을 수 없다면 []),
kor_name : string (상품의 한글 이름. 이름 앞에 브랜드가 딱 한번 적혀 있어야 하며 반드시 한글이어야 함),
eng_name : string (상품의 한글 이름의 영어 번역 결과. 이름 앞에 브랜드가 딱 한번 적혀 있어야 하며 반드시 영어여야 함),
genuine_number : string (상품의 정품 코드. 정품 번호는 제품 이름에 의미 없는 문자와 숫자의 조합으로 표시될 수 있음. 찾을 수 없다면 공백)
`)

	return sb.String()
}

var bracketPrefix = regexp.MustCompile(`^\[.*?\] (.*)`)

// StripBracketPrefix removes a leading "[...] " token from a product name.
// Names without the prefix are returned unchanged.
func StripBracketPrefix(name string) string {
	if m := bracketPrefix.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

var sizeNotation = strings.NewReplacer("(", "[", ")", "]")

// JoinSizes joins size options with commas and rewrites parenthesis
// notation to brackets, which the report's option columns require.
func JoinSizes(sizes []string) string {
	return sizeNotation.Replace(strings.Join(sizes, ","))
}

// JoinColors joins color options with commas.
func JoinColors(colors []string) string {
	return strings.Join(colors, ",")
}

// ApplyFields copies the extracted fields onto a result record, performing
// the per-field post-processing: bracket-prefix stripping on both names,
// brand upper-casing and the list joins.
func ApplyFields(rec *types.ResultRecord, fields *types.ExtractedFields) {
	rec.UnitPrice = fmt.Sprintf("%d", fields.Price)
	rec.StorePrice = fields.MarketPrice
	rec.Gender = fields.Gender
	rec.KorName = StripBracketPrefix(fields.KorName)
	rec.EngName = StripBracketPrefix(fields.EngName)
	rec.Brand = strings.ToUpper(fields.Brand)
	rec.FirstCategory = fields.FirstCategory
	rec.SecondCategory = fields.SecondCategory
	rec.ModelNumber = fields.GenuineNumber
	rec.OptionColor = JoinColors(fields.Colors)
	rec.OptionSize = JoinSizes(fields.Sizes)
}
