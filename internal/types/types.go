package types

import (
	"fmt"
	"time"
)

// Outcome values recorded per product URL.
const (
	StatusPending = ""
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Report-only constant defaults filled in at record creation.
const (
	DefaultShippingMethod = "항공특송"
	DefaultPackaging      = "풀박스"
)

// CategoryTarget is one row of the category input file: which site to
// scrape, the human-readable category label and the category listing URL.
// Immutable once loaded.
type CategoryTarget struct {
	SiteName     string
	CategoryName string
	CategoryURL  string
}

// ExtractedFields is the parsed output of the AI capability for a single
// product page. It is transient: consumed into a ResultRecord immediately
// after extraction.
type ExtractedFields struct {
	Price          int      `json:"price"`
	MarketPrice    string   `json:"market_price"`
	Brand          string   `json:"brand"`
	FirstCategory  string   `json:"first_category"`
	SecondCategory string   `json:"second_category"`
	Gender         string   `json:"gender"`
	Colors         []string `json:"colors"`
	Sizes          []string `json:"sizes"`
	KorName        string   `json:"kor_name"`
	EngName        string   `json:"eng_name"`
	GenuineNumber  string   `json:"genuine_number"`
}

// ResultRecord accumulates every report field for one discovered product
// URL. One record exists per URL, created before processing starts and
// mutated in place by the product processor; it is never deleted.
type ResultRecord struct {
	Status         string
	ProductRef     string // =HYPERLINK formula pointing back at the product page
	Vendor         string
	UnitPrice      string
	Thumbnail      string // path of the first accepted image, blanked after embedding
	Category1      string
	FirstCategory  string // report column "2차"
	SecondCategory string // report column "3차"
	Category4      string
	Filter         string
	Gender         string
	Brand          string
	SubBrand       string
	KorName        string
	EngName        string
	ModelNumber    string
	ShippingMethod string
	Material       string
	Packaging      string
	StorePrice     string
	SalePrice1     string
	SalePrice2     string
	SalePrice3     string
	OptionGrade    string
	OptionSize     string
	OptionColor    string
	OptionHeel     string
	OptionBuckle   string
	OptionPlating  string
	OptionBand     string
}

// NewResultRecord returns a record pre-populated with the constant report
// defaults. folderName doubles as the visible hyperlink label.
func NewResultRecord(url, siteName, folderName string) *ResultRecord {
	return &ResultRecord{
		Status:         StatusPending,
		ProductRef:     fmt.Sprintf(`=HYPERLINK("%s", "%s")`, url, folderName),
		Vendor:         siteName,
		ShippingMethod: DefaultShippingMethod,
		Packaging:      DefaultPackaging,
	}
}

// ReportColumns is the fixed header row of the per-site spreadsheet, in
// column order. The labels are what the downstream report consumers expect.
var ReportColumns = []string{
	"결과",
	"상품넘버",
	"거래처",
	"단가",
	"이미지",
	"1차",
	"2차",
	"3차",
	"4차",
	"필터",
	"성별",
	"브랜드",
	"2차 브랜드",
	"상품명",
	"영문명",
	"추가 정보\n모델명",
	"추가 정보\n배송방법",
	"추가 정보\n소재",
	"추가 정보\n구성품",
	"매장가",
	"판매가1",
	"판매가2",
	"판매가3",
	"필수옵션\n등급선택",
	"필수옵션\n사이즈",
	"필수옵션\n색상",
	"필수옵션\n굽높이",
	"필수옵션\n버클",
	"필수옵션\n도금방식",
	"필수옵션\n밴드",
}

// Row returns the record's values in ReportColumns order.
func (r *ResultRecord) Row() []string {
	return []string{
		r.Status,
		r.ProductRef,
		r.Vendor,
		r.UnitPrice,
		r.Thumbnail,
		r.Category1,
		r.FirstCategory,
		r.SecondCategory,
		r.Category4,
		r.Filter,
		r.Gender,
		r.Brand,
		r.SubBrand,
		r.KorName,
		r.EngName,
		r.ModelNumber,
		r.ShippingMethod,
		r.Material,
		r.Packaging,
		r.StorePrice,
		r.SalePrice1,
		r.SalePrice2,
		r.SalePrice3,
		r.OptionGrade,
		r.OptionSize,
		r.OptionColor,
		r.OptionHeel,
		r.OptionBuckle,
		r.OptionPlating,
		r.OptionBand,
	}
}

// Config holds the runtime configuration for the scraper.
type Config struct {
	APIKey       string        // generative AI API key
	Model        string        // generative AI model identifier
	Timeout      time.Duration // page render / image fetch bound
	SettleDelay  time.Duration // initial wait after loading a category page
	ScrollDelay  time.Duration // wait between scroll rounds
	MaxScrolls   int           // safety cap on scroll rounds, 0 = unbounded
	MaxProducts  int           // per-category cap on discovered URLs
	MinImageSize int           // minimum accepted image height in pixels
	ImagesDir    string        // root directory for downloaded images
	OutputDir    string        // directory for spreadsheet reports
	UserAgent    string
}

// DefaultConfig returns the configuration matching the reference scraper
// behavior.
func DefaultConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		SettleDelay:  5 * time.Second,
		ScrollDelay:  2 * time.Second,
		MaxScrolls:   50,
		MaxProducts:  100,
		MinImageSize: 200,
		ImagesDir:    "images",
		OutputDir:    ".",
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/107.0.0.0 Safari/537.36",
	}
}

// Logger defines the logging interface used across packages.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
