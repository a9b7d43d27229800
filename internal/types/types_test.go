package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResultRecord(t *testing.T) {
	rec := NewResultRecord("https://shop/item?it_id=1", "퀄엔드", "20240101120000")

	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, `=HYPERLINK("https://shop/item?it_id=1", "20240101120000")`, rec.ProductRef)
	assert.Equal(t, "퀄엔드", rec.Vendor)
	assert.Equal(t, DefaultShippingMethod, rec.ShippingMethod)
	assert.Equal(t, DefaultPackaging, rec.Packaging)
	assert.Empty(t, rec.Brand)
	assert.Empty(t, rec.Thumbnail)
}

func TestRowMatchesColumnLayout(t *testing.T) {
	rec := NewResultRecord("u", "vendor", "f")
	row := rec.Row()

	assert.Len(t, row, len(ReportColumns))
	assert.Equal(t, rec.Status, row[0])
	assert.Equal(t, rec.ProductRef, row[1])
	assert.Equal(t, rec.Vendor, row[2])
	assert.Equal(t, rec.Thumbnail, row[4])
	assert.Equal(t, rec.ShippingMethod, row[16])
	assert.Equal(t, rec.Packaging, row[18])
}
