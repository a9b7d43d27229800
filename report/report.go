// Package report validates accumulated result records against the closed
// vocabularies and writes one styled spreadsheet per site, with the first
// accepted product image embedded as a thumbnail.
package report

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/xuri/excelize/v2"
	_ "golang.org/x/image/webp"

	"product-scraper/internal/types"
	"product-scraper/internal/vocab"
)

const (
	sheetName     = "Sheet1"
	thumbnailCol  = "E"
	thumbnailSize = 80 // embedded thumbnail edge length in pixels
	thumbRowH     = 65
)

// Per-column width overrides, matching the layout the report consumers
// work with.
var columnWidths = map[string]float64{
	"B": 18, "E": 12, "F": 8.25, "G": 11.25, "H": 12.75,
	"K": 12.75, "L": 15, "N": 39, "O": 22.5,
	"P": 12, "Q": 12, "R": 12, "S": 12, "T": 12, "U": 12,
	"V": 12, "W": 12, "X": 12,
	"Y": 20, "Z": 20,
	"AA": 12, "AB": 12, "AC": 12, "AD": 12,
}

// ValidateRecords blanks any brand or category value that falls outside
// the closed vocabularies. Second-level categories are checked against the
// flattened list only, not against the record's first-level choice; report
// consumers depend on that looseness, so it is preserved.
func ValidateRecords(records []*types.ResultRecord) {
	for _, rec := range records {
		if !vocab.IsBrand(rec.Brand) {
			rec.Brand = ""
		}
		if !vocab.IsFirstCategory(rec.FirstCategory) {
			rec.FirstCategory = ""
		}
		if !vocab.IsSecondCategory(rec.SecondCategory) {
			rec.SecondCategory = ""
		}
	}
}

// WriteReports emits one spreadsheet per non-empty site group into
// outputDir. The filename encodes site name, record count and the run
// timestamp. It returns the paths of the files written.
func WriteReports(groups map[string][]*types.ResultRecord, outputDir, timestamp string, logger types.Logger) ([]string, error) {
	var written []string
	for siteName, records := range groups {
		if len(records) == 0 {
			continue
		}

		filename := fmt.Sprintf("result_%s_%d_%s.xlsx", siteName, len(records), timestamp)
		path := filepath.Join(outputDir, filename)

		if err := writeSiteReport(path, records); err != nil {
			return written, fmt.Errorf("failed to write report for %s: %w", siteName, err)
		}

		logger.Infof("Wrote report %s (%d rows)", path, len(records))
		written = append(written, path)
	}
	return written, nil
}

// writeSiteReport builds a single site's spreadsheet: styled header row,
// one styled data row per record, embedded thumbnails and the fixed
// column-width overrides.
func writeSiteReport(path string, records []*types.ResultRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Font: &excelize.Font{Family: "Arial"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &types.ReportColumns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		rowNum := i + 2
		values := rec.Row()

		if rec.Thumbnail != "" {
			if err := embedThumbnail(f, rec.Thumbnail, rowNum); err == nil {
				// The picture replaces the textual path in the cell.
				values[4] = ""
			}
		}

		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(types.ReportColumns))
	lastCell := fmt.Sprintf("%s%d", lastCol, len(records)+1)
	if err := f.SetCellStyle(sheetName, "A1", lastCell, styleID); err != nil {
		return fmt.Errorf("failed to style cells: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

// embedThumbnail places the image at imgPath into the thumbnail column of
// rowNum, scaled to a fixed pixel square, and raises the row to fit. A
// missing or unreadable file leaves the row untouched.
func embedThumbnail(f *excelize.File, imgPath string, rowNum int) error {
	file, err := os.Open(imgPath)
	if err != nil {
		return err
	}
	cfg, _, err := image.DecodeConfig(file)
	file.Close()
	if err != nil {
		return err
	}

	opts := &excelize.GraphicOptions{
		ScaleX: thumbnailSize / float64(cfg.Width),
		ScaleY: thumbnailSize / float64(cfg.Height),
	}

	cell := fmt.Sprintf("%s%d", thumbnailCol, rowNum)
	if err := f.AddPicture(sheetName, cell, imgPath, opts); err != nil {
		return err
	}
	return f.SetRowHeight(sheetName, rowNum, thumbRowH)
}
