package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"deliverycli/internal/dataset"
)

// LoadExcel reads the first sheet of a workbook into a dataset. The first
// row is the header; short rows are padded with empty (missing) cells.
// Fractional day-of-time cells survive as their serial string form and are
// recovered by the time standardization stage.
func LoadExcel(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	header := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		padded := make([]string, len(header))
		copy(padded, row)
		data = append(data, padded)
	}

	return fromRecords(header, data)
}
