package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelBuilder writes tabular report data into a single-sheet XLSX workbook
// held in memory.
type ExcelBuilder struct {
	file  *excelize.File
	sheet string
	row   int
}

func NewExcelBuilder(sheetName string) *ExcelBuilder {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)
	return &ExcelBuilder{
		file:  f,
		sheet: sheetName,
		row:   1,
	}
}

// WriteHeader writes the column headers in bold on the current row.
func (b *ExcelBuilder) WriteHeader(headers []string) error {
	style, err := b.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, b.row)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := b.file.SetCellStyle(b.sheet, cell, cell, style); err != nil {
			return err
		}
	}
	b.row++
	return nil
}

// WriteRow appends one data row.
func (b *ExcelBuilder) WriteRow(values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, b.row)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	b.row++
	return nil
}

// SkipRow leaves one row blank, separating report sections.
func (b *ExcelBuilder) SkipRow() {
	b.row++
}

// Buffer finalizes the workbook and returns its bytes.
func (b *ExcelBuilder) Buffer() (*bytes.Buffer, error) {
	defer b.file.Close()
	return b.file.WriteToBuffer()
}
