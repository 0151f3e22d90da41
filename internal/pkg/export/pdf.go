package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFBuilder writes tabular report data into an A4 landscape PDF held in
// memory.
type PDFBuilder struct {
	pdf    *gofpdf.Fpdf
	widths []float64
}

func NewPDFBuilder(title string) *PDFBuilder {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return &PDFBuilder{pdf: pdf}
}

// WriteHeader writes the column headers and fixes the column widths for all
// following rows. Widths are in millimeters.
func (b *PDFBuilder) WriteHeader(headers []string, widths []float64) {
	b.widths = widths
	b.pdf.SetFont("Arial", "B", 10)
	b.pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		b.pdf.CellFormat(b.widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)
}

// WriteRow appends one data row using the widths set by WriteHeader.
func (b *PDFBuilder) WriteRow(values []string) {
	b.pdf.SetFont("Arial", "", 9)
	for i, value := range values {
		b.pdf.CellFormat(b.widths[i], 7, value, "1", 0, "L", false, 0, "")
	}
	b.pdf.Ln(-1)
}

// WriteSection starts a new titled section within the document.
func (b *PDFBuilder) WriteSection(title string) {
	b.pdf.Ln(4)
	b.pdf.SetFont("Arial", "B", 12)
	b.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

// Buffer finalizes the document and returns its bytes.
func (b *PDFBuilder) Buffer() (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return &buf, nil
}
