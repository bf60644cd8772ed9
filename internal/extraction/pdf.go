package extraction

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFReader extracts embedded text from PDF bytes. Scanned PDFs without a
// text layer yield an empty string, which the processor's length guard then
// rejects.
type PDFReader struct{}

// NewPDFReader creates a PDF text extractor.
func NewPDFReader() *PDFReader {
	return &PDFReader{}
}

// ExtractText returns the document's plain text, or an empty string when the
// document carries none.
func (r *PDFReader) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
