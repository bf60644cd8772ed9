package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// wordDocumentEntry is the main document part of a word-processor archive.
const wordDocumentEntry = "word/document.xml"

// WordDocReader extracts raw text from a zip-structured word-processor
// document (docx).
type WordDocReader struct{}

// NewWordDocReader creates a word-document extractor.
func NewWordDocReader() *WordDocReader {
	return &WordDocReader{}
}

// ExtractText returns the document body's text, or an empty string when the
// archive carries no document part.
func (r *WordDocReader) ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open word document archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != wordDocumentEntry {
			continue
		}
		content, err := readZipEntry(f)
		if err != nil {
			return "", fmt.Errorf("read document entry: %w", err)
		}
		return xmlText(content), nil
	}
	return "", nil
}
