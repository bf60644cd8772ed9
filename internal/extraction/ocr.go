package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TesseractOCR recognizes text in image files by shelling out to the
// tesseract binary with a fixed language.
type TesseractOCR struct {
	binary   string
	language string
	runner   Runner
	logger   *slog.Logger
}

// NewTesseractOCR creates an OCR extractor. Empty binary or language fall
// back to "tesseract" and "eng".
func NewTesseractOCR(binary, language string, logger *slog.Logger) *TesseractOCR {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractOCR{binary: binary, language: language, runner: execRunner{}, logger: logger}
}

// Recognize runs tesseract over the image at path and returns the recognized
// text, possibly empty.
func (o *TesseractOCR) Recognize(ctx context.Context, path string) (string, error) {
	start := time.Now()
	// tesseract <file> stdout -l <lang>
	out, errb, err := o.runner.Run(ctx, o.binary, path, "stdout", "-l", o.language)
	if err != nil {
		o.logger.Error("ocr failed",
			"path", path,
			"duration_ms", time.Since(start).Milliseconds(),
			"stderr", truncate(string(errb), 8<<10),
		)
		return "", fmt.Errorf("tesseract: %w", err)
	}
	o.logger.Debug("ocr ok",
		"path", path,
		"duration_ms", time.Since(start).Milliseconds(),
		"chars", len(out),
	)
	return string(out), nil
}
