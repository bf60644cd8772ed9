package extraction

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "notes.pdf", want: FormatPDF},
		{path: "NOTES.PDF", want: FormatPDF},
		{path: "lecture.pptx", want: FormatPresentation},
		{path: "Lecture.PpTx", want: FormatPresentation},
		{path: "essay.docx", want: FormatWordDoc},
		{path: "scan.png", want: FormatImage},
		{path: "scan.JPG", want: FormatImage},
		{path: "photo.jpeg", want: FormatImage},
		{path: "readme.txt", want: FormatUnknown},
		{path: "archive.tar.gz", want: FormatUnknown},
		{path: "no-extension", want: FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestFallbackText(t *testing.T) {
	text := FallbackText("notes.txt")
	assert.Contains(t, text, ".txt")
	assert.Contains(t, text, "study summary")
	// The fallback must clear the downstream content guard on its own.
	assert.GreaterOrEqual(t, len(text), 20)

	assert.Contains(t, FallbackText("no-extension"), "(none)")
}

func TestDispatcher_UnknownSuffixNeverFails(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, nil, nil)

	// The file does not even need to exist: unknown formats never touch disk.
	text, err := d.Extract(context.Background(), "/nowhere/handout.txt")
	require.NoError(t, err)
	assert.Contains(t, text, ".txt")
}

func TestDispatcher_MissingFileIsAnError(t *testing.T) {
	d := NewDispatcher(NewPDFReader(), nil, nil, nil, nil)

	_, err := d.Extract(context.Background(), "/nowhere/missing.pdf")
	require.Error(t, err)
}

func TestDispatcher_RoutesPresentationToSlides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	require.NoError(t, os.WriteFile(path, buildSlideArchive(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("Intro to graphs"),
	}), 0o644))

	d := NewDispatcher(nil, NewSlideArchiveReader(), nil, nil, nil)
	text, err := d.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: Intro to graphs\n\n", text)
}

type stubOCR struct {
	text string
	err  error
	path string
}

func (s *stubOCR) Recognize(ctx context.Context, path string) (string, error) {
	s.path = path
	return s.text, s.err
}

func TestDispatcher_RoutesImagesToOCR(t *testing.T) {
	ocr := &stubOCR{text: "recognized words"}
	d := NewDispatcher(nil, nil, nil, ocr, nil)

	text, err := d.Extract(context.Background(), "/uploads/scan.png")
	require.NoError(t, err)
	assert.Equal(t, "recognized words", text)
	assert.Equal(t, "/uploads/scan.png", ocr.path)
}

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error
	args   []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.args = append([]string{name}, args...)
	return s.stdout, s.stderr, s.err
}

func TestTesseractOCR_Recognize(t *testing.T) {
	runner := &stubRunner{stdout: []byte("scanned text\n")}
	o := NewTesseractOCR("", "", nil)
	o.runner = runner

	text, err := o.Recognize(context.Background(), "/uploads/scan.png")
	require.NoError(t, err)
	assert.Equal(t, "scanned text\n", text)
	assert.Equal(t, []string{"tesseract", "/uploads/scan.png", "stdout", "-l", "eng"}, runner.args)
}

func TestTesseractOCR_Failure(t *testing.T) {
	runner := &stubRunner{stderr: []byte("could not open file"), err: errors.New("exit status 1")}
	o := NewTesseractOCR("tesseract", "deu", nil)
	o.runner = runner

	_, err := o.Recognize(context.Background(), "/uploads/scan.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
	assert.Equal(t, "-l", runner.args[3])
	assert.Equal(t, "deu", runner.args[4])
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", collapseWhitespace("  a \n\t b   c  "))
	assert.Equal(t, "", collapseWhitespace(" \n \t "))
}

func TestXMLText(t *testing.T) {
	data := []byte(`<root><p>Hello</p>
		<p>  spaced   out </p><empty/></root>`)
	assert.Equal(t, "Hello spaced out", xmlText(data))
}
