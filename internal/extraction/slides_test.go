package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSlideArchive writes entries into a zip in map-iteration (i.e.
// unspecified) order, mimicking archives whose entries are not stored in
// slide order.
func buildSlideArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func slideXML(texts ...string) string {
	var b bytes.Buffer
	b.WriteString(`<p:sld xmlns:p="urn:p" xmlns:a="urn:a"><p:cSld>`)
	for _, txt := range texts {
		fmt.Fprintf(&b, "<a:t>%s</a:t>", txt)
	}
	b.WriteString(`</p:cSld></p:sld>`)
	return b.String()
}

func TestSlideArchiveReader_NumbersSlidesBySortedName(t *testing.T) {
	// slide10 must come after slide2: ordering is numeric, not lexical.
	data := buildSlideArchive(t, map[string]string{
		"ppt/slides/slide10.xml": slideXML("tenth"),
		"ppt/slides/slide2.xml":  slideXML("second"),
		"ppt/slides/slide1.xml":  slideXML("first"),
	})

	text, err := NewSlideArchiveReader().ExtractSlides(data)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: first\n\nSlide 2: second\n\nSlide 3: tenth\n\n", text)
}

func TestSlideArchiveReader_OmitsEmptySlides(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("content"),
		"ppt/slides/slide2.xml": slideXML(), // markup only, no text
		"ppt/slides/slide3.xml": slideXML("more content"),
	})

	text, err := NewSlideArchiveReader().ExtractSlides(data)
	require.NoError(t, err)
	assert.NotContains(t, text, "Slide 2:")
	assert.Contains(t, text, "Slide 1: content\n\n")
	assert.Contains(t, text, "Slide 3: more content\n\n")
}

func TestSlideArchiveReader_IgnoresNonSlideEntries(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"ppt/slides/slide1.xml":          slideXML("only slide"),
		"ppt/slides/_rels/slide1.rels":   "<Relationships/>",
		"ppt/notesSlides/notesSlide1.ml": "<notes>speaker notes</notes>",
		"docProps/core.xml":              "<props>author</props>",
	})

	text, err := NewSlideArchiveReader().ExtractSlides(data)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: only slide\n\n", text)
}

func TestSlideArchiveReader_CollapsesWhitespaceWithinSlide(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("line  one", "line\ntwo"),
	})

	text, err := NewSlideArchiveReader().ExtractSlides(data)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: line one line two\n\n", text)
}

func TestSlideArchiveReader_NotAnArchive(t *testing.T) {
	_, err := NewSlideArchiveReader().ExtractSlides([]byte("plainly not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open presentation archive")
}

func TestSlideArchiveReader_NoSlides(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"docProps/core.xml": "<props/>",
	})

	text, err := NewSlideArchiveReader().ExtractSlides(data)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestWordDocReader_ExtractsBodyText(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"word/document.xml": `<w:document xmlns:w="urn:w"><w:body><w:t>The quick</w:t><w:t>brown fox</w:t></w:body></w:document>`,
		"word/styles.xml":   "<styles/>",
	})

	text, err := NewWordDocReader().ExtractText(data)
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox", text)
}

func TestWordDocReader_MissingDocumentPart(t *testing.T) {
	data := buildSlideArchive(t, map[string]string{
		"word/styles.xml": "<styles/>",
	})

	text, err := NewWordDocReader().ExtractText(data)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestWordDocReader_NotAnArchive(t *testing.T) {
	_, err := NewWordDocReader().ExtractText([]byte{0x00, 0x01})
	require.Error(t, err)
}
