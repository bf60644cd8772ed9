package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// slideEntryPattern matches the slide XML entries of a presentation archive
// and captures the slide file's numeric index.
var slideEntryPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// SlideArchiveReader extracts slide text from a zip-structured presentation
// archive (pptx).
type SlideArchiveReader struct{}

// NewSlideArchiveReader creates a presentation-archive extractor.
func NewSlideArchiveReader() *SlideArchiveReader {
	return &SlideArchiveReader{}
}

type slideEntry struct {
	index int // numeric index from the entry name
	file  *zip.File
}

// ExtractSlides returns the cleaned text of each non-empty slide as
// "Slide <n>: <text>" blocks. Slides are ordered by the numeric index in
// their entry names, not by their position on disk, and <n> is the 1-based
// position in that sorted order.
func (r *SlideArchiveReader) ExtractSlides(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open presentation archive: %w", err)
	}

	var entries []slideEntry
	for _, f := range zr.File {
		m := slideEntryPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, slideEntry{index: idx, file: f})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	var b strings.Builder
	for n, entry := range entries {
		content, err := readZipEntry(entry.file)
		if err != nil {
			return "", fmt.Errorf("read slide entry %s: %w", entry.file.Name, err)
		}
		text := xmlText(content)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "Slide %d: %s\n\n", n+1, text)
	}
	return b.String(), nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
