package extraction

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// xmlText strips markup from an XML document by collecting its character data,
// then collapses whitespace runs into single spaces. Adjacent text runs are
// joined with a space so words from neighboring elements do not fuse.
func xmlText(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var parts []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			parts = append(parts, string(cd))
		}
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// collapseWhitespace trims s and squeezes internal whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
