// Package extract implements the Extractor interface.
// It isolates the schema.org structured data embedded in a page as
// <script type="application/ld+json"> blocks.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const ldJSONSelector = `script[type="application/ld+json"]`

// LDJSONExtractor returns the raw ld+json blocks of a page.
type LDJSONExtractor struct{}

// New creates an LDJSONExtractor.
func New() *LDJSONExtractor {
	return &LDJSONExtractor{}
}

// Extract returns the trimmed text of every ld+json script in document
// order. Empty scripts are skipped. A page without any yields an empty
// slice, not an error.
func (e *LDJSONExtractor) Extract(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var blocks []string
	doc.Find(ldJSONSelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks, nil
}
