// Package render: PDF renderer.
// Renders the recipe note through the template renderer, then lays the
// Markdown out with gofpdf: headings, paragraphs, ingredient checkboxes
// and lists. Frontmatter and images are not rendered.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/frontmatter"
	"github.com/jung-kurt/gofpdf"
)

var (
	numberedPattern = regexp.MustCompile(`^\d+\.\s`)
	imagePattern    = regexp.MustCompile(`^!\[[^\]]*\]\([^)]*\)$`)
	italicPattern   = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	codePattern     = regexp.MustCompile("`([^`]+)`")
	linkPattern     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// PDFRenderer renders a recipe note as a PDF document.
type PDFRenderer struct {
	markdown *MarkdownRenderer
}

// NewPDFRenderer creates a PDFRenderer laying out notes from md.
func NewPDFRenderer(md *MarkdownRenderer) *PDFRenderer {
	return &PDFRenderer{markdown: md}
}

// Render converts the recipe into PDF bytes.
func (r *PDFRenderer) Render(recipe core.Recipe) ([]byte, error) {
	note, err := r.markdown.Render(recipe)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Source URL.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+recipe.URL), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	_, body, _ := frontmatter.Split(string(note))
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case trimmed == "-----" || imagePattern.MatchString(trimmed):
			continue
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(trimmed, "# "))), level)
		case strings.HasPrefix(trimmed, "- [ ] ") || strings.HasPrefix(strings.ToLower(trimmed), "- [x] "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("[  ] "+cleanInlineMarkdown(trimmed[6:])), "", "L", false)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedPattern.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicPattern.ReplaceAllString(text, " $1 ")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
