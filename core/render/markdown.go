// Package render provides output renderers for the recipegrab pipeline.
// This file implements the template renderer, which turns a normalized
// recipe into a Markdown note.
package render

import (
	"bytes"
	"fmt"
	"html"
	"text/template"
	"time"

	"github.com/gaurav-prasanna/recipegrab/core"
)

// templateData is what templates see: every recipe field plus the
// indented JSON of the recipe for debugging.
type templateData struct {
	core.Recipe
	JSON string
}

// MarkdownRenderer executes a text/template against a recipe.
type MarkdownRenderer struct {
	tmpl *template.Template
	// DecodeEntities unescapes HTML entities left in the rendered text.
	DecodeEntities bool
}

// NewMarkdownRenderer parses tmpl; an empty tmpl uses DefaultTemplate.
func NewMarkdownRenderer(tmpl string, decodeEntities bool) (*MarkdownRenderer, error) {
	return newMarkdownRenderer(tmpl, decodeEntities, time.Now)
}

func newMarkdownRenderer(tmpl string, decodeEntities bool, now func() time.Time) (*MarkdownRenderer, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	t, err := template.New("recipe").Funcs(funcMap(now)).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &MarkdownRenderer{tmpl: t, DecodeEntities: decodeEntities}, nil
}

// Render executes the template for recipe.
func (r *MarkdownRenderer) Render(recipe core.Recipe) ([]byte, error) {
	raw, err := MarshalRecipe(recipe)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{Recipe: recipe, JSON: string(raw)}); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	if r.DecodeEntities {
		return []byte(html.UnescapeString(buf.String())), nil
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
