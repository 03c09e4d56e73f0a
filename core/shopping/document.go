// Package shopping consolidates checked recipe ingredients into a
// plain-text shopping list: a free-form header followed by one checklist
// line per ingredient, each tagged with the recipes it came from.
package shopping

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/recipegrab/core/ingredient"
	"github.com/gaurav-prasanna/recipegrab/core/units"
)

// DefaultHeader is used when the list has no header of its own.
const DefaultHeader = "# Shopping List"

var (
	checklistPattern = regexp.MustCompile(`^- \[[ xX]\]\s*`)
	checkedPattern   = regexp.MustCompile(`^- \[[xX]\]`)
)

// Item is one shopping list entry.
type Item struct {
	Checked bool
	// Amount is 0 when the quantity is unknown.
	Amount float64
	Unit   units.Unit
	Name   string
	// Sources are recipe names in insertion order, without duplicates.
	Sources []string
	// Original is the item text without the sources annotation, shown
	// when the item has neither amount nor unit.
	Original string
}

// ParseItem builds an item from checklist text. Blank text yields false.
func ParseItem(text string, checked bool) (Item, bool) {
	line, ok := ingredient.ParseLine(text)
	if !ok {
		return Item{}, false
	}
	return Item{
		Checked:  checked,
		Amount:   line.Amount,
		Unit:     line.Unit,
		Name:     line.Name,
		Sources:  line.Sources,
		Original: line.Text,
	}, true
}

// String renders the item as a checklist line.
func (it Item) String() string {
	check := "[ ]"
	if it.Checked {
		check = "[x]"
	}

	display := it.Original
	if it.Amount > 0 || it.Unit != units.None {
		display = ingredient.FormatAmount(it.Amount, it.Unit) + " " + it.Name
	}

	var b strings.Builder
	b.WriteString("- " + check + " " + strings.TrimSpace(display))
	if len(it.Sources) > 0 {
		b.WriteString(" *(" + strings.Join(it.Sources, ", ") + ")*")
	}
	return b.String()
}

func (it *Item) addSource(source string) {
	if source == "" {
		return
	}
	for _, s := range it.Sources {
		if s == source {
			return
		}
	}
	it.Sources = append(it.Sources, source)
}

// Document is a parsed shopping list.
type Document struct {
	// Header holds the lines before the first checklist line, with
	// trailing blank lines removed.
	Header []string
	Items  []Item
}

type parseState int

const (
	beforeItems parseState = iota
	inItems
)

// ParseDocument splits list text into header and items. Header lines are
// kept verbatim; after the first checklist line, lines that are not
// checklist lines are dropped.
func ParseDocument(text string) *Document {
	doc := &Document{}
	if text == "" {
		return doc
	}

	state := beforeItems
	for _, line := range strings.Split(text, "\n") {
		isItem := checklistPattern.MatchString(line)
		if state == beforeItems && !isItem {
			doc.Header = append(doc.Header, line)
			continue
		}
		state = inItems
		if !isItem {
			continue
		}
		if item, ok := ParseItem(checklistPattern.ReplaceAllString(line, ""), checkedPattern.MatchString(line)); ok {
			doc.Items = append(doc.Items, item)
		}
	}

	for len(doc.Header) > 0 && strings.TrimSpace(doc.Header[len(doc.Header)-1]) == "" {
		doc.Header = doc.Header[:len(doc.Header)-1]
	}
	return doc
}

// String renders the header (or DefaultHeader), a blank line and one line
// per item.
func (d *Document) String() string {
	header := DefaultHeader
	if len(d.Header) > 0 {
		header = strings.Join(d.Header, "\n")
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	for _, it := range d.Items {
		b.WriteString(it.String() + "\n")
	}
	return b.String()
}
