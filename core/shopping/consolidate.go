package shopping

import (
	"github.com/gaurav-prasanna/recipegrab/core/units"
)

// Summary counts what a consolidation did with the new lines.
type Summary struct {
	// Merged is the number of lines whose amount was folded into an
	// existing item.
	Merged int
	// Added is the number of lines appended as new items.
	Added int
}

// Consolidate merges newLines, taken from the recipe named source, into
// the existing list text and returns the new list text.
//
// Items match on their normalized name. Amounts in the same unit (or both
// unit-less) are added; amounts in different units of one family are
// summed through the family base unit and expressed in the most readable
// unit. Anything else is kept as a separate line, never combined.
func Consolidate(existing string, newLines []string, source string) (string, Summary) {
	doc := ParseDocument(existing)
	summary := doc.Merge(newLines, source)
	return doc.String(), summary
}

// Merge folds newLines into the document in order; a later line can merge
// into an item appended by an earlier one.
func (d *Document) Merge(newLines []string, source string) Summary {
	var s Summary
	for _, text := range newLines {
		item, ok := ParseItem(text, false)
		if !ok {
			continue
		}
		item.Sources = nil
		if d.mergeItem(item, source) {
			s.Merged++
			continue
		}
		item.addSource(source)
		d.Items = append(d.Items, item)
		s.Added++
	}
	return s
}

// mergeItem adds item into the first existing item with the same name
// whose unit can absorb it. It reports false when no such item exists.
func (d *Document) mergeItem(item Item, source string) bool {
	for i := range d.Items {
		match := &d.Items[i]
		if match.Name != item.Name || !units.Compatible(match.Unit, item.Unit) {
			continue
		}

		if match.Unit == item.Unit {
			match.Amount += item.Amount
		} else {
			matchBase, family, _ := units.ToBase(match.Amount, match.Unit)
			itemBase, _, _ := units.ToBase(item.Amount, item.Unit)
			match.Amount, match.Unit = units.FromBase(matchBase+itemBase, family)
		}
		match.addSource(source)
		return true
	}
	return false
}
