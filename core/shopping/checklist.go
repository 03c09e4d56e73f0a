package shopping

import (
	"regexp"
	"strings"
)

var (
	ingredientsHeading = regexp.MustCompile(`(?i)^#{1,4}\s+Ingredients`)
	anyHeading         = regexp.MustCompile(`^#{1,4}\s`)
	checkedBox         = regexp.MustCompile(`(?i)^- \[x\]`)
	checkedPrefix      = regexp.MustCompile(`(?i)^- \[x\]\s*`)
)

// CollectChecked returns the text of every checked line in the note's
// Ingredients section, and the note with those lines unchecked in place.
// Everything else in the note is left untouched.
func CollectChecked(note string) ([]string, string) {
	lines := strings.Split(note, "\n")
	var checked []string

	inIngredients := false
	for i, line := range lines {
		if ingredientsHeading.MatchString(line) {
			inIngredients = true
			continue
		}
		if inIngredients && anyHeading.MatchString(line) {
			inIngredients = false
		}
		if inIngredients && checkedBox.MatchString(line) {
			checked = append(checked, strings.TrimSpace(checkedPrefix.ReplaceAllString(line, "")))
			lines[i] = checkedBox.ReplaceAllString(line, "- [ ]")
		}
	}
	return checked, strings.Join(lines, "\n")
}

// Clear removes checked items from the list, or every item when all is
// set. The header is kept. It returns the new text and the number of
// items removed.
func Clear(existing string, all bool) (string, int) {
	doc := ParseDocument(existing)
	kept := doc.Items[:0]
	for _, it := range doc.Items {
		if all || it.Checked {
			continue
		}
		kept = append(kept, it)
	}
	removed := len(doc.Items) - len(kept)
	doc.Items = kept
	return doc.String(), removed
}
