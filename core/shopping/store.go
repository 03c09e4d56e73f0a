package shopping

import (
	"fmt"

	"github.com/gaurav-prasanna/recipegrab/core"
)

// AddFromNote moves the checked ingredients of the recipe note at
// notePath into the list at listPath. The note is written back with those
// ingredients unchecked, then the list is consolidated and written; a
// missing list is created. It returns core.ErrNothingChecked when the note
// has no checked ingredient, leaving both files untouched.
func AddFromNote(store core.TextStore, notePath, listPath, source string) (Summary, error) {
	note, exists, err := store.Read(notePath)
	if err != nil {
		return Summary{}, err
	}
	if !exists {
		return Summary{}, fmt.Errorf("recipe note %s does not exist", notePath)
	}

	checked, unchecked := CollectChecked(note)
	if len(checked) == 0 {
		return Summary{}, core.ErrNothingChecked
	}

	list, _, err := store.Read(listPath)
	if err != nil {
		return Summary{}, err
	}
	updated, summary := Consolidate(list, checked, source)

	if err := store.Write(listPath, updated); err != nil {
		return Summary{}, err
	}
	if err := store.Write(notePath, unchecked); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// ClearList removes checked items, or all items, from the list at
// listPath. A missing list is left missing.
func ClearList(store core.TextStore, listPath string, all bool) (int, error) {
	list, exists, err := store.Read(listPath)
	if err != nil || !exists {
		return 0, err
	}
	updated, removed := Clear(list, all)
	if removed == 0 {
		return 0, nil
	}
	return removed, store.Write(listPath, updated)
}
