// Package todo holds the in-memory list state: the ordered items plus the
// selection cursor. All mutations keep the selection invariant: the cursor
// is -1 exactly when the list is empty, otherwise a valid index.
package todo

import "github.com/timvw/todo-tui/internal/model"

// NoSelection is the cursor value for an empty list.
const NoSelection = -1

// List is the ordered todo items plus the selection cursor.
//
// The zero value is an empty list with nothing selected. List is owned by
// a single goroutine (the TUI event loop or a one-shot CLI command) and
// is not safe for concurrent use.
type List struct {
	items    []model.Item
	selected int
}

// NewList returns a list pre-populated with the tutorial items,
// first item selected.
func NewList() *List {
	return &List{items: model.DefaultItems(), selected: 0}
}

// FromItems builds a list from loaded items. An empty slice yields an
// empty list with no selection; otherwise the first item is selected.
func FromItems(items []model.Item) *List {
	l := &List{items: items, selected: NoSelection}
	if len(items) > 0 {
		l.selected = 0
	}
	return l
}

// Items returns the items in display order. Callers must not mutate the
// returned slice; it is the list's backing storage.
func (l *List) Items() []model.Item { return l.items }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Selected returns the cursor index, or NoSelection when the list is empty.
func (l *List) Selected() int { return l.selected }

// SelectedItem returns the item under the cursor, or false when the list
// is empty.
func (l *List) SelectedItem() (model.Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return model.Item{}, false
	}
	return l.items[l.selected], true
}

// Next advances the cursor by one, wrapping from the last item to the
// first. No-op on an empty list.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.selected >= len(l.items)-1 {
		l.selected = 0
	} else {
		l.selected++
	}
}

// Previous moves the cursor back by one, wrapping from the first item to
// the last. No-op on an empty list.
func (l *List) Previous() {
	if len(l.items) == 0 {
		return
	}
	if l.selected <= 0 {
		l.selected = len(l.items) - 1
	} else {
		l.selected--
	}
}

// ToggleSelected flips the completed flag of the selected item. Returns
// false when the list is empty (nothing to toggle).
func (l *List) ToggleSelected() bool {
	if l.selected < 0 || l.selected >= len(l.items) {
		return false
	}
	l.items[l.selected].Completed = !l.items[l.selected].Completed
	return true
}

// RemoveSelected deletes the item under the cursor and repairs the
// selection: empty list clears it, deleting the last item moves the
// cursor up, otherwise the cursor keeps its numeric index (now pointing
// at the item that followed the deleted one). Returns false when the
// list is empty.
func (l *List) RemoveSelected() bool {
	i := l.selected
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	switch {
	case len(l.items) == 0:
		l.selected = NoSelection
	case i >= len(l.items):
		l.selected = len(l.items) - 1
	default:
		l.selected = i
	}
	return true
}

// Append adds a new incomplete item at the end of the list and selects
// it. The text is stored verbatim — whitespace-only input is a valid
// item. Callers gate on non-empty input.
func (l *List) Append(text string) {
	l.items = append(l.items, model.Item{Text: text})
	l.selected = len(l.items) - 1
}
