package todo

import (
	"testing"

	"github.com/timvw/todo-tui/internal/model"
)

func threeItems() *List {
	return FromItems([]model.Item{
		{Text: "one"},
		{Text: "two"},
		{Text: "three"},
	})
}

// checkInvariant verifies: selection is NoSelection iff the list is empty,
// otherwise a valid index.
func checkInvariant(t *testing.T, l *List) {
	t.Helper()
	if l.Len() == 0 {
		if l.Selected() != NoSelection {
			t.Errorf("empty list: expected selection %d, got %d", NoSelection, l.Selected())
		}
		return
	}
	if l.Selected() < 0 || l.Selected() >= l.Len() {
		t.Errorf("selection %d out of bounds for %d items", l.Selected(), l.Len())
	}
}

func TestNewList_TutorialDefaults(t *testing.T) {
	l := NewList()
	if l.Len() != 4 {
		t.Fatalf("expected 4 tutorial items, got %d", l.Len())
	}
	if l.Selected() != 0 {
		t.Errorf("expected first item selected, got %d", l.Selected())
	}
	for i, item := range l.Items() {
		if item.Completed {
			t.Errorf("tutorial item %d should start incomplete", i)
		}
		if item.Text == "" {
			t.Errorf("tutorial item %d has empty text", i)
		}
	}
}

func TestFromItems_EmptyHasNoSelection(t *testing.T) {
	l := FromItems(nil)
	if l.Selected() != NoSelection {
		t.Errorf("expected no selection, got %d", l.Selected())
	}
	checkInvariant(t, l)
}

func TestNext_WrapsToStart(t *testing.T) {
	l := threeItems()
	l.Next()
	l.Next()
	if l.Selected() != 2 {
		t.Fatalf("expected selection 2, got %d", l.Selected())
	}
	l.Next()
	if l.Selected() != 0 {
		t.Errorf("expected wrap to 0, got %d", l.Selected())
	}
}

func TestPrevious_WrapsToEnd(t *testing.T) {
	l := threeItems()
	l.Previous()
	if l.Selected() != 2 {
		t.Errorf("expected wrap to 2, got %d", l.Selected())
	}
}

func TestNavigation_NoOpOnEmptyList(t *testing.T) {
	l := FromItems(nil)
	l.Next()
	if l.Selected() != NoSelection {
		t.Errorf("Next on empty list moved selection to %d", l.Selected())
	}
	l.Previous()
	if l.Selected() != NoSelection {
		t.Errorf("Previous on empty list moved selection to %d", l.Selected())
	}
}

func TestToggleSelected_FlipsAndRestores(t *testing.T) {
	l := threeItems()
	l.Next() // select "two"

	if !l.ToggleSelected() {
		t.Fatal("expected toggle to succeed")
	}
	if !l.Items()[1].Completed {
		t.Error("expected item 1 completed after toggle")
	}
	if !l.ToggleSelected() {
		t.Fatal("expected second toggle to succeed")
	}
	if l.Items()[1].Completed {
		t.Error("expected item 1 incomplete after double toggle")
	}
	if l.Len() != 3 {
		t.Errorf("toggle changed list length to %d", l.Len())
	}
	if l.Items()[0].Text != "one" || l.Items()[2].Text != "three" {
		t.Error("toggle reordered items")
	}
}

func TestToggleSelected_EmptyList(t *testing.T) {
	l := FromItems(nil)
	if l.ToggleSelected() {
		t.Error("toggle on empty list should report false")
	}
}

func TestRemoveSelected_LastItemMovesCursorUp(t *testing.T) {
	l := threeItems()
	l.Next()
	l.Next() // select index 2

	if !l.RemoveSelected() {
		t.Fatal("expected remove to succeed")
	}
	if l.Selected() != 1 {
		t.Errorf("deleting last index: expected selection 1, got %d", l.Selected())
	}
	checkInvariant(t, l)
}

func TestRemoveSelected_MiddleItemKeepsIndex(t *testing.T) {
	l := threeItems()
	l.Next() // select index 1 ("two")

	if !l.RemoveSelected() {
		t.Fatal("expected remove to succeed")
	}
	if l.Selected() != 1 {
		t.Errorf("deleting middle index: expected selection 1, got %d", l.Selected())
	}
	// Index 1 now refers to the former index-2 item.
	if got := l.Items()[1].Text; got != "three" {
		t.Errorf("expected item %q at index 1, got %q", "three", got)
	}
	checkInvariant(t, l)
}

func TestRemoveSelected_SoleItemClearsSelection(t *testing.T) {
	l := FromItems([]model.Item{{Text: "only"}})
	if !l.RemoveSelected() {
		t.Fatal("expected remove to succeed")
	}
	if l.Selected() != NoSelection {
		t.Errorf("expected no selection after removing sole item, got %d", l.Selected())
	}
	if l.RemoveSelected() {
		t.Error("remove on empty list should report false")
	}
	checkInvariant(t, l)
}

func TestAppend_SelectsNewItem(t *testing.T) {
	l := FromItems(nil)
	l.Append("Buy milk")
	if l.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", l.Len())
	}
	if l.Selected() != 0 {
		t.Errorf("expected selection 0, got %d", l.Selected())
	}
	item := l.Items()[0]
	if item.Text != "Buy milk" || item.Completed {
		t.Errorf("unexpected item %+v", item)
	}

	l.Append("   ") // whitespace-only is stored verbatim
	if l.Items()[1].Text != "   " {
		t.Errorf("expected whitespace preserved, got %q", l.Items()[1].Text)
	}
	if l.Selected() != 1 {
		t.Errorf("expected selection 1, got %d", l.Selected())
	}
}

// TestSelectionInvariant_MutationSequences exercises the invariant across
// mixed add/delete sequences.
func TestSelectionInvariant_MutationSequences(t *testing.T) {
	l := NewList()
	ops := []func(){
		func() { l.Append("a") },
		func() { l.RemoveSelected() },
		func() { l.Next() },
		func() { l.RemoveSelected() },
		func() { l.RemoveSelected() },
		func() { l.Previous() },
		func() { l.RemoveSelected() },
		func() { l.RemoveSelected() },
		func() { l.RemoveSelected() }, // list empty by now
		func() { l.Append("b") },
		func() { l.Append("c") },
		func() { l.Previous() },
		func() { l.RemoveSelected() },
	}
	for i, op := range ops {
		op()
		if l.Len() == 0 {
			if l.Selected() != NoSelection {
				t.Fatalf("op %d: empty list but selection %d", i, l.Selected())
			}
			continue
		}
		if l.Selected() < 0 || l.Selected() >= l.Len() {
			t.Fatalf("op %d: selection %d out of bounds for %d items", i, l.Selected(), l.Len())
		}
	}
}
