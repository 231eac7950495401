package model

import (
	"encoding/json"
	"testing"
)

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	if len(items) != 4 {
		t.Fatalf("expected 4 tutorial items, got %d", len(items))
	}
	for i, item := range items {
		if item.Completed {
			t.Errorf("item %d: tutorial items start incomplete", i)
		}
		if item.Text == "" {
			t.Errorf("item %d: empty text", i)
		}
	}
}

// The snapshot field names are the on-disk interface; existing todos.json
// files must keep loading.
func TestItem_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Item{Text: "x", Completed: true})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"text":"x","completed":true}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
