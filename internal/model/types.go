package model

// Item is a single todo entry.
//
// Items have no stable identifier — an item's identity within a session
// is its position in the list, which shifts on deletion. The snapshot
// file stores items in list order for the same reason.
type Item struct {
	// Text is the todo text, stored verbatim (no trimming or validation).
	Text string `json:"text"`
	// Completed indicates whether the item has been checked off.
	Completed bool `json:"completed"`
}

// DefaultItems returns the tutorial items shown on first run (or when the
// snapshot file is missing or unreadable). A pre-populated list gives the
// user something to navigate immediately.
func DefaultItems() []Item {
	return []Item{
		{Text: "Press 'a' to add a todo"},
		{Text: "Press 'Space' to toggle completion"},
		{Text: "Press 'd' to delete a todo"},
		{Text: "Press 'q' to quit"},
	}
}
