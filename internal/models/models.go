// Package models contains the data types shown in the swipe list.
package models

// Item is one row of the sample list.
type Item struct {
	ID          string
	Title       string
	File        string
	Description []string

	// Expanded mirrors the row's settled menu state. Rows report it through
	// their swipe listener and it is re-applied whenever rows are rebuilt.
	Expanded bool
	Pinned   bool
	// Detail is toggled by tapping the row.
	Detail bool
}

// Lines returns the number of text lines the item occupies.
func (i *Item) Lines() int {
	return 1 + len(i.Description)
}
