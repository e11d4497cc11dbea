package models

// Item is a single checklist entry.
//
// Edit marks the row as being in edit mode. It is transient UI state,
// but it is part of the serialized form: a saved file carries whatever
// value each item had at save time, and loading restores it as-is.
type Item struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Edit        bool   `json:"edit"`
}
