// Package persist translates the checklist to and from its on-disk
// form: a pretty-printed UTF-8 JSON array of items.
package persist

import (
	"encoding/json"
	"fmt"
	"io"

	"taskpad/internal/models"
)

// DefaultFileName is pre-filled into the save dialog.
const DefaultFileName = "todo_list_save.json"

// Encode writes the items as an indented JSON array.
func Encode(w io.Writer, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return nil
}

// Decode reads a whole JSON array of items. On any parse error it
// returns nil items, so a failed load cannot partially overwrite
// caller state.
func Decode(r io.Reader) ([]models.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}
