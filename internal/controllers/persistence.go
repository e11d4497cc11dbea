package controllers

import (
	"io"

	"taskpad/internal/persist"
)

// loadFrom replaces the list with the decoded file contents. A decode
// failure is logged and leaves the current list untouched.
func (mc *MainController) loadFrom(r io.Reader) {
	items, err := persist.Decode(r)
	if err != nil {
		mc.log.Error(component, err, map[string]interface{}{"action": "load"})
		return
	}

	mc.store.ReplaceAll(items)
	mc.refreshItems()

	mc.log.Info(component, "list loaded", map[string]interface{}{
		"items":   len(items),
		"next_id": mc.store.NextID(),
	})
}

// saveTo writes the current list. A write failure is logged; the file
// may be left partially written, in-memory state is unaffected.
func (mc *MainController) saveTo(w io.Writer) {
	items := mc.store.Items()
	if err := persist.Encode(w, items); err != nil {
		mc.log.Error(component, err, map[string]interface{}{"action": "save"})
		return
	}

	mc.log.Info(component, "list saved", map[string]interface{}{"items": len(items)})
}
