package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/internal/models"
)

func collectObjects(obj fyne.CanvasObject, out *[]fyne.CanvasObject) {
	*out = append(*out, obj)
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			collectObjects(child, out)
		}
	}
}

func rowObjects(l *ItemList) []fyne.CanvasObject {
	var out []fyne.CanvasObject
	collectObjects(l.rows, &out)
	return out
}

func TestSetItemsBuildsRows(t *testing.T) {
	test.NewApp()
	list := NewItemList()

	list.SetItems([]models.Item{
		{ID: 1, Description: "buy milk"},
		{ID: 2, Description: "pay rent", Completed: true},
	})
	assert.Equal(t, 2, list.RowCount())

	list.SetItems(nil)
	assert.Equal(t, 0, list.RowCount())
}

func TestCompletedItemIsDimmedItalic(t *testing.T) {
	test.NewApp()
	list := NewItemList()
	list.SetItems([]models.Item{
		{ID: 1, Description: "open"},
		{ID: 2, Description: "done", Completed: true},
	})

	var open, done *widget.Label
	for _, obj := range rowObjects(list) {
		if label, ok := obj.(*widget.Label); ok {
			switch label.Text {
			case "open":
				open = label
			case "done":
				done = label
			}
		}
	}
	require.NotNil(t, open)
	require.NotNil(t, done)

	assert.False(t, open.TextStyle.Italic)
	assert.Equal(t, widget.MediumImportance, open.Importance)
	assert.True(t, done.TextStyle.Italic)
	assert.Equal(t, widget.LowImportance, done.Importance)
}

func TestEditRowShowsEntry(t *testing.T) {
	test.NewApp()
	list := NewItemList()
	list.SetItems([]models.Item{{ID: 1, Description: "draft", Edit: true}})

	var entry *widget.Entry
	for _, obj := range rowObjects(list) {
		if e, ok := obj.(*widget.Entry); ok {
			entry = e
		}
	}
	require.NotNil(t, entry, "an editing row must render an entry, not a label")
	assert.Equal(t, "draft", entry.Text)
	assert.True(t, entry.MultiLine)
}

func TestToggleHandlerReceivesID(t *testing.T) {
	test.NewApp()
	list := NewItemList()

	var gotID uint64
	var gotCompleted bool
	list.SetToggleHandler(func(id uint64, completed bool) {
		gotID = id
		gotCompleted = completed
	})
	list.SetItems([]models.Item{{ID: 7, Description: "x"}})

	for _, obj := range rowObjects(list) {
		if check, ok := obj.(*widget.Check); ok {
			test.Tap(check)
		}
	}

	assert.Equal(t, uint64(7), gotID)
	assert.True(t, gotCompleted)
}

func TestDeleteHandlerReceivesID(t *testing.T) {
	test.NewApp()
	list := NewItemList()

	var gotID uint64
	list.SetDeleteHandler(func(id uint64) { gotID = id })
	list.SetItems([]models.Item{{ID: 3, Description: "x"}})

	for _, obj := range rowObjects(list) {
		if button, ok := obj.(*widget.Button); ok && button.Importance == widget.DangerImportance {
			test.Tap(button)
		}
	}

	assert.Equal(t, uint64(3), gotID)
}

func TestEditButtonsDriveStateMachine(t *testing.T) {
	test.NewApp()
	list := NewItemList()

	var gotID uint64
	var gotEditing bool
	list.SetEditHandler(func(id uint64, editing bool) {
		gotID = id
		gotEditing = editing
	})

	// Viewing row: the Edit button requests edit mode.
	list.SetItems([]models.Item{{ID: 5, Description: "x"}})
	for _, obj := range rowObjects(list) {
		if button, ok := obj.(*widget.Button); ok && button.Text == "Edit" {
			test.Tap(button)
		}
	}
	assert.Equal(t, uint64(5), gotID)
	assert.True(t, gotEditing)

	// Editing row: the confirm button requests viewing mode.
	list.SetItems([]models.Item{{ID: 5, Description: "x", Edit: true}})
	for _, obj := range rowObjects(list) {
		if button, ok := obj.(*widget.Button); ok && button.Importance == widget.SuccessImportance {
			test.Tap(button)
		}
	}
	assert.False(t, gotEditing)
}

func TestDescriptionChangesFlowThrough(t *testing.T) {
	test.NewApp()
	list := NewItemList()

	var gotID uint64
	var gotText string
	list.SetDescriptionHandler(func(id uint64, text string) {
		gotID = id
		gotText = text
	})
	list.SetItems([]models.Item{{ID: 2, Description: "", Edit: true}})

	for _, obj := range rowObjects(list) {
		if entry, ok := obj.(*widget.Entry); ok {
			test.Type(entry, "hi")
		}
	}

	assert.Equal(t, uint64(2), gotID)
	assert.Equal(t, "hi", gotText)
}
