package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"taskpad/internal/models"
)

// ItemList renders the scrollable checklist. Rows are rebuilt from a
// store snapshot whenever the list changes shape; description edits
// flow through OnChanged without a rebuild so the entry keeps focus.
type ItemList struct {
	scroll *container.Scroll
	rows   *fyne.Container

	toggleHandler      func(id uint64, completed bool)
	editHandler        func(id uint64, editing bool)
	descriptionHandler func(id uint64, text string)
	deleteHandler      func(id uint64)
}

func NewItemList() *ItemList {
	list := &ItemList{
		rows: container.NewVBox(),
	}
	list.scroll = container.NewVScroll(list.rows)
	return list
}

// GetContainer returns the scrollable list container.
func (l *ItemList) GetContainer() *container.Scroll {
	return l.scroll
}

// SetItems replaces all rows with the given snapshot, in order.
func (l *ItemList) SetItems(items []models.Item) {
	l.rows.RemoveAll()
	for _, item := range items {
		l.rows.Add(l.buildRow(item))
	}
	l.rows.Refresh()
}

func (l *ItemList) buildRow(item models.Item) *fyne.Container {
	id := item.ID

	check := widget.NewCheck("", nil)
	check.SetChecked(item.Completed)
	check.OnChanged = func(checked bool) {
		if l.toggleHandler != nil {
			l.toggleHandler(id, checked)
		}
	}

	var content fyne.CanvasObject
	var modeButton *widget.Button

	if item.Edit {
		entry := widget.NewMultiLineEntry()
		entry.SetText(item.Description)
		entry.SetMinRowsVisible(1)
		entry.OnChanged = func(text string) {
			if l.descriptionHandler != nil {
				l.descriptionHandler(id, text)
			}
		}
		content = entry

		modeButton = widget.NewButtonWithIcon("", theme.ConfirmIcon(), func() {
			if l.editHandler != nil {
				l.editHandler(id, false)
			}
		})
		modeButton.Importance = widget.SuccessImportance
	} else {
		label := widget.NewLabel(item.Description)
		label.Wrapping = fyne.TextWrapWord
		if item.Completed {
			// Fyne has no strikethrough text style; completed items
			// are dimmed and italicized instead.
			label.TextStyle = fyne.TextStyle{Italic: true}
			label.Importance = widget.LowImportance
		}
		content = label

		modeButton = widget.NewButton("Edit", func() {
			if l.editHandler != nil {
				l.editHandler(id, true)
			}
		})
	}

	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if l.deleteHandler != nil {
			l.deleteHandler(id)
		}
	})
	deleteButton.Importance = widget.DangerImportance

	actions := container.NewHBox(modeButton, deleteButton)

	return container.NewBorder(nil, nil, check, actions, content)
}

// RowCount returns the number of rendered rows.
func (l *ItemList) RowCount() int {
	return len(l.rows.Objects)
}

func (l *ItemList) SetToggleHandler(handler func(id uint64, completed bool)) {
	l.toggleHandler = handler
}

func (l *ItemList) SetEditHandler(handler func(id uint64, editing bool)) {
	l.editHandler = handler
}

func (l *ItemList) SetDescriptionHandler(handler func(id uint64, text string)) {
	l.descriptionHandler = handler
}

func (l *ItemList) SetDeleteHandler(handler func(id uint64)) {
	l.deleteHandler = handler
}
