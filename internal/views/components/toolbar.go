package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the Load and Save actions.
type Toolbar struct {
	container  *fyne.Container
	loadButton *widget.Button
	saveButton *widget.Button

	loadHandler func()
	saveHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.loadButton = widget.NewButton("Load", t.onLoadClicked)
	t.loadButton.Importance = widget.HighImportance

	t.saveButton = widget.NewButton("Save", t.onSaveClicked)
	t.saveButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewCenter(container.NewHBox(
		t.loadButton,
		widget.NewSeparator(),
		t.saveButton,
	))
}

func (t *Toolbar) onLoadClicked() {
	if t.loadHandler != nil {
		t.loadHandler()
	}
}

func (t *Toolbar) onSaveClicked() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}
