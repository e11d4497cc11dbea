package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AddItemBar is the two-state add affordance: a plus button that
// reveals an input row, and the input row itself with a confirm
// button. Confirm hands the raw text to the submit handler; the
// controller decides whether it becomes an item.
type AddItemBar struct {
	container     *fyne.Container
	addButton     *widget.Button
	entry         *widget.Entry
	confirmButton *widget.Button
	inputRow      *fyne.Container

	revealHandler func()
	submitHandler func(text string)
}

func NewAddItemBar() *AddItemBar {
	bar := &AddItemBar{}
	bar.createComponents()
	bar.buildLayout()
	return bar
}

func (b *AddItemBar) createComponents() {
	b.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if b.revealHandler != nil {
			b.revealHandler()
		}
	})

	b.entry = widget.NewMultiLineEntry()
	b.entry.SetPlaceHolder("New item")
	b.entry.SetMinRowsVisible(1)

	b.confirmButton = widget.NewButtonWithIcon("", theme.ConfirmIcon(), func() {
		if b.submitHandler != nil {
			b.submitHandler(b.entry.Text)
		}
	})
	b.confirmButton.Importance = widget.SuccessImportance
}

func (b *AddItemBar) buildLayout() {
	b.inputRow = container.NewBorder(nil, nil, nil, b.confirmButton, b.entry)
	b.inputRow.Hide()

	b.container = container.NewVBox(
		container.NewCenter(b.addButton),
		b.inputRow,
	)
}

func (b *AddItemBar) GetContainer() *fyne.Container {
	return b.container
}

// SetInputVisible switches between the plus button and the input row.
// The entry text is left alone so a rejected submit keeps its input.
func (b *AddItemBar) SetInputVisible(visible bool) {
	if visible {
		b.addButton.Hide()
		b.inputRow.Show()
	} else {
		b.inputRow.Hide()
		b.addButton.Show()
	}
	b.container.Refresh()
}

// InputVisible reports whether the input row is showing.
func (b *AddItemBar) InputVisible() bool {
	return b.inputRow.Visible()
}

// ClearInput empties the entry after a successful add.
func (b *AddItemBar) ClearInput() {
	b.entry.SetText("")
}

// InputText returns the current entry text.
func (b *AddItemBar) InputText() string {
	return b.entry.Text
}

func (b *AddItemBar) SetRevealHandler(handler func()) {
	b.revealHandler = handler
}

func (b *AddItemBar) SetSubmitHandler(handler func(text string)) {
	b.submitHandler = handler
}
