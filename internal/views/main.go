package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"taskpad/internal/models"
	"taskpad/internal/views/components"
)

// MainView assembles the window content: heading, Load/Save toolbar,
// settings panel, the scrollable checklist and the add-item bar. It is
// passive; the controller wires handlers and pushes state snapshots.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	settings      *components.SettingsPanel
	itemList      *components.ItemList
	addItemBar    *components.AddItemBar
}

// NewMainView creates the main view inside the given window.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.settings = components.NewSettingsPanel()
	mv.itemList = components.NewItemList()
	mv.addItemBar = components.NewAddItemBar()
}

func (mv *MainView) buildLayout() {
	heading := widget.NewLabelWithStyle("Todo List", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	topArea := container.NewVBox(
		heading,
		mv.toolbar.GetContainer(),
		mv.settings.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.addItemBar.GetContainer(),
		nil,
		nil,
		mv.itemList.GetContainer(),
	)
}

// SetItems pushes a fresh list snapshot into the row view.
func (mv *MainView) SetItems(items []models.Item) {
	mv.itemList.SetItems(items)
}

// SetAddEntryVisible shows or hides the add-item input row.
func (mv *MainView) SetAddEntryVisible(visible bool) {
	mv.addItemBar.SetInputVisible(visible)
}

// ClearAddEntry empties the add-item entry.
func (mv *MainView) ClearAddEntry() {
	mv.addItemBar.ClearInput()
}

// Component accessors used by the controller for wiring and by tests.
func (mv *MainView) Toolbar() *components.Toolbar        { return mv.toolbar }
func (mv *MainView) Settings() *components.SettingsPanel { return mv.settings }
func (mv *MainView) ItemList() *components.ItemList      { return mv.itemList }
func (mv *MainView) AddItemBar() *components.AddItemBar  { return mv.addItemBar }

// GetWindow returns the window this view renders into.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show attaches the layout to the window and shows it.
func (mv *MainView) Show() {
	mv.window.SetContent(mv.mainContainer)
	mv.window.Show()
}
