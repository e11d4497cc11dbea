package controllers

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"taskpad/internal/logger"
	"taskpad/internal/models"
	"taskpad/internal/persist"
	apptheme "taskpad/internal/theme"
	"taskpad/internal/views"
)

const component = "MainController"

// MainController owns the item store and preferences and translates
// view events into store calls. Persistence failures are logged and
// swallowed; the UI never shows an error dialog and a failed load
// leaves the in-memory list untouched.
type MainController struct {
	log    logger.Logger
	app    fyne.App
	window fyne.Window
	store  *models.ItemStore
	prefs  *models.Preferences
	view   *views.MainView
}

// NewMainController creates the controller with an empty store and
// default preferences.
func NewMainController(log logger.Logger, app fyne.App, window fyne.Window) *MainController {
	return &MainController{
		log:    log,
		app:    app,
		window: window,
		store:  models.NewItemStore(),
		prefs:  models.NewPreferences(),
	}
}

// Store exposes the item store, mainly for tests.
func (mc *MainController) Store() *models.ItemStore {
	return mc.store
}

// Preferences exposes the preference values, mainly for tests.
func (mc *MainController) Preferences() *models.Preferences {
	return mc.prefs
}

// SetMainView associates the view with this controller, wires all
// event handlers and applies the initial theme.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.view = view
	mc.setupViewEventHandlers()

	mc.applyTheme()
	mc.refreshItems()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.view.Toolbar().SetLoadHandler(mc.LoadList)
	mc.view.Toolbar().SetSaveHandler(mc.SaveList)

	mc.view.Settings().SetTextSizeHandler(mc.SetTextSize)
	mc.view.Settings().SetDarkModeHandler(mc.SetDarkMode)

	mc.view.ItemList().SetToggleHandler(mc.SetCompleted)
	mc.view.ItemList().SetEditHandler(mc.SetEditing)
	mc.view.ItemList().SetDescriptionHandler(mc.UpdateDescription)
	mc.view.ItemList().SetDeleteHandler(mc.DeleteItem)

	mc.view.AddItemBar().SetRevealHandler(mc.RevealAddEntry)
	mc.view.AddItemBar().SetSubmitHandler(mc.AddItem)
}

// LoadList opens the file-open dialog and, on a chosen file, replaces
// the whole list with its contents. Open and parse failures are
// logged; the existing list stays as it was.
func (mc *MainController) LoadList() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.log.Error(component, err, map[string]interface{}{"action": "load"})
			return
		}
		if reader == nil {
			mc.log.Debug(component, "load cancelled", nil)
			return
		}
		defer reader.Close()

		mc.loadFrom(reader)
	}, mc.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileDialog.Show()
}

// SaveList opens the file-save dialog pre-filled with the default
// filename and writes the whole list to the chosen file. Create and
// write failures are logged, nothing more.
func (mc *MainController) SaveList() {
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.log.Error(component, err, map[string]interface{}{"action": "save"})
			return
		}
		if writer == nil {
			mc.log.Debug(component, "save cancelled", nil)
			return
		}
		defer writer.Close()

		mc.saveTo(writer)
	}, mc.window)

	fileDialog.SetFileName(persist.DefaultFileName)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileDialog.Show()
}

// AddItem creates a new item from the add-entry text. Whitespace-only
// text is a no-op: the input row stays visible with its text intact.
func (mc *MainController) AddItem(text string) {
	item, ok := mc.store.Add(text)
	if !ok {
		mc.log.Debug(component, "empty item rejected", nil)
		return
	}

	mc.prefs.SetAddEntryVisible(false)
	if mc.view != nil {
		mc.view.ClearAddEntry()
		mc.view.SetAddEntryVisible(false)
	}
	mc.refreshItems()

	mc.log.Info(component, "item added", map[string]interface{}{"id": item.ID})
}

// RevealAddEntry shows the add-item input row.
func (mc *MainController) RevealAddEntry() {
	mc.prefs.SetAddEntryVisible(true)
	if mc.view != nil {
		mc.view.SetAddEntryVisible(true)
	}
}

// SetCompleted updates an item's completion flag.
func (mc *MainController) SetCompleted(id uint64, completed bool) {
	if mc.store.SetCompleted(id, completed) {
		mc.refreshItems()
	}
}

// SetEditing moves an item between viewing and editing. Leaving edit
// mode keeps whatever text is in the entry, empty included.
func (mc *MainController) SetEditing(id uint64, editing bool) {
	if mc.store.SetEditing(id, editing) {
		mc.refreshItems()
	}
}

// UpdateDescription stores edited text as it is typed. No row rebuild
// here, the entry being edited must keep focus.
func (mc *MainController) UpdateDescription(id uint64, text string) {
	mc.store.SetDescription(id, text)
}

// DeleteItem removes one item by id.
func (mc *MainController) DeleteItem(id uint64) {
	if mc.store.Remove(id) > 0 {
		mc.refreshItems()
		mc.log.Info(component, "item deleted", map[string]interface{}{"id": id})
	}
}

// SetTextSize applies a new text size to the whole theme.
func (mc *MainController) SetTextSize(size float64) {
	mc.prefs.SetTextSize(size)
	mc.applyTheme()
}

// SetDarkMode switches the theme variant.
func (mc *MainController) SetDarkMode(dark bool) {
	mc.prefs.SetDarkMode(dark)
	mc.applyTheme()
}

func (mc *MainController) applyTheme() {
	mc.app.Settings().SetTheme(apptheme.New(mc.prefs.TextSize(), mc.prefs.DarkMode()))
}

func (mc *MainController) refreshItems() {
	if mc.view != nil {
		mc.view.SetItems(mc.store.Items())
	}
}
