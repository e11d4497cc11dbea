package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"taskpad/internal/models"
)

// SettingsPanel exposes the UI preferences: a text size slider and the
// dark theme checkbox.
type SettingsPanel struct {
	container *fyne.Container
	slider    *widget.Slider
	darkCheck *widget.Check

	textSizeHandler func(float64)
	darkModeHandler func(bool)
}

func NewSettingsPanel() *SettingsPanel {
	panel := &SettingsPanel{}
	panel.createComponents()
	panel.buildLayout()
	return panel
}

func (sp *SettingsPanel) createComponents() {
	sp.slider = widget.NewSlider(models.MinTextSize, models.MaxTextSize)
	sp.slider.SetValue(models.DefaultTextSize)
	sp.slider.OnChanged = func(value float64) {
		if sp.textSizeHandler != nil {
			sp.textSizeHandler(value)
		}
	}

	sp.darkCheck = widget.NewCheck("Dark", func(checked bool) {
		if sp.darkModeHandler != nil {
			sp.darkModeHandler(checked)
		}
	})
}

func (sp *SettingsPanel) buildLayout() {
	sizeRow := container.NewBorder(nil, nil, widget.NewLabel("UI size:"), nil, sp.slider)
	themeRow := container.NewHBox(widget.NewLabel("Theme:"), sp.darkCheck)

	sp.container = container.NewVBox(sizeRow, themeRow)
}

func (sp *SettingsPanel) GetContainer() *fyne.Container {
	return sp.container
}

func (sp *SettingsPanel) SetTextSizeHandler(handler func(float64)) {
	sp.textSizeHandler = handler
}

func (sp *SettingsPanel) SetDarkModeHandler(handler func(bool)) {
	sp.darkModeHandler = handler
}

// TextSize returns the slider position.
func (sp *SettingsPanel) TextSize() float64 {
	return sp.slider.Value
}

// DarkMode reports the checkbox state.
func (sp *SettingsPanel) DarkMode() bool {
	return sp.darkCheck.Checked
}
