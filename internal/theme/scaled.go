// Package theme provides the application theme: the stock Fyne theme
// with a forced light/dark variant and every size scaled uniformly by
// the user's chosen text size.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Scaled wraps a base theme, pinning the variant and multiplying all
// sizes by textSize / base text size. Scaling through Size keeps every
// text style and padding value in proportion, the same factor for all.
type Scaled struct {
	base    fyne.Theme
	scale   float32
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*Scaled)(nil)

// New builds the application theme for the given text size and variant
// selection on top of the default Fyne theme.
func New(textSize float64, dark bool) *Scaled {
	variant := fynetheme.VariantLight
	if dark {
		variant = fynetheme.VariantDark
	}
	return NewWithBase(fynetheme.DefaultTheme(), textSize, variant)
}

// NewWithBase is New with an explicit base theme.
func NewWithBase(base fyne.Theme, textSize float64, variant fyne.ThemeVariant) *Scaled {
	baseText := base.Size(fynetheme.SizeNameText)
	scale := float32(1)
	if baseText > 0 {
		scale = float32(textSize) / baseText
	}

	return &Scaled{
		base:    base,
		scale:   scale,
		variant: variant,
	}
}

// Scale returns the uniform factor applied to every size name.
func (t *Scaled) Scale() float32 {
	return t.scale
}

// Color resolves colors against the pinned variant, ignoring the
// system preference passed in.
func (t *Scaled) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *Scaled) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Scaled) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Scaled) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name) * t.scale
}
