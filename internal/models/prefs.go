package models

import "sync"

// Text size bounds match the settings slider.
const (
	MinTextSize     = 6.0
	MaxTextSize     = 32.0
	DefaultTextSize = 14.0
)

// Preferences holds the UI preference values: text size, theme variant
// and the transient visibility of the add-item input row. None of it
// is persisted across restarts.
type Preferences struct {
	mu              sync.RWMutex
	textSize        float64
	darkMode        bool
	addEntryVisible bool
}

// NewPreferences returns preferences at their defaults: 14pt text,
// light theme, add-item row hidden.
func NewPreferences() *Preferences {
	return &Preferences{
		textSize: DefaultTextSize,
	}
}

// SetTextSize stores the desired text size, clamped to [6, 32].
func (p *Preferences) SetTextSize(size float64) {
	if size < MinTextSize {
		size = MinTextSize
	}
	if size > MaxTextSize {
		size = MaxTextSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.textSize = size
}

// TextSize returns the current text size.
func (p *Preferences) TextSize() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.textSize
}

// SetDarkMode switches between the dark and light theme variants.
func (p *Preferences) SetDarkMode(dark bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = dark
}

// DarkMode reports whether the dark variant is selected.
func (p *Preferences) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.darkMode
}

// SetAddEntryVisible shows or hides the add-item input row.
func (p *Preferences) SetAddEntryVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addEntryVisible = visible
}

// AddEntryVisible reports whether the add-item input row is shown.
func (p *Preferences) AddEntryVisible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.addEntryVisible
}
