package render

import "github.com/lixenwraith/vi-timer/config"

// Palette holds the frame colors
type Palette struct {
	Main       RGB
	Pause      RGB
	Background RGB
	Hint       RGB
}

// NewPalette resolves display config colors
func NewPalette(d config.DisplayConfig) Palette {
	return Palette{
		Main:       RGBFrom(d.MainColor),
		Pause:      RGBFrom(d.PauseColor),
		Background: RGBFrom(d.Background),
		Hint:       RGBFrom(d.HintColor),
	}
}

// Tint returns the digit color modulation for the pause state
func (p Palette) Tint(paused bool) RGB {
	if paused {
		return p.Pause
	}
	return p.Main
}
