package display

import (
	"fmt"
	"image/color"

	"itemgen/internal/itemgen"
)

// Shader property names published by Screen.
const (
	PropIsOn    = "IsOn"
	PropTexture = "PaintingTexture"
)

// ColorProp returns the property name of palette entry i (0-based): Color1, Color2, ...
func ColorProp(i int) string {
	return fmt.Sprintf("Color%d", i+1)
}

// IdlePalette is what the screen shows with no painting loaded.
var IdlePalette = [3]color.RGBA{
	{G: 255, B: 255, A: 255}, // cyan
	{R: 255, B: 255, A: 255}, // magenta
	{R: 255, G: 255, A: 255}, // yellow
}

// Screen is the display that shows the painting of the current target.
// It is lit only while it has a texture and the observer is close.
type Screen struct {
	mtl        Material
	hasTexture bool
	isClose    bool
}

// NewScreen returns a screen that publishes to mtl. Call Enable before use.
func NewScreen(mtl Material) *Screen {
	return &Screen{mtl: mtl}
}

// Enable switches the screen off until both inputs are true.
func (s *Screen) Enable() {
	s.mtl.SetInt(PropIsOn, 0)
}

// Disable restores the idle look: lit, no texture, idle palette.
func (s *Screen) Disable() {
	s.mtl.SetInt(PropIsOn, 1)
	s.mtl.SetTexture(PropTexture, nil)
	for i, c := range IdlePalette {
		s.mtl.SetColor(ColorProp(i), c)
	}
}

// SetPainting publishes the texture and every palette color. A nil painting clears the texture.
func (s *Screen) SetPainting(p *itemgen.Painting) {
	if p == nil {
		s.mtl.SetTexture(PropTexture, nil)
		s.setHasTexture(false)
		return
	}
	s.mtl.SetTexture(PropTexture, p.Texture)
	for i, c := range p.Colors {
		s.mtl.SetColor(ColorProp(i), c.RGBA)
	}
	s.setHasTexture(p.Texture != nil)
}

// SetClose records whether the observer is within range.
func (s *Screen) SetClose(near bool) {
	s.isClose = near
	s.publish()
}

// IsOn reports whether the screen has a texture and the observer is close.
func (s *Screen) IsOn() bool {
	return s.hasTexture && s.isClose
}

func (s *Screen) setHasTexture(v bool) {
	s.hasTexture = v
	s.publish()
}

func (s *Screen) publish() {
	on := 0
	if s.IsOn() {
		on = 1
	}
	s.mtl.SetInt(PropIsOn, on)
}
