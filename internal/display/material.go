package display

import (
	"image/color"
	"sync"

	"itemgen/internal/assets"
)

// Material receives named shader properties.
type Material interface {
	SetInt(name string, v int)
	SetColor(name string, c color.RGBA)
	SetTexture(name string, tex *assets.Texture)
}

// PropertySheet is an in-memory Material. It is safe for concurrent use.
type PropertySheet struct {
	mu       sync.Mutex
	ints     map[string]int
	colors   map[string]color.RGBA
	textures map[string]*assets.Texture
}

// NewPropertySheet returns an empty sheet.
func NewPropertySheet() *PropertySheet {
	return &PropertySheet{
		ints:     make(map[string]int),
		colors:   make(map[string]color.RGBA),
		textures: make(map[string]*assets.Texture),
	}
}

// SetInt stores an integer property.
func (p *PropertySheet) SetInt(name string, v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ints[name] = v
}

// SetColor stores a color property.
func (p *PropertySheet) SetColor(name string, c color.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.colors[name] = c
}

// SetTexture stores a texture property. A nil texture is stored as unset.
func (p *PropertySheet) SetTexture(name string, tex *assets.Texture) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.textures[name] = tex
}

// Int returns an integer property and whether it was ever set.
func (p *PropertySheet) Int(name string) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.ints[name]
	return v, ok
}

// Color returns a color property and whether it was ever set.
func (p *PropertySheet) Color(name string) (color.RGBA, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.colors[name]
	return c, ok
}

// Texture returns a texture property, or nil.
func (p *PropertySheet) Texture(name string) *assets.Texture {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.textures[name]
}
