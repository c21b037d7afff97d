package assets

import "fmt"

// Pools holds the loaded color, template and texture pools. Templates and
// textures share one index space: texture i is the painting of template i.
// A nil template or texture is a slot the loader could not populate.
// Pools are read-only once built.
type Pools struct {
	names     []string
	colors    []Color
	templates []*Template
	textures  []*Texture
}

// NewPools builds pools from already loaded assets. templates and textures must be index-aligned.
func NewPools(colors []Color, templates []*Template, textures []*Texture) (*Pools, error) {
	if len(templates) != len(textures) {
		return nil, fmt.Errorf("assets: %d templates but %d textures", len(templates), len(textures))
	}
	names := make([]string, len(templates))
	for i, t := range templates {
		switch {
		case t != nil:
			names[i] = t.Name
		case textures[i] != nil:
			names[i] = textures[i].Name
		}
	}
	return &Pools{names: names, colors: colors, templates: templates, textures: textures}, nil
}

// ColorCount is the size of the color pool.
func (p *Pools) ColorCount() int { return len(p.colors) }

// ObjectCount is the size of the shared template/texture index space.
func (p *Pools) ObjectCount() int { return len(p.templates) }

// Name returns the catalog name of object i, if known.
func (p *Pools) Name(i int) string {
	if i < 0 || i >= len(p.names) {
		return ""
	}
	return p.names[i]
}

// Color returns color i, or a MissingAssetError when i is out of range.
func (p *Pools) Color(i int) (Color, error) {
	if i < 0 || i >= len(p.colors) {
		return Color{}, &MissingAssetError{Kind: "color", Index: i}
	}
	return p.colors[i], nil
}

// Template returns the template of object i. An unloaded slot is a MissingAssetError.
func (p *Pools) Template(i int) (*Template, error) {
	if i < 0 || i >= len(p.templates) || p.templates[i] == nil {
		return nil, &MissingAssetError{Kind: "template", Index: i, Name: p.Name(i)}
	}
	return p.templates[i], nil
}

// Texture returns the texture of object i. An unloaded slot is a MissingAssetError.
func (p *Pools) Texture(i int) (*Texture, error) {
	if i < 0 || i >= len(p.textures) || p.textures[i] == nil {
		return nil, &MissingAssetError{Kind: "texture", Index: i, Name: p.Name(i)}
	}
	return p.textures[i], nil
}
