package itemgen

import (
	"fmt"

	"github.com/jinzhu/copier"

	"itemgen/internal/assets"
)

// Pools is the read-only asset lookup the generator resolves indices against.
// *assets.Pools implements it.
type Pools interface {
	ColorCount() int
	ObjectCount() int
	Color(i int) (assets.Color, error)
	Template(i int) (*assets.Template, error)
	Texture(i int) (*assets.Texture, error)
}

// Painting is a texture plus its palette. Colors[i] fills channel i of the texture.
type Painting struct {
	Texture *assets.Texture
	Colors  []assets.Color
}

// Model is an owned instance of a template with its role slots recolored.
// The caller owns it; the generator keeps no reference.
type Model struct {
	Name  string
	Shape string
	Size  [3]float32
	Slots []assets.Slot
}

// ItemInfo is one finished item. Object is the pool index both the model and the
// painting were resolved from. A nil Model marks a thief, a nil Painting an extra model.
type ItemInfo struct {
	Object   int
	Painting *Painting
	Model    *Model
}

// IsThief reports whether the item has a painting but no model.
func (it ItemInfo) IsThief() bool { return it.Model == nil }

// IsExtraModel reports whether the item has a model but no painting.
func (it ItemInfo) IsExtraModel() bool { return it.Painting == nil }

func resolveColors(pools Pools, indices []int) ([]assets.Color, error) {
	colors := make([]assets.Color, len(indices))
	for i, idx := range indices {
		c, err := pools.Color(idx)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// instantiate copies template object and binds colors to its Red, Green and Blue
// slots by position. The copy keeps the template's slot order, so role lookups
// go through the template. Slots past len(colors) keep their template material.
func instantiate(pools Pools, object int, colors []assets.Color) (*Model, error) {
	tpl, err := pools.Template(object)
	if err != nil {
		return nil, err
	}
	m := &Model{}
	if err := copier.CopyWithOption(m, tpl, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("itemgen: instantiate %s: %w", tpl.Name, err)
	}
	for i := 0; i < min(len(assets.Roles), len(colors)); i++ {
		role := assets.Roles[i]
		slot := tpl.Slot(role)
		if slot < 0 {
			return nil, &assets.MissingAssetError{Kind: "slot", Index: object, Name: tpl.Name, Detail: "no " + role + " slot"}
		}
		c := colors[i]
		m.Slots[slot].Material = c.MaterialName()
		m.Slots[slot].Color = [4]uint8{c.RGBA.R, c.RGBA.G, c.RGBA.B, c.RGBA.A}
	}
	return m, nil
}

func paint(pools Pools, object int, colors []assets.Color) (*Painting, error) {
	tex, err := pools.Texture(object)
	if err != nil {
		return nil, err
	}
	return &Painting{Texture: tex, Colors: colors}, nil
}
