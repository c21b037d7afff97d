package assets

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// Recolorable slot roles, in binding order.
const (
	RoleRed   = "Red"
	RoleGreen = "Green"
	RoleBlue  = "Blue"
)

// Roles lists the slot roles in the order palette colors are bound to them.
var Roles = [3]string{RoleRed, RoleGreen, RoleBlue}

// Slot is one recolorable material of a template. Role names the slot, not its current color.
type Slot struct {
	Role     string   `yaml:"role"`
	Material string   `yaml:"material,omitempty"`
	Color    [4]uint8 `yaml:"color,omitempty"`
}

// RGBA returns the slot color.
func (s Slot) RGBA() color.RGBA {
	return color.RGBA{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: s.Color[3]}
}

// Template is the YAML definition of an item shape (e.g. assets/items/Ball.yaml).
// Shape is one of cube, sphere, cylinder, plane; Size defaults to 1 on each axis.
type Template struct {
	Name  string     `yaml:"name"`
	Shape string     `yaml:"shape"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Slots []Slot     `yaml:"slots"`
}

var shapes = map[string]bool{"cube": true, "sphere": true, "cylinder": true, "plane": true}

// ParseTemplate decodes and checks one template definition.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("template: missing name")
	}
	if !shapes[t.Shape] {
		return nil, fmt.Errorf("template %s: unknown shape %q", t.Name, t.Shape)
	}
	seen := make(map[string]bool, len(t.Slots))
	for _, s := range t.Slots {
		if s.Role == "" {
			continue
		}
		if seen[s.Role] {
			return nil, fmt.Errorf("template %s: duplicate slot role %q", t.Name, s.Role)
		}
		seen[s.Role] = true
	}
	return &t, nil
}

// Slot returns the index of the slot with the given role, or -1.
func (t *Template) Slot(role string) int {
	for i := range t.Slots {
		if t.Slots[i].Role == role {
			return i
		}
	}
	return -1
}
