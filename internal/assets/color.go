package assets

import "image/color"

// Color is a named entry of the color pool. Name matches the material the
// color stands for (e.g. "Red" for ItemRedMaterial).
type Color struct {
	Name string
	RGBA color.RGBA
}

// DefaultColors returns the standard seven-color pool in pool order.
func DefaultColors() []Color {
	return []Color{
		{Name: "Red", RGBA: color.RGBA{R: 255, A: 255}},
		{Name: "Yellow", RGBA: color.RGBA{R: 255, G: 235, B: 4, A: 255}},
		{Name: "Green", RGBA: color.RGBA{G: 255, A: 255}},
		{Name: "Cyan", RGBA: color.RGBA{G: 255, B: 255, A: 255}},
		{Name: "Blue", RGBA: color.RGBA{B: 255, A: 255}},
		{Name: "Magenta", RGBA: color.RGBA{R: 255, B: 255, A: 255}},
		{Name: "Black", RGBA: color.RGBA{A: 255}},
	}
}

// MaterialName is the material an item slot takes when bound to c.
func (c Color) MaterialName() string {
	return "Item" + c.Name + "Material"
}
