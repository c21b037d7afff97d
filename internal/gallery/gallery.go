package gallery

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"itemgen/internal/display"
	"itemgen/internal/itemgen"
)

const (
	defaultSpacing   = 2.5
	paintingHeight   = 2.2
	paintingSwatch   = 0.4
	gridSlices       = 40
	labelFontSize    = 20
	cameraDistance   = 14
	swatchThickness  = 0.05
	cylinderSlices   = 16
	sphereWireRings  = 8
	sphereWireSlices = 12
	zoomStep         = 0.02
	minZoom          = 2
	maxZoom          = 40
	overlaySwatch    = 24
)

// Placement is one item at its slot on the gallery row.
type Placement struct {
	Item     itemgen.ItemInfo
	Position [3]float32
}

// Gallery is a Sink that lines items up along X and draws them with raylib.
// Models stand on Y=0; paintings hang above as a strip of palette swatches.
// A screen shows the painting of the selected item while the camera is near it.
type Gallery struct {
	Camera   rl.Camera3D
	spacing  float32
	placed   []Placement
	selected int
	sheet    *display.PropertySheet
	viewer   *display.Viewer
}

// New returns an empty gallery. spacing <= 0 uses the default slot width.
func New(spacing float32) *Gallery {
	if spacing <= 0 {
		spacing = defaultSpacing
	}
	sheet := display.NewPropertySheet()
	g := &Gallery{
		spacing: spacing,
		sheet:   sheet,
		viewer:  display.NewViewer(display.NewScreen(sheet), display.DefaultReach),
	}
	g.Camera.Position = rl.NewVector3(0, cameraDistance/2, cameraDistance)
	g.Camera.Target = rl.NewVector3(0, 1, 0)
	g.Camera.Up = rl.NewVector3(0, 1, 0)
	g.Camera.Fovy = 45
	g.Camera.Projection = rl.CameraPerspective
	return g
}

// Place puts item in the next free slot. It never fails; the row grows as needed.
func (g *Gallery) Place(item itemgen.ItemInfo) error {
	x := float32(len(g.placed)) * g.spacing
	g.placed = append(g.placed, Placement{Item: item, Position: [3]float32{x, 0, 0}})
	g.centerCamera()
	return nil
}

// Placements returns the items placed so far, in placement order.
func (g *Gallery) Placements() []Placement {
	out := make([]Placement, len(g.placed))
	copy(out, g.placed)
	return out
}

func (g *Gallery) centerCamera() {
	mid := float32(len(g.placed)-1) * g.spacing / 2
	g.Camera.Target = rl.NewVector3(mid, 1, 0)
	g.Camera.Position = rl.NewVector3(mid, cameraDistance/2, cameraDistance)
}

// Update handles selection and zoom, orbits the camera and refreshes the screen.
// Left and Right change the selected item, Up and Down move the camera closer or
// further. Call once per frame.
func (g *Gallery) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyRight):
		g.selectItem(g.selected + 1)
	case rl.IsKeyPressed(rl.KeyLeft):
		g.selectItem(g.selected - 1)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.zoom(1 - zoomStep)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.zoom(1 + zoomStep)
	}
	rl.UpdateCamera(&g.Camera, rl.CameraOrbital)
	g.track()
}

// Close restores the screen to its idle look.
func (g *Gallery) Close() {
	g.viewer.Screen().Disable()
}

// selectItem moves the selection to item i and turns the camera toward it.
func (g *Gallery) selectItem(i int) {
	if len(g.placed) == 0 {
		return
	}
	g.selected = max(0, min(i, len(g.placed)-1))
	p := g.placed[g.selected].Position
	offset := rl.Vector3Subtract(g.Camera.Position, g.Camera.Target)
	g.Camera.Target = rl.NewVector3(p[0], 1, p[2])
	g.Camera.Position = rl.Vector3Add(g.Camera.Target, offset)
}

func (g *Gallery) zoom(factor float32) {
	offset := rl.Vector3Subtract(g.Camera.Position, g.Camera.Target)
	dist := rl.Vector3Length(offset)
	if dist == 0 {
		return
	}
	next := max(minZoom, min(dist*factor, maxZoom))
	g.Camera.Position = rl.Vector3Add(g.Camera.Target, rl.Vector3Scale(offset, next/dist))
}

// track loads the selected painting onto the screen and feeds it the camera distance.
func (g *Gallery) track() {
	if len(g.placed) == 0 {
		return
	}
	p := g.placed[g.selected]
	g.viewer.Show(p.Item.Painting)
	cam := [3]float32{g.Camera.Position.X, g.Camera.Position.Y, g.Camera.Position.Z}
	g.viewer.Observe(cam, p.Position)
}

// Draw renders every placement and a status line. Call between BeginDrawing and EndDrawing.
func (g *Gallery) Draw() {
	rl.BeginMode3D(g.Camera)
	rl.DrawGrid(gridSlices, 1)
	for _, p := range g.placed {
		pos := rl.NewVector3(p.Position[0], p.Position[1], p.Position[2])
		if p.Item.Model != nil {
			drawModel(p.Item.Model, pos)
		}
		if p.Item.Painting != nil {
			drawPainting(p.Item.Painting, pos)
		}
	}
	if len(g.placed) > 0 {
		p := g.placed[g.selected].Position
		rl.DrawCubeWires(rl.NewVector3(p[0], 0, p[2]), g.spacing*0.9, 0.05, g.spacing*0.9, rl.Yellow)
	}
	rl.EndMode3D()

	s := itemgen.Summarize(g.items())
	status := fmt.Sprintf("%d items: %d full, %d thieves, %d extra models", s.Total, s.Full, s.Thieves, s.ExtraModels)
	rl.DrawText(status, 10, 10, labelFontSize, rl.RayWhite)
	g.drawScreen(10, 40)
}

// drawScreen shows the screen state and the Color1..N properties it published.
func (g *Gallery) drawScreen(x, y int32) {
	if len(g.placed) == 0 {
		return
	}
	item := g.placed[g.selected].Item
	state := "off"
	if on, _ := g.sheet.Int(display.PropIsOn); on == 1 {
		state = "on"
	}
	rl.DrawText(fmt.Sprintf("screen %s: %s", state, itemName(item)), x, y, labelFontSize, rl.RayWhite)
	if item.Painting == nil {
		return
	}
	for i := range item.Painting.Colors {
		c, ok := g.sheet.Color(display.ColorProp(i))
		if !ok {
			continue
		}
		sx := x + int32(i)*(overlaySwatch+4)
		rl.DrawRectangle(sx, y+labelFontSize+4, overlaySwatch, overlaySwatch, rlColor(c))
		rl.DrawRectangleLines(sx, y+labelFontSize+4, overlaySwatch, overlaySwatch, rl.RayWhite)
	}
}

func itemName(it itemgen.ItemInfo) string {
	switch {
	case it.Model != nil:
		return it.Model.Name
	case it.Painting != nil && it.Painting.Texture != nil:
		return it.Painting.Texture.Name
	}
	return fmt.Sprintf("object %d", it.Object)
}

func (g *Gallery) items() []itemgen.ItemInfo {
	items := make([]itemgen.ItemInfo, len(g.placed))
	for i, p := range g.placed {
		items[i] = p.Item
	}
	return items
}

// drawModel stacks one band per material slot so every recolored slot is visible.
func drawModel(m *itemgen.Model, base rl.Vector3) {
	size := m.Size
	for i := range size {
		if size[i] == 0 {
			size[i] = 1
		}
	}
	bands := len(m.Slots)
	if bands == 0 {
		bands = 1
	}
	band := size[1] / float32(bands)
	for i := 0; i < bands; i++ {
		c := rl.Gray
		if i < len(m.Slots) {
			c = rlColor(m.Slots[i].RGBA())
		}
		switch m.Shape {
		case "sphere":
			if i == 0 {
				rl.DrawSphere(rl.NewVector3(base.X, size[1]/2, base.Z), size[0]/2, c)
			} else {
				rl.DrawSphereWires(rl.NewVector3(base.X, size[1]/2, base.Z), size[0]/2+0.01*float32(i), sphereWireRings, sphereWireSlices, c)
			}
		case "cylinder":
			rl.DrawCylinder(rl.NewVector3(base.X, band*float32(i), base.Z), size[0]/2, size[0]/2, band, cylinderSlices, c)
		default:
			rl.DrawCube(rl.NewVector3(base.X, band*(float32(i)+0.5), base.Z), size[0], band, size[2], c)
		}
	}
}

// drawPainting draws the palette as swatches above the slot; a missing texture is outlined in red.
func drawPainting(p *itemgen.Painting, base rl.Vector3) {
	n := len(p.Colors)
	width := float32(n) * paintingSwatch
	left := base.X - width/2 + paintingSwatch/2
	for i, c := range p.Colors {
		center := rl.NewVector3(left+float32(i)*paintingSwatch, paintingHeight, base.Z)
		rl.DrawCube(center, paintingSwatch, paintingSwatch, swatchThickness, rlColor(c.RGBA))
	}
	frame := rl.RayWhite
	if p.Texture == nil {
		frame = rl.Red
	}
	rl.DrawCubeWires(rl.NewVector3(base.X, paintingHeight, base.Z), width+0.1, paintingSwatch+0.1, swatchThickness, frame)
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

var _ itemgen.Sink = (*Gallery)(nil)
