package display

import (
	"github.com/chewxy/math32"

	"itemgen/internal/itemgen"
)

// DefaultReach is how close the observer has to be for the screen to light up.
const DefaultReach = 8

// Viewer points a Screen at one painting at a time and switches it on while the
// observer is within reach of that painting's position.
type Viewer struct {
	screen   *Screen
	reach    float32
	painting *itemgen.Painting
	shown    bool
}

// NewViewer enables screen and returns a viewer for it. reach <= 0 uses DefaultReach.
func NewViewer(screen *Screen, reach float32) *Viewer {
	if reach <= 0 {
		reach = DefaultReach
	}
	screen.Enable()
	return &Viewer{screen: screen, reach: reach}
}

// Show loads p onto the screen. Showing the painting already loaded is a no-op.
func (v *Viewer) Show(p *itemgen.Painting) {
	if v.shown && p == v.painting {
		return
	}
	v.painting = p
	v.shown = true
	v.screen.SetPainting(p)
}

// Observe updates proximity from the observer and target positions and reports
// whether the observer is within reach.
func (v *Viewer) Observe(observer, target [3]float32) bool {
	near := Distance(observer, target) <= v.reach
	v.screen.SetClose(near)
	return near
}

// Painting returns the painting currently loaded, or nil.
func (v *Viewer) Painting() *itemgen.Painting {
	return v.painting
}

// Screen returns the driven screen.
func (v *Viewer) Screen() *Screen {
	return v.screen
}

// Distance is the euclidean distance between a and b.
func Distance(a, b [3]float32) float32 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}
