package display

import (
	"errors"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/parallel"
	"github.com/chewxy/math32"

	"itemgen/internal/itemgen"
)

var errNoTexture = errors.New("display: painting has no texture")

// Render reproduces the screen shader on the CPU: every texel's red, green and blue
// channels weight palette colors 1, 2 and 3. Palette entries the painting does not
// supply fall back to IdlePalette. Alpha is taken from the texture.
func Render(p *itemgen.Painting) (*image.RGBA, error) {
	if p == nil || p.Texture == nil || p.Texture.Image == nil {
		return nil, errNoTexture
	}
	var palette [3][3]float32
	for i := range palette {
		c := IdlePalette[i]
		if i < len(p.Colors) {
			c = p.Colors[i].RGBA
		}
		palette[i] = unit(c)
	}

	src := clone.AsRGBA(p.Texture.Image)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				di := dst.PixOffset(x, y)
				mask := [3]float32{
					float32(src.Pix[si]) / 255,
					float32(src.Pix[si+1]) / 255,
					float32(src.Pix[si+2]) / 255,
				}
				for k := 0; k < 3; k++ {
					v := mask[0]*palette[0][k] + mask[1]*palette[1][k] + mask[2]*palette[2][k]
					dst.Pix[di+k] = uint8(math32.Min(math32.Max(v, 0), 1)*255 + 0.5)
				}
				dst.Pix[di+3] = src.Pix[si+3]
			}
		}
	})
	return dst, nil
}

// SavePreview renders p and writes it to path as PNG.
func SavePreview(path string, p *itemgen.Painting) error {
	img, err := Render(p)
	if err != nil {
		return err
	}
	return imgio.Save(path, img, imgio.PNGEncoder())
}

func unit(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
