package assets

import (
	"image"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Texture is an RGB mask image: each channel marks where palette color 1, 2 or 3 shows.
type Texture struct {
	Name  string
	Path  string
	Image image.Image
}

// LoadTexture decodes the image at path (PNG, JPEG, BMP or WebP).
func LoadTexture(name, path string) (*Texture, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return &Texture{Name: name, Path: path, Image: img}, nil
}
