package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"itemgen/internal/logger"
)

// DefaultItems is the item catalog in pool order.
var DefaultItems = []string{
	"Backpack", "Ball", "Book", "Case", "Cube", "Drum",
	"Laptop", "Phone", "Ring", "Shield", "Sword", "ToyTrack",
}

// TemplatePath and TexturePath give an item's files relative to the asset root.
func TemplatePath(root, name string) string {
	return filepath.Join(root, "items", name+".yaml")
}

func TexturePath(root, name string) string {
	return filepath.Join(root, "textures", name+"RGB.png")
}

// Load reads one template and one texture per item name under root and pairs them
// with the default color pool. Missing files leave an empty slot that fails only
// when resolved; unreadable or malformed files fail the load.
func Load(root string, items []string, log *logger.Logger) (*Pools, error) {
	templates := make([]*Template, len(items))
	textures := make([]*Texture, len(items))
	for i, name := range items {
		t, err := loadTemplate(TemplatePath(root, name))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Logf("assets: no template for %s", name)
		case err != nil:
			return nil, fmt.Errorf("assets: %s: %w", name, err)
		default:
			templates[i] = t
		}

		path := TexturePath(root, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Logf("assets: no texture for %s", name)
			continue
		}
		tex, err := LoadTexture(name, path)
		if err != nil {
			return nil, fmt.Errorf("assets: %s texture: %w", name, err)
		}
		textures[i] = tex
	}
	p, err := NewPools(DefaultColors(), templates, textures)
	if err != nil {
		return nil, err
	}
	for i, name := range items {
		p.names[i] = name
	}
	log.Logf("assets: loaded %d colors, %d objects from %s", p.ColorCount(), p.ObjectCount(), root)
	return p, nil
}

func loadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTemplate(data)
}
