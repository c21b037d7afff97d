package assets

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

const ballYAML = `name: Ball
shape: sphere
size: [0.6, 0.6, 0.6]
slots:
  - role: Red
    material: ItemRedMaterial
    color: [255, 0, 0, 255]
  - role: Green
    material: ItemGreenMaterial
    color: [0, 255, 0, 255]
  - role: Blue
    material: ItemBlueMaterial
    color: [0, 0, 255, 255]
`

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate([]byte(ballYAML))
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Name != "Ball" || tpl.Shape != "sphere" {
		t.Errorf("got %s/%s", tpl.Name, tpl.Shape)
	}
	if tpl.Size != [3]float32{0.6, 0.6, 0.6} {
		t.Errorf("size = %v", tpl.Size)
	}
	for i, role := range Roles {
		if got := tpl.Slot(role); got != i {
			t.Errorf("Slot(%s) = %d, want %d", role, got, i)
		}
	}
	if tpl.Slot("Purple") != -1 {
		t.Error("unknown role should return -1")
	}
	if got := tpl.Slots[1].RGBA(); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("slot color = %v", got)
	}
}

func TestParseTemplateRejects(t *testing.T) {
	tests := map[string]string{
		"no name":        "shape: cube\n",
		"bad shape":      "name: X\nshape: torus\n",
		"duplicate role": "name: X\nshape: cube\nslots:\n  - role: Red\n  - role: Red\n",
		"bad yaml":       "name: [\n",
	}
	for name, src := range tests {
		if _, err := ParseTemplate([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestPoolsResolve(t *testing.T) {
	tpl := &Template{Name: "Cube", Shape: "cube"}
	p, err := NewPools(DefaultColors(), []*Template{tpl, nil}, []*Texture{nil, {Name: "Ring"}})
	if err != nil {
		t.Fatal(err)
	}
	if p.ColorCount() != 7 || p.ObjectCount() != 2 {
		t.Fatalf("counts = %d/%d", p.ColorCount(), p.ObjectCount())
	}
	if c, err := p.Color(4); err != nil || c.Name != "Blue" {
		t.Errorf("Color(4) = %v, %v", c, err)
	}
	if got, err := p.Template(0); err != nil || got != tpl {
		t.Errorf("Template(0) = %v, %v", got, err)
	}

	_, err = p.Texture(0)
	var missing *MissingAssetError
	if !errors.As(err, &missing) || missing.Kind != "texture" || missing.Name != "Cube" {
		t.Errorf("Texture(0) err = %v", err)
	}
	if _, err := p.Template(1); !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Template(1) err = %v", err)
	}
	if _, err := p.Color(7); !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Color(7) err = %v", err)
	}
}

func TestNewPoolsRequiresAlignment(t *testing.T) {
	if _, err := NewPools(DefaultColors(), make([]*Template, 2), make([]*Texture, 3)); err == nil {
		t.Error("expected misaligned pools to fail")
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "items"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "textures"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(TemplatePath(root, "Ball"), []byte(ballYAML), 0644); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	if err := imgio.Save(TexturePath(root, "Ball"), img, imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}

	p, err := Load(root, []string{"Ball", "Drum"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ObjectCount() != 2 {
		t.Fatalf("ObjectCount = %d", p.ObjectCount())
	}
	tex, err := p.Texture(0)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Image.Bounds().Dx() != 4 {
		t.Errorf("texture width = %d", tex.Image.Bounds().Dx())
	}
	if _, err := p.Template(1); !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Drum template should be missing, err = %v", err)
	}
	if p.Name(1) != "Drum" {
		t.Errorf("Name(1) = %q", p.Name(1))
	}
}

func TestLoadFailsOnMalformedTemplate(t *testing.T) {
	root := t.TempDir()
	_ = os.MkdirAll(filepath.Join(root, "items"), 0755)
	if err := os.WriteFile(TemplatePath(root, "Ball"), []byte("name: Ball\nshape: torus\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root, []string{"Ball"}, nil); err == nil {
		t.Error("expected malformed template to fail the load")
	}
}

func TestShippedCatalogLoads(t *testing.T) {
	p, err := Load(filepath.Join("..", "..", "assets"), DefaultItems, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ObjectCount() != len(DefaultItems) || p.ColorCount() != 7 {
		t.Fatalf("counts = %d/%d", p.ObjectCount(), p.ColorCount())
	}
	for i, name := range DefaultItems {
		tpl, err := p.Template(i)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if tpl.Name != name {
			t.Errorf("template %d is %s, want %s", i, tpl.Name, name)
		}
		for _, role := range Roles {
			if tpl.Slot(role) < 0 {
				t.Errorf("%s has no %s slot", name, role)
			}
		}
		if _, err := p.Texture(i); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
