package genconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"itemgen/internal/assets"
	"itemgen/internal/env"
	"itemgen/internal/itemgen"
)

// ConfigPath is the settings file, relative to the process working directory.
const ConfigPath = "config/itemgen.json"

// Settings holds the persisted generation setup. Flags given on the command line
// override it for a single run.
type Settings struct {
	AssetRoot  string         `json:"asset_root"`
	Items      []string       `json:"items,omitempty"`
	Generation itemgen.Config `json:"generation"`
	PreviewDir string         `json:"preview_dir,omitempty"`
}

// Default returns the standard setup: the 12-item catalog, 3 colors per item,
// two thieves and two extra models.
func Default() Settings {
	return Settings{
		AssetRoot: "assets",
		Items:     append([]string(nil), assets.DefaultItems...),
		Generation: itemgen.Config{
			Count:            12,
			ColorsForEach:    3,
			ThiefCount:       2,
			ExtraModelsCount: 2,
		},
		PreviewDir: "previews",
	}
}

// Load reads settings from ConfigPath. See LoadFrom.
func Load() (Settings, error) {
	return LoadFrom(ConfigPath)
}

// LoadFrom reads settings from path. A missing file yields Default() and is not
// created. A file that exists but cannot be read or parsed is an error.
func LoadFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("genconfig: read %s: %w", path, err)
	}
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("genconfig: parse %s: %w", path, err)
	}
	if len(s.Items) == 0 {
		s.Items = append([]string(nil), assets.DefaultItems...)
	}
	return s, nil
}

// Save writes settings to ConfigPath. See SaveTo.
func Save(s Settings) error {
	return SaveTo(ConfigPath, s)
}

// SaveTo writes settings to path, creating its directory if needed.
func SaveTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WithEnv applies ITEMGEN_SEED, ITEMGEN_COUNT and ITEMGEN_ASSETS on top of s.
func (s Settings) WithEnv() Settings {
	s.Generation.Seed = env.Int64("ITEMGEN_SEED", s.Generation.Seed)
	s.Generation.Count = int(env.Int64("ITEMGEN_COUNT", int64(s.Generation.Count)))
	s.AssetRoot = env.String("ITEMGEN_ASSETS", s.AssetRoot)
	return s
}
