package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# settings\nITEMGEN_TEST_SEED=42\n\nITEMGEN_TEST_ASSETS=\"my assets\"\nbroken line\nITEMGEN_TEST_KEEP=file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ITEMGEN_TEST_KEEP", "process")
	t.Setenv("ITEMGEN_TEST_SEED", "")
	os.Unsetenv("ITEMGEN_TEST_SEED")
	t.Setenv("ITEMGEN_TEST_ASSETS", "")
	os.Unsetenv("ITEMGEN_TEST_ASSETS")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := Int64("ITEMGEN_TEST_SEED", 0); got != 42 {
		t.Errorf("seed = %d", got)
	}
	if got := String("ITEMGEN_TEST_ASSETS", ""); got != "my assets" {
		t.Errorf("assets = %q", got)
	}
	if got := os.Getenv("ITEMGEN_TEST_KEEP"); got != "process" {
		t.Errorf("file overrode process env: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should not fail: %v", err)
	}
}

func TestTypedDefaults(t *testing.T) {
	t.Setenv("ITEMGEN_TEST_BAD", "twelve")
	if got := Int64("ITEMGEN_TEST_BAD", 7); got != 7 {
		t.Errorf("malformed int = %d, want default", got)
	}
	if got := String("ITEMGEN_TEST_UNSET_XYZ", "dflt"); got != "dflt" {
		t.Errorf("unset string = %q", got)
	}
}
