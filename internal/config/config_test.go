package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/tooltips/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Runtime.RootID != "shiny-tooltips-root" {
		t.Errorf("Runtime.RootID = %q", cfg.Runtime.RootID)
	}
	if cfg.Runtime.GraceMs != 100 {
		t.Errorf("Runtime.GraceMs = %d, want 100", cfg.Runtime.GraceMs)
	}
	if !cfg.Dev.HotReload {
		t.Error("Dev.HotReload should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !stderrors.Is(err, errors.New("T032")) {
		t.Errorf("Load without a file = %v, want T032", err)
	}

	configJSON := `{
  "runtime": {
    "rootId": "tips",
    "graceMs": 250
  },
  "dev": {
    "port": 8080,
    "page": "pages/demo.html",
    "watch": ["pages"],
    "hotReload": false
  }
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Runtime.RootID != "tips" {
		t.Errorf("Runtime.RootID = %q, want tips", cfg.Runtime.RootID)
	}
	if cfg.Runtime.DefinitionClass != "shiny-tooltip-definition" {
		t.Errorf("Runtime.DefinitionClass = %q", cfg.Runtime.DefinitionClass)
	}
	if cfg.Dev.Port != 8080 {
		t.Errorf("Dev.Port = %d, want 8080", cfg.Dev.Port)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want default", cfg.Dev.Host)
	}
	if cfg.Dev.HotReload {
		t.Error("Dev.HotReload should be false")
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
	if got := cfg.PagePath(); got != filepath.Join(tmpDir, "pages", "demo.html") {
		t.Errorf("PagePath = %q", got)
	}
	if got := cfg.WatchPaths(); len(got) != 2 || got[1] != filepath.Join(tmpDir, "pages") {
		t.Errorf("WatchPaths = %v", got)
	}

	rt := cfg.TooltipsConfig()
	if rt.RootID != "tips" || rt.GracePeriod != 250*time.Millisecond {
		t.Errorf("TooltipsConfig() = %+v", rt)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{"dev": `), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(tmpDir)
	if errors.CodeOf(err) != "T030" {
		t.Errorf("Load = %v, want T030", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Dev.Port = 5000
	if err := cfg.Save(); err == nil {
		t.Error("Save without a path should fail")
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") || !strings.Contains(string(data), `"rootId": "shiny-tooltips-root"`) {
		t.Errorf("unexpected file:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Dev.Port != 5000 || loaded.Path() != path {
		t.Errorf("loaded = %+v", loaded)
	}
	loaded.Dev.Port = 5001
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port too high", func(c *Config) { c.Dev.Port = 70000 }, false},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, false},
		{"negative grace", func(c *Config) { c.Runtime.GraceMs = -5 }, false},
		{"no page", func(c *Config) { c.Dev.Page = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate = %v", err)
			}
			if !tt.ok && errors.CodeOf(err) != "T031" {
				t.Errorf("Validate = %v, want T031", err)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := New().SaveTo(filepath.Join(root, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, want)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PagePath() != filepath.Join(dir, DefaultPage) {
		t.Errorf("PagePath = %q", cfg.PagePath())
	}
	if cfg.DevAddress() != "localhost:4000" || cfg.DevURL() != "http://localhost:4000" {
		t.Errorf("address = %q url = %q", cfg.DevAddress(), cfg.DevURL())
	}
}
