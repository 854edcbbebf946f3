package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/tooltips/internal/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"basic", false},
		{"interactive", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if errors.CodeOf(err) != "T042" {
					t.Errorf("Get(%q) error = %v, want T042", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) != 2 || names[0] != "basic" || names[1] != "interactive" {
		t.Errorf("List() = %v", names)
	}
}

func TestCreateBasic(t *testing.T) {
	dir := t.TempDir()

	tmpl, _ := Get("basic")
	if err := tmpl.Create(dir, Config{ProjectName: "Docs", RootID: "tips", ClassPrefix: "tt"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<title>Docs</title>",
		`<div id="tips"></div>`,
		`class="shiny-tooltip-definition"`,
		`"id": "save-tip"`,
	} {
		if !strings.Contains(string(page), want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	css, err := os.ReadFile(filepath.Join(dir, "dist", "tooltips.css"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(css), ".tt-visible") {
		t.Error("stylesheet does not use the class prefix")
	}
}

func TestCreateDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "index.html")
	if err := os.WriteFile(existing, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("interactive")
	err := tmpl.Create(dir, Config{})
	if errors.CodeOf(err) != "T043" {
		t.Fatalf("Create error = %v, want T043", err)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "mine" {
		t.Error("existing file was overwritten")
	}
	if _, err := os.Stat(filepath.Join(dir, "dist", "tooltips.css")); !os.IsNotExist(err) {
		t.Error("nothing should be written after a conflict")
	}
}

func TestPaths(t *testing.T) {
	tmpl, _ := Get("basic")
	paths := tmpl.Paths()
	if len(paths) != 2 || paths[0] != "dist/tooltips.css" || paths[1] != "index.html" {
		t.Errorf("Paths() = %v", paths)
	}
}
