package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/tooltips/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is used as the page title.
	ProjectName string

	// RootID is the id of the container that parents every tooltip.
	RootID string

	// DefinitionClass is the class of the definition script blocks.
	DefinitionClass string

	// ClassPrefix prefixes the classes the stylesheet targets.
	ClassPrefix string
}

// Template represents a starter project.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

var templates = map[string]*Template{
	"basic":       basicTemplate(),
	"interactive": interactiveTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("T042").
			WithSubject(name).
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the relative paths the template writes, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create renders the template into dir. Existing files are never
// overwritten; the first conflict aborts before anything is written.
func (t *Template) Create(dir string, cfg Config) error {
	cfg.applyDefaults()

	for _, relPath := range t.Paths() {
		if _, err := os.Stat(filepath.Join(dir, relPath)); err == nil {
			return errors.New("T043").WithSubject(filepath.Join(dir, relPath))
		}
	}

	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.ProjectName == "" {
		c.ProjectName = "tooltips"
	}
	if c.RootID == "" {
		c.RootID = "shiny-tooltips-root"
	}
	if c.DefinitionClass == "" {
		c.DefinitionClass = "shiny-tooltip-definition"
	}
	if c.ClassPrefix == "" {
		c.ClassPrefix = "shiny-tooltip"
	}
}

// stylesheet is shared by every template.
const stylesheet = `.{{.ClassPrefix}} {
  position: absolute;
  z-index: 1000;
  padding: 6px 10px;
  border-radius: 4px;
  background: #1f2937;
  color: #f9fafb;
  font: 13px/1.4 system-ui, sans-serif;
  opacity: 0;
  pointer-events: none;
  transition: opacity 150ms ease, transform 150ms ease;
}

.{{.ClassPrefix}}-visible {
  opacity: 1;
}

.{{.ClassPrefix}}-interactive.{{.ClassPrefix}}-visible {
  pointer-events: auto;
}

.{{.ClassPrefix}}-scale {
  transform: scale(0.95);
}

.{{.ClassPrefix}}-scale.{{.ClassPrefix}}-visible {
  transform: scale(1);
}

.{{.ClassPrefix}}-small { max-width: 160px; }
.{{.ClassPrefix}}-medium { max-width: 240px; }
.{{.ClassPrefix}}-large { max-width: 360px; }

.{{.ClassPrefix}}-arrow {
  position: absolute;
  width: 8px;
  height: 8px;
  background: inherit;
  transform: rotate(45deg);
}

.{{.ClassPrefix}}[data-placement="top"] .{{.ClassPrefix}}-arrow { bottom: -4px; left: calc(50% - 4px); }
.{{.ClassPrefix}}[data-placement="bottom"] .{{.ClassPrefix}}-arrow { top: -4px; left: calc(50% - 4px); }
.{{.ClassPrefix}}[data-placement="left"] .{{.ClassPrefix}}-arrow { right: -4px; top: calc(50% - 4px); }
.{{.ClassPrefix}}[data-placement="right"] .{{.ClassPrefix}}-arrow { left: -4px; top: calc(50% - 4px); }
`

func basicTemplate() *Template {
	return &Template{
		Name:        "basic",
		Description: "A page with hover and click tooltips",
		Files: map[string]string{
			"index.html": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.ProjectName}}</title>
  <link rel="stylesheet" href="/assets/tooltips.css">
</head>
<body>
  <h1>{{.ProjectName}}</h1>

  <button id="save">Save</button>
  <button id="help">Help</button>

  <div id="{{.RootID}}"></div>

  <script type="application/json" class="{{.DefinitionClass}}">
  {"id": "save-tip", "target": "#save", "content": "Save your changes", "placement": "bottom", "delay": 300}
  </script>
  <script type="application/json" class="{{.DefinitionClass}}">
  {"id": "help-tip", "target": "#help", "content": "Click again to close", "trigger": "click", "placement": "right"}
  </script>

  <script src="/assets/wasm_exec.js"></script>
  <script>
    const go = new Go();
    WebAssembly.instantiateStreaming(fetch("/assets/tooltips.wasm"), go.importObject)
      .then((result) => go.run(result.instance));
  </script>
</body>
</html>
`,
			"dist/tooltips.css": stylesheet,
		},
	}
}

func interactiveTemplate() *Template {
	return &Template{
		Name:        "interactive",
		Description: "Focus, interactive and custom styled tooltips",
		Files: map[string]string{
			"index.html": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.ProjectName}}</title>
  <link rel="stylesheet" href="/assets/tooltips.css">
</head>
<body>
  <h1>{{.ProjectName}}</h1>

  <label for="email">Email</label>
  <input id="email" type="email">

  <a id="docs" href="#">Documentation</a>

  <div id="{{.RootID}}"></div>

  <script type="application/json" class="{{.DefinitionClass}}">
  {"id": "email-tip", "target": "#email", "content": "We never share your address", "trigger": "focus", "placement": "right", "size": "medium"}
  </script>
  <script type="application/json" class="{{.DefinitionClass}}">
  {"id": "docs-tip", "target": "#docs", "content": "<a href=\"#guide\">Read the guide</a>", "interactive": true, "animation": "scale", "customStyle": "background: #2563eb;"}
  </script>

  <script src="/assets/wasm_exec.js"></script>
  <script>
    const go = new Go();
    WebAssembly.instantiateStreaming(fetch("/assets/tooltips.wasm"), go.importObject)
      .then((result) => go.run(result.instance));
  </script>
</body>
</html>
`,
			"dist/tooltips.css": stylesheet,
		},
	}
}
