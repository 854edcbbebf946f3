package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/tooltips"
	"github.com/vango-dev/tooltips/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tooltips.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultPage is the page served and validated by default.
	DefaultPage = "index.html"

	// DefaultAssets is the directory holding the wasm build.
	DefaultAssets = "dist"
)

// Config represents the complete tooltips.json configuration.
type Config struct {
	// Runtime mirrors tooltips.Config for the pages this project serves.
	Runtime RuntimeConfig `json:"runtime"`

	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RuntimeConfig holds the serializable part of tooltips.Config.
type RuntimeConfig struct {
	RootID          string `json:"rootId,omitempty"`
	DefinitionClass string `json:"definitionClass,omitempty"`
	ClassPrefix     string `json:"classPrefix,omitempty"`

	// GraceMs is the interactive hover grace period in milliseconds.
	GraceMs int `json:"graceMs,omitempty"`
}

// DevConfig contains preview server settings.
type DevConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// Page is the HTML page to serve at "/".
	Page string `json:"page,omitempty"`

	// Assets is the directory served under /assets/.
	Assets string `json:"assets,omitempty"`

	// Watch lists files and directories whose changes reload the browser.
	// The page is always watched.
	Watch []string `json:"watch,omitempty"`

	// HotReload enables the reload websocket.
	HotReload bool `json:"hotReload"`
}

// New creates a new Config with default values.
func New() *Config {
	d := tooltips.DefaultConfig()
	return &Config{
		Runtime: RuntimeConfig{
			RootID:          d.RootID,
			DefinitionClass: d.DefinitionClass,
			ClassPrefix:     d.ClassPrefix,
			GraceMs:         int(d.GracePeriod / time.Millisecond),
		},
		Dev: DevConfig{
			Host:      DefaultHost,
			Port:      DefaultPort,
			Page:      DefaultPage,
			Assets:    DefaultAssets,
			HotReload: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for tooltips.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("T032").
				WithSubject(path).
				WithDetail("No tooltips.json found in " + filepath.Dir(path))
		}
		return nil, errors.New("T030").WithSubject(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("T030").
			WithSubject(path).
			WithDetail("Failed to parse tooltips.json: " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("T030").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("T030").WithSubject(path).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Runtime.RootID == "" {
		c.Runtime.RootID = d.Runtime.RootID
	}
	if c.Runtime.DefinitionClass == "" {
		c.Runtime.DefinitionClass = d.Runtime.DefinitionClass
	}
	if c.Runtime.ClassPrefix == "" {
		c.Runtime.ClassPrefix = d.Runtime.ClassPrefix
	}
	if c.Runtime.GraceMs == 0 {
		c.Runtime.GraceMs = d.Runtime.GraceMs
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Page == "" {
		c.Dev.Page = DefaultPage
	}
	if c.Dev.Assets == "" {
		c.Dev.Assets = DefaultAssets
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(detail string) error {
		return errors.New("T031").WithSubject(c.configPath).WithDetail(detail)
	}
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return invalid("dev.port must be between 0 and 65535")
	}
	if c.Runtime.GraceMs < 0 {
		return invalid("runtime.graceMs must not be negative")
	}
	if c.Dev.Page == "" {
		return invalid("dev.page is required")
	}
	return nil
}

// TooltipsConfig converts the runtime section to a tooltips.Config. Logger,
// metrics and tracer are left for the caller.
func (c *Config) TooltipsConfig() tooltips.Config {
	return tooltips.Config{
		RootID:          c.Runtime.RootID,
		DefinitionClass: c.Runtime.DefinitionClass,
		ClassPrefix:     c.Runtime.ClassPrefix,
		GracePeriod:     time.Duration(c.Runtime.GraceMs) * time.Millisecond,
	}
}

// DevAddress returns the address string for the preview server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the preview server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// resolve makes path relative to the config directory unless absolute.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// PagePath returns the absolute path to the served page.
func (c *Config) PagePath() string {
	return c.resolve(c.Dev.Page)
}

// AssetsPath returns the absolute path to the assets directory.
func (c *Config) AssetsPath() string {
	return c.resolve(c.Dev.Assets)
}

// WatchPaths returns the absolute paths to watch, page first.
func (c *Config) WatchPaths() []string {
	paths := []string{c.PagePath()}
	for _, w := range c.Dev.Watch {
		p := c.resolve(w)
		if p != paths[0] {
			paths = append(paths, p)
		}
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing tooltips.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("T032").
				WithDetail("No tooltips.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads tooltips.json from the project containing dir. When
// there is none, the defaults are returned with paths relative to dir.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		cfg := New()
		abs, aerr := filepath.Abs(dir)
		if aerr != nil {
			return nil, aerr
		}
		cfg.configPath = filepath.Join(abs, ConfigFileName)
		return cfg, nil
	}
	return Load(root)
}
