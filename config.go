package gekko

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config is the harness configuration file.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
		VSync  bool   `yaml:"vsync"`
		// Icon is an optional PNG asset name.
		Icon string `yaml:"icon"`
	} `yaml:"window"`

	ClearColor [3]float32 `yaml:"clear_color"`

	// AssetsDir is resolved against the executable's directory.
	AssetsDir string `yaml:"assets_dir"`

	Debug bool `yaml:"debug"`
}

func DefaultConfig() Config {
	var c Config
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.Title = "Game"
	c.Window.VSync = true
	c.ClearColor = [3]float32{0.3, 0.3, 0.5}
	c.AssetsDir = "assets"
	return c
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear_color[%d] = %g is outside [0, 1]", i, v)
		}
	}
	return nil
}

func (c Config) ClearColorVec() mgl32.Vec3 {
	return mgl32.Vec3(c.ClearColor)
}
