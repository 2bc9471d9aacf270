package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type SpawnConfig struct {
	X, Y float64
	Key  string // ebiten key name, e.g. "S"
}

// AssetConfig names the images loaded once at startup, relative to Dir.
type AssetConfig struct {
	Dir        string
	Background string
	TankUp     string
	TankDown   string
	TankLeft   string
	TankRight  string
}

type UnitConfig struct {
	MarkerRadius float64
	AttackRadius float64
}

type FrameConfig struct {
	// MaxDelta caps the elapsed time fed to one step, in seconds.
	MaxDelta float64
}

type Config struct {
	Window WindowConfig
	Spawn  SpawnConfig
	Assets AssetConfig
	Unit   UnitConfig
	Frame  FrameConfig
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 420, Height: 420, Title: "RTS"},
		Spawn:  SpawnConfig{X: 50, Y: 150, Key: "S"},
		Assets: AssetConfig{
			Dir:        "images",
			Background: "background.png",
			TankRight:  "tank1.png",
			TankDown:   "tank2.png",
			TankLeft:   "tank3.png",
			TankUp:     "tank4.png",
		},
		Unit:  UnitConfig{MarkerRadius: 5},
		Frame: FrameConfig{MaxDelta: 0.1},
	}
}

// ReadTOML loads fileName over the defaults. A missing file is not an error;
// the defaults are returned as-is.
func ReadTOML(fileName string) (*Config, error) {
	cfg := Default()
	file, err := os.ReadFile(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", fileName, err)
	}
	if err := Parse(file, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", fileName, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg. Keys absent from data keep their current value.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Unit.MarkerRadius < 0 || c.Unit.AttackRadius < 0 {
		return errors.New("unit radii must not be negative")
	}
	if c.Frame.MaxDelta <= 0 {
		return fmt.Errorf("frame max delta must be positive, got %g", c.Frame.MaxDelta)
	}
	if c.Spawn.Key == "" {
		return errors.New("spawn key must be set")
	}
	return nil
}

// AssetPath joins name onto the asset directory.
func (c *Config) AssetPath(name string) string {
	return filepath.Join(c.Assets.Dir, name)
}
