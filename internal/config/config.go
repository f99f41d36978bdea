package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/input"
)

type Config struct {
	App       AppConfig       `toml:"app"`
	Loop      LoopConfig      `toml:"loop"`
	Input     InputConfig     `toml:"input"`
	Camera    CameraConfig    `toml:"camera"`
	Scene     SceneConfig     `toml:"scene"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type AppConfig struct {
	Name      string `toml:"name"`
	StartTime int64  // set at boot, not from config
}

type LoopConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
}

type InputConfig struct {
	CycleKey  input.Key `toml:"cycle_key"`
	QueueSize int       `toml:"queue_size"`
}

type CameraConfig struct {
	InitialSlot camera.Slot `toml:"initial_slot"`
}

type SceneConfig struct {
	Path string `toml:"path"` // empty = built-in scene
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.App.StartTime = time.Now().Unix()
	return cfg, nil
}

// Default returns the configuration used when no file overrides it.
func Default() *Config { return defaults() }

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %s", c.Loop.TickRate))
	}
	if c.Input.CycleKey == input.KeyUnknown {
		errs = append(errs, errors.New("input.cycle_key is not set"))
	}
	if c.Input.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("input.queue_size must be at least 1, got %d", c.Input.QueueSize))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name: "camcycle",
		},
		Loop: LoopConfig{
			TickRate: time.Second / 60,
		},
		Input: InputConfig{
			CycleKey:  input.KeyC,
			QueueSize: 64,
		},
		Camera: CameraConfig{
			InitialSlot: camera.Secondary,
		},
		Scripting: ScriptingConfig{
			Enabled: true,
			Dir:     "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
