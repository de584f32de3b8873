package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/render"
)

// Config is the optional user configuration file.
//
//	[log]
//	level = "debug"
//
//	[render]
//	scale = 20
//	labels = true
//	stroke = "#000000"
//	background = "#fafafa"
//	palette = ["#8dd3c7", "#ffffb3"]
type Config struct {
	Log    LogConfig    `toml:"log"`
	Render RenderConfig `toml:"render"`
}

// LogConfig sets the default log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// RenderConfig sets defaults for the render and view commands.
type RenderConfig struct {
	Scale      int      `toml:"scale"`
	Labels     bool     `toml:"labels"`
	Stroke     string   `toml:"stroke"`
	Background string   `toml:"background"`
	Palette    []string `toml:"palette"`
}

func defaultConfig() Config {
	return Config{Render: RenderConfig{Scale: render.DefaultScale}}
}

// configDir returns the config directory using XDG standard (~/.config/floorplan/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config at path, or at the default location when path
// is empty. A missing default file yields the defaults; a missing explicit
// file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fperrors.Wrap(fperrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fperrors.New(fperrors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Log.Level != "" {
		if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
			return cfg, fperrors.Wrap(fperrors.ErrCodeInvalidConfig, err, "log.level in %s", path)
		}
	}
	if cfg.Render.Scale <= 0 {
		return cfg, fperrors.New(fperrors.ErrCodeInvalidConfig,
			"render.scale in %s must be positive, got %d", path, cfg.Render.Scale)
	}
	return cfg, nil
}

// options converts the render section into renderer options.
func (rc RenderConfig) options() []render.Option {
	opts := []render.Option{
		render.WithScale(rc.Scale),
		render.WithStroke(rc.Stroke),
		render.WithBackground(rc.Background),
		render.WithPalette(rc.Palette),
	}
	if rc.Labels {
		opts = append(opts, render.WithLabels())
	}
	return opts
}
