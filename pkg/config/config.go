// Package config loads the scoresheet configuration file.
//
// The file is TOML and every key is optional:
//
//	font = "/usr/share/fonts/noto/NotoSansCJK-Regular.ttc"
//	font_size = 16
//
//	[layout]
//	bars_per_column = 4
//	bar_height = 600
//	lane_spacing = 48
//	note_radius = 20
//	margin = 100
//
// Keys left out keep their defaults. Unknown keys are an error.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/fonts"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
)

const appName = "scoresheet"

// Config is the decoded configuration file.
type Config struct {
	// Font is the path of the metadata font. Empty selects the embedded
	// Go Regular face.
	Font     string          `toml:"font"`
	FontSize float64         `toml:"font_size"`
	Layout   layout.Settings `toml:"layout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FontSize: fonts.DefaultMetaSize,
		Layout:   layout.DefaultSettings(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/scoresheet/config.toml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config directory")
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields [Default].
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath].
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Validate checks the font size and the layout settings.
func (c Config) Validate() error {
	if c.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font_size must be positive, got %v", c.FontSize)
	}
	return c.Layout.Validate()
}
