// Package rc loads the wcwidth rc file, a YAML document with width overrides
// and defaults for the command-line program.
package rc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/elves/wcwidth/pkg/env"
	"github.com/elves/wcwidth/pkg/logutil"
	"github.com/elves/wcwidth/pkg/wcwidth"
	"gopkg.in/yaml.v3"
)

var logger = logutil.GetLogger("[rc] ")

// Accumulation modes.
const (
	ModeRune  = "rune"
	ModeUTF16 = "utf16"
)

// DefaultTabWidth is the tab width used when the rc file doesn't set one.
const DefaultTabWidth = 8

// Config is the content of an rc file.
type Config struct {
	// Overrides maps codepoints to widths.
	Overrides map[rune]int
	// Mode is either ModeRune or ModeUTF16.
	Mode string
	// TabWidth is the number of columns a tab expands to when padding.
	TabWidth int
}

// Default returns the configuration used when there is no rc file.
func Default() *Config {
	return &Config{Overrides: map[rune]int{}, Mode: ModeRune, TabWidth: DefaultTabWidth}
}

type rawConfig struct {
	Overrides map[string]int `yaml:"overrides"`
	Mode      string         `yaml:"mode"`
	TabWidth  *int           `yaml:"tab-width"`
}

// Path returns the path of the rc file: the explicit value if non-empty, then
// $WCWIDTH_RC, then $XDG_CONFIG_HOME/wcwidth/rc.yaml, then
// ~/.config/wcwidth/rc.yaml. It returns "" if none can be determined.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(env.WCWIDTH_RC); p != "" {
		return p
	}
	if p := os.Getenv(env.XDG_CONFIG_HOME); p != "" {
		return filepath.Join(p, "wcwidth", "rc.yaml")
	}
	if home := os.Getenv(env.HOME); home != "" {
		return filepath.Join(home, ".config", "wcwidth", "rc.yaml")
	}
	return ""
}

// Load reads the rc file at path. A missing file yields the default
// configuration unless mustExist is true.
func Load(path string, mustExist bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			logger.Printf("no rc file at %s", path)
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded %s: %d overrides, mode %s", path, len(cfg.Overrides), cfg.Mode)
	return cfg, nil
}

// Parse parses an rc file. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var raw rawConfig
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, err
	}

	cfg := Default()
	for k, w := range raw.Overrides {
		r, err := wcwidth.ParseCodepoint(k)
		if err != nil {
			return nil, fmt.Errorf("overrides: %w", err)
		}
		if w < 0 || w > 2 {
			return nil, fmt.Errorf("overrides: invalid width %d for %U", w, r)
		}
		cfg.Overrides[r] = w
	}
	switch raw.Mode {
	case "":
	case ModeRune, ModeUTF16:
		cfg.Mode = raw.Mode
	default:
		return nil, fmt.Errorf("invalid mode %q, must be %s or %s", raw.Mode, ModeRune, ModeUTF16)
	}
	if raw.TabWidth != nil {
		if *raw.TabWidth < 0 {
			return nil, fmt.Errorf("invalid tab-width %d", *raw.TabWidth)
		}
		cfg.TabWidth = *raw.TabWidth
	}
	return cfg, nil
}

// Apply installs the overrides of cfg and returns a function that restores
// the overrides in effect before.
func (cfg *Config) Apply() (restore func()) {
	return wcwidth.ApplyOverrides(cfg.Overrides)
}
