// Package config loads the landing page settings from defaults, an optional
// JSON or YAML file, CAROUSEL_ environment variables and command line flags,
// in that order of precedence (later wins).
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/phanxgames/carousel"
	"github.com/phanxgames/carousel/internal/landing"
)

// EnvPrefix filters the environment variables that are read. A double
// underscore separates nesting levels: CAROUSEL_AGENTS__COOLDOWN=300ms.
const EnvPrefix = "CAROUSEL_"

var (
	// ErrUnknownConfigFormat is returned for files that are neither JSON nor YAML.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
	// ErrWindowSize is returned for a non-positive window size or tick rate.
	ErrWindowSize = errors.New("window size and tps must be positive")
)

// Section is one carousel's tuning.
type Section struct {
	carousel.Config `koanf:",squash"`
	Visibility      carousel.VisibilityConfig `koanf:"visibility"`
}

// Window is the desktop host's window.
type Window struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
	TPS    int `koanf:"tps"`
}

// Settings is the full configuration.
type Settings struct {
	Agents        Section `koanf:"agents"`
	Features      Section `koanf:"features"`
	Window        Window  `koanf:"window"`
	ReducedMotion bool    `koanf:"reducedmotion"`
}

// Section returns the settings of the named section.
func (s Settings) Section(name string) (Section, error) {
	switch name {
	case landing.SectionAgents:
		return s.Agents, nil
	case landing.SectionFeatures:
		return s.Features, nil
	default:
		return Section{}, errors.Newf("unknown section %q", name)
	}
}

// Validate checks every section against its item count and the window size.
func (s Settings) Validate() error {
	if err := s.Agents.Validate(len(landing.Agents())); err != nil {
		return errors.Wrap(err, landing.SectionAgents)
	}
	if err := s.Features.Validate(len(landing.Features())); err != nil {
		return errors.Wrap(err, landing.SectionFeatures)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 || s.Window.TPS <= 0 {
		return errors.Wrapf(ErrWindowSize, "%dx%d at %d tps", s.Window.Width, s.Window.Height, s.Window.TPS)
	}
	return nil
}

// Defaults returns the flattened default values, taken from the section
// presets.
func Defaults() map[string]interface{} {
	out := map[string]interface{}{
		"window.width":  1280,
		"window.height": 720,
		"window.tps":    carousel.DefaultTPS,
		"reducedmotion": false,
	}
	presets := map[string]landing.Preset{
		landing.SectionAgents:   landing.AgentsPreset(),
		landing.SectionFeatures: landing.FeaturesPreset(),
	}
	for name, p := range presets {
		out[name+".initialindex"] = p.Carousel.InitialIndex
		out[name+".cooldown"] = p.Carousel.Cooldown.String()
		out[name+".minswipedistance"] = p.Carousel.MinSwipeDistance
		out[name+".visibility.threshold"] = p.Visibility.Threshold
		out[name+".visibility.rootmargin"] = p.Visibility.RootMargin
	}
	return out
}

// BindFlags registers the command line overrides on fs.
func BindFlags(fs *flag.FlagSet) {
	fs.Int("window.width", 1280, "window width in pixels")
	fs.Int("window.height", 720, "window height in pixels")
	fs.Int("window.tps", carousel.DefaultTPS, "updates per second")
	fs.Bool("reducedmotion", false, "shorten slot animations")
	fs.Duration("agents.cooldown", landing.AgentsPreset().Carousel.Cooldown, "agents navigation lock")
	fs.Duration("features.cooldown", landing.FeaturesPreset().Carousel.Cooldown, "features navigation lock")
}

// Loader accumulates configuration sources.
type Loader struct {
	k *koanf.Koanf
}

// NewLoader returns a loader holding the defaults.
func NewLoader() (*Loader, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}
	return &Loader{k: k}, nil
}

// LoadFile merges a JSON or YAML file, chosen by extension.
func (l *Loader) LoadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "config file %s", path)
	}
	if info.IsDir() {
		return errors.Newf("config file %s is a directory", path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Wrapf(ErrUnknownConfigFormat, "%s", path)
	}
	if err := l.k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, "load config file %s", path)
	}
	return nil
}

// LoadEnv merges CAROUSEL_ environment variables. Only keys that already
// exist are accepted.
func (l *Loader) LoadEnv() error {
	return l.k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		if !l.k.Exists(key) {
			return ""
		}
		return key
	}), nil)
}

// LoadFlags merges flags that were set on the command line.
func (l *Loader) LoadFlags(fs *flag.FlagSet) error {
	return l.k.Load(posflag.Provider(fs, ".", l.k), nil)
}

// Settings decodes and validates the merged configuration.
func (l *Loader) Settings() (Settings, error) {
	var s Settings
	if err := l.k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, errors.Wrap(err, "decode config")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load runs every source in order. path and fs may be empty or nil.
func Load(path string, fs *flag.FlagSet) (Settings, error) {
	l, err := NewLoader()
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		if err := l.LoadFile(path); err != nil {
			return Settings{}, err
		}
	}
	if err := l.LoadEnv(); err != nil {
		return Settings{}, errors.Wrap(err, "load environment")
	}
	if fs != nil {
		if err := l.LoadFlags(fs); err != nil {
			return Settings{}, errors.Wrap(err, "load flags")
		}
	}
	return l.Settings()
}

// TickDuration returns the duration of one update at the configured rate.
func (w Window) TickDuration() time.Duration {
	return time.Second / time.Duration(w.TPS)
}
