package tweener

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Preset is a reusable tween configuration, usually loaded from a file.
type Preset struct {
	Ease      Ease     `toml:"ease" yaml:"ease"`
	Duration  float64  `toml:"duration" yaml:"duration"` // seconds; 0 keeps the tween's own
	Delay     float64  `toml:"delay" yaml:"delay"`
	Loop      LoopType `toml:"loop" yaml:"loop"`
	LoopCount int      `toml:"loop_count" yaml:"loop_count"`
}

// Apply configures t from p. Like the setters it calls, it has no effect on
// a tween that already started.
func (p Preset) Apply(t *Tween) *Tween {
	if p.Duration > 0 {
		t.SetDuration(p.Duration)
	}
	return t.SetEase(p.Ease).SetDelay(p.Delay).SetLoop(p.Loop, p.LoopCount)
}

// DefaultPreset matches a freshly created tween.
func DefaultPreset() Preset {
	return Preset{Ease: DefaultEase, Loop: LoopOnce, LoopCount: 1}
}

// LoggingConfig selects the diagnostic logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	Output string `toml:"output" yaml:"output"` // file path; empty means stderr
}

// Config is the file format shared by the tools: logging, named presets and
// an optional playback script.
type Config struct {
	Logging LoggingConfig     `toml:"logging" yaml:"logging"`
	Presets map[string]Preset `toml:"presets" yaml:"presets"`
	Script  string            `toml:"script" yaml:"script"`
}

// Format names accepted by LoadPresets and LoadConfig.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Presets: map[string]Preset{},
	}
}

// LoadConfig reads a TOML or YAML config file, chosen by extension, over the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := decode(data, formatOf(path), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadPresets decodes a preset table. The document is either a top-level
// [presets] table or a bare map of names to presets. Fields a preset omits
// keep their DefaultPreset values.
func LoadPresets(data []byte, format string) (map[string]Preset, error) {
	var doc struct {
		Presets map[string]rawPreset `toml:"presets" yaml:"presets"`
	}
	if err := decode(data, format, &doc); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	raw := doc.Presets
	if raw == nil {
		if err := decode(data, format, &raw); err != nil {
			return nil, fmt.Errorf("parse presets: %w", err)
		}
	}
	out := make(map[string]Preset, len(raw))
	for name, r := range raw {
		out[name] = r.preset()
	}
	return out, nil
}

// LoadPresetFile reads presets from a .toml, .yaml or .yml file.
func LoadPresetFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	presets, err := LoadPresets(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// rawPreset distinguishes omitted fields from zero values.
type rawPreset struct {
	Ease      *Ease     `toml:"ease" yaml:"ease"`
	Duration  float64   `toml:"duration" yaml:"duration"`
	Delay     float64   `toml:"delay" yaml:"delay"`
	Loop      *LoopType `toml:"loop" yaml:"loop"`
	LoopCount *int      `toml:"loop_count" yaml:"loop_count"`
}

func (r rawPreset) preset() Preset {
	p := DefaultPreset()
	p.Duration = r.Duration
	p.Delay = r.Delay
	if r.Ease != nil {
		p.Ease = *r.Ease
	}
	if r.Loop != nil {
		p.Loop = *r.Loop
	}
	if r.LoopCount != nil {
		p.LoopCount = *r.LoopCount
	}
	return p
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(data []byte, format string, v any) error {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		return toml.Unmarshal(data, v)
	case FormatYAML, "yml":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
