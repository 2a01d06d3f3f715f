package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cursortrail/cursor"
)

// ErrNoTheme is returned by Load when the theme file does not exist.
var ErrNoTheme = errors.New("theme: file not found")

// Theme is the on-disk form of the engine configuration. Omitted
// fields stay at their engine defaults.
type Theme struct {
	Size             float64 `yaml:"size,omitempty"`
	Color            string  `yaml:"color,omitempty"`
	Opacity          float64 `yaml:"opacity,omitempty"`
	Speed            float64 `yaml:"speed,omitempty"`
	HideNativeCursor bool    `yaml:"hide_native_cursor,omitempty"`
	ExtraClass       string  `yaml:"extra_class,omitempty"`
	InteractiveOnly  bool    `yaml:"interactive_only,omitempty"`

	Outline      bool    `yaml:"outline,omitempty"`
	OutlineWidth float64 `yaml:"outline_width,omitempty"`

	CenterDot           bool    `yaml:"center_dot,omitempty"`
	CenterDotSize       float64 `yaml:"center_dot_size,omitempty"`
	CenterDotColor      string  `yaml:"center_dot_color,omitempty"`
	CenterDotHoverColor string  `yaml:"center_dot_hover_color,omitempty"`

	HoverColor string       `yaml:"hover_color,omitempty"`
	Hover      *HoverEffect `yaml:"hover,omitempty"`

	Follow          string  `yaml:"follow,omitempty"`
	SpringFrequency float64 `yaml:"spring_frequency,omitempty"`
	SpringDamping   float64 `yaml:"spring_damping,omitempty"`
}

type HoverEffect struct {
	Color   string   `yaml:"color,omitempty"`
	Opacity *float64 `yaml:"opacity,omitempty"`
	Scale   float64  `yaml:"scale,omitempty"`
}

// Default returns a theme that renders the engine's stock look.
func Default() Theme {
	return Theme{}
}

// Load reads and decodes a theme file.
func Load(path string) (Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Theme{}, fmt.Errorf("%w: %s", ErrNoTheme, path)
		}
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	var t Theme
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return t, nil
}

// Encode renders the theme as yaml, suitable for writing back to disk
// or the clipboard.
func (t Theme) Encode() ([]byte, error) {
	b, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return b, nil
}

// Config converts the theme to a full engine configuration; the engine
// defaults anything the theme leaves unset.
func (t Theme) Config() cursor.Config {
	cfg := cursor.Config{
		Size:                t.Size,
		Color:               t.Color,
		Opacity:             t.Opacity,
		Speed:               t.Speed,
		HideNativeCursor:    t.HideNativeCursor,
		ExtraClass:          t.ExtraClass,
		InteractiveOnly:     t.InteractiveOnly,
		Outline:             t.Outline,
		OutlineWidth:        t.OutlineWidth,
		CenterDot:           t.CenterDot,
		CenterDotSize:       t.CenterDotSize,
		CenterDotColor:      t.CenterDotColor,
		CenterDotHoverColor: t.CenterDotHoverColor,
		HoverColor:          t.HoverColor,
		Follow:              cursor.FollowMode(t.Follow),
		SpringFrequency:     t.SpringFrequency,
		SpringDamping:       t.SpringDamping,
	}
	if t.Hover != nil {
		cfg.HoverEffect = &cursor.HoverEffect{
			Color:   t.Hover.Color,
			Opacity: t.Hover.Opacity,
			Scale:   t.Hover.Scale,
		}
	}
	return cfg
}

// Patch converts the theme to a reconfiguration patch setting every
// field the theme carries, so a live engine picks up a reloaded file
// wholesale.
func (t Theme) Patch() cursor.Patch {
	cfg := t.Config()
	follow := cfg.Follow
	return cursor.Patch{
		Size:                &cfg.Size,
		Color:               &cfg.Color,
		Opacity:             &cfg.Opacity,
		Speed:               &cfg.Speed,
		HideNativeCursor:    &cfg.HideNativeCursor,
		ExtraClass:          &cfg.ExtraClass,
		InteractiveOnly:     &cfg.InteractiveOnly,
		Outline:             &cfg.Outline,
		OutlineWidth:        &cfg.OutlineWidth,
		CenterDot:           &cfg.CenterDot,
		CenterDotSize:       &cfg.CenterDotSize,
		CenterDotColor:      &cfg.CenterDotColor,
		CenterDotHoverColor: &cfg.CenterDotHoverColor,
		HoverColor:          &cfg.HoverColor,
		HoverEffect:         cfg.HoverEffect,
		Follow:              &follow,
		SpringFrequency:     &cfg.SpringFrequency,
		SpringDamping:       &cfg.SpringDamping,
	}
}

// FromConfig captures a live engine configuration as a theme.
func FromConfig(cfg cursor.Config) Theme {
	t := Theme{
		Size:                cfg.Size,
		Color:               cfg.Color,
		Opacity:             cfg.Opacity,
		Speed:               cfg.Speed,
		HideNativeCursor:    cfg.HideNativeCursor,
		ExtraClass:          cfg.ExtraClass,
		InteractiveOnly:     cfg.InteractiveOnly,
		Outline:             cfg.Outline,
		OutlineWidth:        cfg.OutlineWidth,
		CenterDot:           cfg.CenterDot,
		CenterDotSize:       cfg.CenterDotSize,
		CenterDotColor:      cfg.CenterDotColor,
		CenterDotHoverColor: cfg.CenterDotHoverColor,
		HoverColor:          cfg.HoverColor,
		Follow:              string(cfg.Follow),
		SpringFrequency:     cfg.SpringFrequency,
		SpringDamping:       cfg.SpringDamping,
	}
	if cfg.HoverEffect != nil {
		t.Hover = &HoverEffect{
			Color:   cfg.HoverEffect.Color,
			Opacity: cfg.HoverEffect.Opacity,
			Scale:   cfg.HoverEffect.Scale,
		}
	}
	return t
}
