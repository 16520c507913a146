package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ayn2op/wheel"
	"github.com/ayn2op/wheel/daytime"
	"github.com/ayn2op/wheel/keybind"
	"github.com/gdamore/tcell/v2"
)

const appName = "wheeldemo"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Wheel    WheelConfig   `toml:"wheel"`
	DayTime  DayTimeConfig `toml:"daytime"`
	Colors   ColorConfig   `toml:"colors"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type WheelConfig struct {
	LineHeight        float64  `toml:"line_height"`
	Wrapping          bool     `toml:"wrapping"`
	SnapDelay         Duration `toml:"snap_delay"`
	SnapDuration      Duration `toml:"snap_duration"`
	FlingDeceleration float64  `toml:"fling_deceleration"`
	MinFlingVelocity  float64  `toml:"min_fling_velocity"`
	MaxFlingVelocity  float64  `toml:"max_fling_velocity"`
	CenterMarker      bool     `toml:"center_marker"`
}

type DayTimeConfig struct {
	Is24Hour  bool   `toml:"is_24h"`
	Days      int    `toml:"days"`
	DayFormat string `toml:"day_format"`
}

type ColorConfig struct {
	Center        string `toml:"center"`
	Secondary     string `toml:"secondary"`
	Marker        string `toml:"marker"`
	Border        string `toml:"border"`
	FocusedBorder string `toml:"focused_border"`
}

type KeybindConfig struct {
	Previous   string `toml:"previous"`
	Next       string `toml:"next"`
	First      string `toml:"first"`
	Last       string `toml:"last"`
	PrevColumn string `toml:"prev_column"`
	NextColumn string `toml:"next_column"`
	Quit       string `toml:"quit"`
}

// Duration is a time.Duration written as "300ms" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func DefaultConfig() *Config {
	return &Config{
		Wheel: WheelConfig{
			LineHeight:        1,
			SnapDelay:         Duration{wheel.DefaultSnapDelay},
			SnapDuration:      Duration{wheel.DefaultSnapDuration},
			FlingDeceleration: wheel.DefaultFlingDeceleration,
			MinFlingVelocity:  wheel.DefaultMinFlingVelocity,
			MaxFlingVelocity:  wheel.DefaultMaxFlingVelocity,
			CenterMarker:      true,
		},
		DayTime: DayTimeConfig{
			Is24Hour:  true,
			Days:      7,
			DayFormat: "Mon 2 Jan",
		},
		Colors: ColorConfig{
			Center:        "white",
			Secondary:     "gray",
			Marker:        "navy",
			Border:        "white",
			FocusedBorder: "yellow",
		},
		Keybinds: KeybindConfig{
			Previous:   "up, k",
			Next:       "down, j",
			First:      "home, g",
			Last:       "end, G",
			PrevColumn: "left, h, shift+tab",
			NextColumn: "right, l, tab",
			Quit:       "q, esc, ctrl+c",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from path, or from ConfigPath when path is empty. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate checks values that the widgets would reject or misbehave with.
func (c *Config) Validate() error {
	switch {
	case !(c.Wheel.LineHeight > 0) || math.IsInf(c.Wheel.LineHeight, 1):
		return fmt.Errorf("%w: wheel.line_height must be positive and finite, got %v", ErrInvalid, c.Wheel.LineHeight)
	case c.Wheel.SnapDelay.Duration < 0:
		return fmt.Errorf("%w: wheel.snap_delay must not be negative", ErrInvalid)
	case c.Wheel.SnapDuration.Duration < 0:
		return fmt.Errorf("%w: wheel.snap_duration must not be negative", ErrInvalid)
	case !(c.Wheel.FlingDeceleration > 0):
		return fmt.Errorf("%w: wheel.fling_deceleration must be positive, got %v", ErrInvalid, c.Wheel.FlingDeceleration)
	case c.Wheel.MaxFlingVelocity < c.Wheel.MinFlingVelocity:
		return fmt.Errorf("%w: wheel.max_fling_velocity is below wheel.min_fling_velocity", ErrInvalid)
	case c.DayTime.Days <= 0:
		return fmt.Errorf("%w: daytime.days must be positive, got %d", ErrInvalid, c.DayTime.Days)
	case c.DayTime.DayFormat == "":
		return fmt.Errorf("%w: daytime.day_format is empty", ErrInvalid)
	}
	for name, value := range map[string]string{
		"center":         c.Colors.Center,
		"secondary":      c.Colors.Secondary,
		"marker":         c.Colors.Marker,
		"border":         c.Colors.Border,
		"focused_border": c.Colors.FocusedBorder,
	} {
		if _, err := parseColor(value); err != nil {
			return fmt.Errorf("%w: colors.%s: %w", ErrInvalid, name, err)
		}
	}
	return nil
}

// WheelConfig returns the picker configuration without values.
func (c *Config) WheelConfig() wheel.Config {
	cfg := wheel.DefaultConfig()
	cfg.LineHeight = c.Wheel.LineHeight
	cfg.Wrapping = c.Wheel.Wrapping
	cfg.SnapDelay = c.Wheel.SnapDelay.Duration
	cfg.SnapDuration = c.Wheel.SnapDuration.Duration
	cfg.FlingDeceleration = c.Wheel.FlingDeceleration
	cfg.MinFlingVelocity = c.Wheel.MinFlingVelocity
	cfg.MaxFlingVelocity = c.Wheel.MaxFlingVelocity
	styles := c.WheelStyles()
	cfg.Styles = &styles
	keys := c.WheelKeyMap()
	cfg.Keys = &keys
	return cfg
}

// WheelStyles converts the colors. Invalid colors were rejected by Validate
// and fall back to the terminal default here.
func (c *Config) WheelStyles() wheel.WheelStyles {
	styles := wheel.DefaultWheelStyles()
	center, _ := parseColor(c.Colors.Center)
	secondary, _ := parseColor(c.Colors.Secondary)
	marker, _ := parseColor(c.Colors.Marker)
	styles.Center = styles.Center.Foreground(center)
	styles.Secondary = styles.Secondary.Foreground(secondary)
	styles.Marker = styles.Marker.Background(marker)
	return styles
}

// ApplyTheme copies the border colors into the global theme. Call it before
// creating primitives.
func (c *Config) ApplyTheme() {
	border, _ := parseColor(c.Colors.Border)
	focused, _ := parseColor(c.Colors.FocusedBorder)
	wheel.Styles.BorderColor = border
	wheel.Styles.FocusedBorderColor = focused
}

func (c *Config) WheelKeyMap() wheel.WheelKeyMap {
	keys := wheel.DefaultWheelKeyMap()
	override(&keys.Previous, c.Keybinds.Previous)
	override(&keys.Next, c.Keybinds.Next)
	override(&keys.First, c.Keybinds.First)
	override(&keys.Last, c.Keybinds.Last)
	return keys
}

func (c *Config) DayTimeKeyMap() daytime.KeyMap {
	keys := daytime.DefaultKeyMap()
	override(&keys.PrevColumn, c.Keybinds.PrevColumn)
	override(&keys.NextColumn, c.Keybinds.NextColumn)
	return keys
}

func (c *Config) QuitKeybind() keybind.Keybind {
	return keybind.NewKeybind(
		keybind.WithKeys(keybind.ParseKeys(c.Keybinds.Quit)...),
		keybind.WithHelp("q", "quit"),
	)
}

// override replaces the keys of kb unless list is empty. The help text stays.
func override(kb *keybind.Keybind, list string) {
	if keys := keybind.ParseKeys(list); len(keys) > 0 {
		kb.SetKeys(keys...)
	}
}

// parseColor accepts names and "#rrggbb". The empty string is the terminal
// default color.
func parseColor(value string) (tcell.Color, error) {
	if value == "" || value == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(value)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", value)
	}
	return color, nil
}
