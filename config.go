package holdmenu

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate reports.
var ErrInvalidConfig = errors.New("holdmenu: invalid config")

// Config holds the timings, scale factors and sizes shared by every context
// menu in a scene. Build it once and pass it by value; sessions copy it at
// creation.
type Config struct {
	// FadeSpeed is the duration of opacity and blur transitions.
	FadeSpeed time.Duration `yaml:"fadeSpeed"`
	// AppearSpeed is the duration of scale transitions (bounce, menu entrance).
	AppearSpeed time.Duration `yaml:"appearSpeed"`

	ScreenShrinkFactor float64 `yaml:"screenShrinkFactor"` // background scale while the menu is open
	ExpandFactor       float64 `yaml:"expandFactor"`       // lifted node scale after the bounce
	ShrinkFactor       float64 `yaml:"shrinkFactor"`       // lifted node scale at the bottom of the bounce
	BlurIntensity      float64 `yaml:"blurIntensity"`
	HighlightAlpha     float64 `yaml:"highlightAlpha"` // press highlight opacity

	MenuItemHeight float64 `yaml:"menuItemHeight"`
	DividerHeight  float64 `yaml:"dividerHeight"`
	MenuWidth      float64 `yaml:"menuWidth"`
	MenuMargin     float64 `yaml:"menuMargin"`

	// RevealDelay separates the expanded measurement from the reveal phase.
	RevealDelay time.Duration `yaml:"revealDelay"`
	// ActivationDelay separates an item press from its OnActivate call.
	ActivationDelay time.Duration `yaml:"activationDelay"`

	LongPressDuration time.Duration `yaml:"longPressDuration"`
	LongPressSlop     float64       `yaml:"longPressSlop"` // pixels a held pointer may drift

	// ClampToViewport keeps the menu inside the viewport. Off by default:
	// the menu is placed purely relative to the anchor.
	ClampToViewport bool `yaml:"clampToViewport"`

	// HapticDuration and HapticMagnitude shape the pulse played by
	// EbitenHaptics at the bottom of the bounce.
	HapticDuration  time.Duration `yaml:"hapticDuration"`
	HapticMagnitude float64       `yaml:"hapticMagnitude"`

	// ScrollLock receives SetScrollEnabled(false) when a menu opens and
	// SetScrollEnabled(true) when it has fully closed. May be nil.
	ScrollLock ScrollLocker `yaml:"-"`
	// Haptics plays the pulse at the bottom of the bounce. May be nil.
	Haptics Haptics `yaml:"-"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		FadeSpeed:          200 * time.Millisecond,
		AppearSpeed:        250 * time.Millisecond,
		ScreenShrinkFactor: 0.95,
		ExpandFactor:       1.05,
		ShrinkFactor:       0.95,
		BlurIntensity:      20,
		HighlightAlpha:     0.25,
		MenuItemHeight:     44,
		DividerHeight:      1,
		MenuWidth:          250,
		MenuMargin:         7,
		RevealDelay:        100 * time.Millisecond,
		ActivationDelay:    200 * time.Millisecond,
		LongPressDuration:  400 * time.Millisecond,
		LongPressSlop:      10,
		HapticDuration:     15 * time.Millisecond,
		HapticMagnitude:    0.5,
	}
}

// Validate reports every out-of-range field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	type durationField struct {
		name string
		d    time.Duration
	}
	type floatField struct {
		name string
		v    float64
	}
	for _, f := range []durationField{
		{"fadeSpeed", c.FadeSpeed},
		{"appearSpeed", c.AppearSpeed},
		{"revealDelay", c.RevealDelay},
		{"activationDelay", c.ActivationDelay},
		{"longPressDuration", c.LongPressDuration},
		{"hapticDuration", c.HapticDuration},
	} {
		if f.d < 0 {
			bad("%s must not be negative, got %v", f.name, f.d)
		}
	}
	for _, f := range []floatField{
		{"screenShrinkFactor", c.ScreenShrinkFactor},
		{"expandFactor", c.ExpandFactor},
		{"shrinkFactor", c.ShrinkFactor},
		{"menuItemHeight", c.MenuItemHeight},
		{"menuWidth", c.MenuWidth},
	} {
		if f.v <= 0 {
			bad("%s must be positive, got %v", f.name, f.v)
		}
	}
	for _, f := range []floatField{
		{"blurIntensity", c.BlurIntensity},
		{"dividerHeight", c.DividerHeight},
		{"menuMargin", c.MenuMargin},
		{"longPressSlop", c.LongPressSlop},
	} {
		if f.v < 0 {
			bad("%s must not be negative, got %v", f.name, f.v)
		}
	}
	if c.HighlightAlpha < 0 || c.HighlightAlpha > 1 {
		bad("highlightAlpha must be within [0, 1], got %v", c.HighlightAlpha)
	}
	if c.HapticMagnitude < 0 || c.HapticMagnitude > 1 {
		bad("hapticMagnitude must be within [0, 1], got %v", c.HapticMagnitude)
	}
	return errors.Join(errs...)
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
// Durations use Go syntax ("100ms").
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads path and passes its contents to LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}
