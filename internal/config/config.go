// Package config loads the tunables of the positioning engine and its
// simulator from a YAML file and FLOATING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	floating "github.com/grindlemire/go-floating"
)

// Config holds the whole configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Gesture GestureConfig `mapstructure:"gesture" yaml:"gesture"`
	Inner   InnerConfig   `mapstructure:"inner" yaml:"inner"`
	Scene   SceneConfig   `mapstructure:"scene" yaml:"scene"`
}

// LoggerConfig configures diagnostics output.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// GestureConfig mirrors floating.GestureConfig plus the frame rate.
type GestureConfig struct {
	TimeConstant      time.Duration `mapstructure:"time_constant" yaml:"time_constant"`
	VelocitySmoothing float64       `mapstructure:"velocity_smoothing" yaml:"velocity_smoothing"`
	AmplitudeFactor   float64       `mapstructure:"amplitude_factor" yaml:"amplitude_factor"`
	MinFlickVelocity  float64       `mapstructure:"min_flick_velocity" yaml:"min_flick_velocity"`
	MoveThreshold     float64       `mapstructure:"move_threshold" yaml:"move_threshold"`
	StopDistance      float64       `mapstructure:"stop_distance" yaml:"stop_distance"`
	BoundaryEpsilon   float64       `mapstructure:"boundary_epsilon" yaml:"boundary_epsilon"`
	NudgeNativeScroll bool          `mapstructure:"nudge_native_scroll" yaml:"nudge_native_scroll"`
	FrameInterval     time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
}

// InnerConfig configures inner anchoring and its fallback.
type InnerConfig struct {
	MinItemsVisible            int     `mapstructure:"min_items_visible" yaml:"min_items_visible"`
	ReferenceOverflowThreshold float64 `mapstructure:"reference_overflow_threshold" yaml:"reference_overflow_threshold"`
	Padding                    float64 `mapstructure:"padding" yaml:"padding"`
	FallbackGap                float64 `mapstructure:"fallback_gap" yaml:"fallback_gap"`
}

// SceneConfig describes the geometry simulated by the CLI.
type SceneConfig struct {
	ViewportWidth   float64 `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight  float64 `mapstructure:"viewport_height" yaml:"viewport_height"`
	ReferenceX      float64 `mapstructure:"reference_x" yaml:"reference_x"`
	ReferenceY      float64 `mapstructure:"reference_y" yaml:"reference_y"`
	ReferenceWidth  float64 `mapstructure:"reference_width" yaml:"reference_width"`
	ReferenceHeight float64 `mapstructure:"reference_height" yaml:"reference_height"`
	ItemHeight      float64 `mapstructure:"item_height" yaml:"item_height"`
	Items           int     `mapstructure:"items" yaml:"items"`
	Index           int     `mapstructure:"index" yaml:"index"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)

	// -- Gesture --
	d := floating.DefaultGestureConfig()
	v.SetDefault("gesture.time_constant", d.TimeConstant)
	v.SetDefault("gesture.velocity_smoothing", d.VelocitySmoothing)
	v.SetDefault("gesture.amplitude_factor", d.AmplitudeFactor)
	v.SetDefault("gesture.min_flick_velocity", d.MinFlickVelocity)
	v.SetDefault("gesture.move_threshold", d.MoveThreshold)
	v.SetDefault("gesture.stop_distance", d.StopDistance)
	v.SetDefault("gesture.boundary_epsilon", d.BoundaryEpsilon)
	v.SetDefault("gesture.nudge_native_scroll", false)
	v.SetDefault("gesture.frame_interval", "16ms")

	// -- Inner --
	v.SetDefault("inner.min_items_visible", floating.DefaultMinItemsVisible)
	v.SetDefault("inner.reference_overflow_threshold", 0.0)
	v.SetDefault("inner.padding", 10.0)
	v.SetDefault("inner.fallback_gap", 4.0)

	// -- Scene --
	v.SetDefault("scene.viewport_width", 800.0)
	v.SetDefault("scene.viewport_height", 400.0)
	v.SetDefault("scene.reference_x", 100.0)
	v.SetDefault("scene.reference_y", 185.0)
	v.SetDefault("scene.reference_width", 200.0)
	v.SetDefault("scene.reference_height", 30.0)
	v.SetDefault("scene.item_height", 20.0)
	v.SetDefault("scene.items", 50)
	v.SetDefault("scene.index", 0)
}

// Load reads path (optional) on top of the defaults and FLOATING_* env vars.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("FLOATING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return New(v)
}

// New decodes and validates the configuration held by v.
func New(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks for sane values.
func (c *Config) Validate() error {
	var errs []error
	if c.Gesture.TimeConstant <= 0 {
		errs = append(errs, errors.New("gesture.time_constant must be positive"))
	}
	if c.Gesture.VelocitySmoothing <= 0 || c.Gesture.VelocitySmoothing > 1 {
		errs = append(errs, errors.New("gesture.velocity_smoothing must be in (0, 1]"))
	}
	if c.Gesture.FrameInterval <= 0 {
		errs = append(errs, errors.New("gesture.frame_interval must be positive"))
	}
	if c.Inner.MinItemsVisible <= 0 {
		errs = append(errs, errors.New("inner.min_items_visible must be a positive integer"))
	}
	if c.Scene.Items < 0 {
		errs = append(errs, errors.New("scene.items must not be negative"))
	}
	if c.Scene.ItemHeight <= 0 {
		errs = append(errs, errors.New("scene.item_height must be positive"))
	}
	return errors.Join(errs...)
}

// Floating converts the gesture section for the library.
func (g GestureConfig) Floating() floating.GestureConfig {
	return floating.GestureConfig{
		TimeConstant:      g.TimeConstant,
		VelocitySmoothing: g.VelocitySmoothing,
		AmplitudeFactor:   g.AmplitudeFactor,
		MinFlickVelocity:  g.MinFlickVelocity,
		MoveThreshold:     g.MoveThreshold,
		StopDistance:      g.StopDistance,
		BoundaryEpsilon:   g.BoundaryEpsilon,
		NudgeNativeScroll: g.NudgeNativeScroll,
	}
}

// Overflow returns the overflow options for the inner section.
func (i InnerConfig) Overflow() floating.DetectOverflowOptions {
	return floating.DetectOverflowOptions{Padding: floating.SideAll(i.Padding)}
}
