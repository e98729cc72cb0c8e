// Package config loads the settings for the demo scene from TOML.
package config

import (
	"context"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/solarlune/skatescene/colors"
	"github.com/solarlune/skatescene/logging"
	"go.uber.org/zap"
)

// Config is the full set of settings for the demo.
type Config struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Scene  Scene  `toml:"scene"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Camera struct {
	Eye    mgl32.Vec3 `toml:"eye"`
	Target mgl32.Vec3 `toml:"target"`
	FOV    float32    `toml:"fov"` // vertical, in degrees
	Near   float32    `toml:"near"`
	Far    float32    `toml:"far"`
}

// Scene describes what's in the scene and how the skateboard moves.
type Scene struct {
	Word          string     `toml:"word"`           // Block letters to spell out; letters without a glyph leave a gap
	WordSpacing   float32    `toml:"word_spacing"`   // Distance between letter centers
	WordPosition  mgl32.Vec3 `toml:"word_position"`
	Rider         string     `toml:"rider"`          // Letter riding the skateboard; empty for none
	BoardPosition mgl32.Vec3 `toml:"board_position"` // Where the skateboard starts
	RideDistance  float32    `toml:"ride_distance"`  // How far along X the board rolls before turning back
	RideSeconds   float32    `toml:"ride_seconds"`   // How long one leg of the ride takes
	PlankColor    Color      `toml:"plank_color"`
	WheelColor    Color      `toml:"wheel_color"`
	Checker       bool       `toml:"checker"` // Whether the plank gets a checkerboard texture
}

// Color is an RGB color read either as an SVG color name ("burlywood") or as an [r, g, b] triple. Triples
// with any component above 1 are taken as 0-255.
type Color mgl32.Vec3

// Vec3 returns the color as a vector of components from 0 to 1.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3(c)
}

func (c *Color) UnmarshalTOML(value interface{}) error {

	switch v := value.(type) {

	case string:
		named, ok := colors.Named(v)
		if !ok {
			return errors.Errorf("unknown color name %q", v)
		}
		*c = Color(named)
		return nil

	case []interface{}:
		if len(v) != 3 {
			return errors.Errorf("color needs 3 components, got %d", len(v))
		}
		var rgb mgl32.Vec3
		for i, component := range v {
			switch n := component.(type) {
			case int64:
				rgb[i] = float32(n)
			case float64:
				rgb[i] = float32(n)
			default:
				return errors.Errorf("color component %d is a %T, not a number", i, component)
			}
		}
		if rgb[0] > 1 || rgb[1] > 1 || rgb[2] > 1 {
			rgb = rgb.Mul(1.0 / 255)
		}
		*c = Color(rgb)
		return nil

	}

	return errors.Errorf("can't read a color from %T", value)

}

// Default returns the settings the demo runs with when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  960,
			Height: 540,
			Title:  "skatescene",
		},
		Camera: Camera{
			Eye:    mgl32.Vec3{0, 8, 24},
			Target: mgl32.Vec3{0, 2, 0},
			FOV:    60,
			Near:   0.1,
			Far:    200,
		},
		Scene: Scene{
			Word:          "BOUD",
			WordSpacing:   5,
			WordPosition:  mgl32.Vec3{0, 0, -6},
			Rider:         "U",
			BoardPosition: mgl32.Vec3{-8, 0, 2},
			RideDistance:  16,
			RideSeconds:   3,
			PlankColor:    Color(colors.Wood()),
			WheelColor:    Color(colors.Black()),
			Checker:       true,
		},
	}
}

// Validate reports the first setting that can't be used.
func (cfg Config) Validate() error {

	switch {
	case !finite(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far):
		return errors.Errorf("camera fov %v, near %v, and far %v must be finite", cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	case !finite(cfg.Camera.Eye[:]...) || !finite(cfg.Camera.Target[:]...):
		return errors.Errorf("camera eye %v and target %v must be finite", cfg.Camera.Eye, cfg.Camera.Target)
	case !finite(cfg.Scene.WordPosition[:]...) || !finite(cfg.Scene.BoardPosition[:]...):
		return errors.Errorf("word_position %v and board_position %v must be finite", cfg.Scene.WordPosition, cfg.Scene.BoardPosition)
	case !finite(cfg.Scene.WordSpacing, cfg.Scene.RideDistance, cfg.Scene.RideSeconds):
		return errors.Errorf("word_spacing %v, ride_distance %v, and ride_seconds %v must be finite",
			cfg.Scene.WordSpacing, cfg.Scene.RideDistance, cfg.Scene.RideSeconds)
	case cfg.Window.Width <= 0 || cfg.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height)
	case cfg.Camera.FOV <= 0 || cfg.Camera.FOV >= 180:
		return errors.Errorf("camera fov %v must be between 0 and 180 degrees", cfg.Camera.FOV)
	case cfg.Camera.Near <= 0:
		return errors.Errorf("camera near plane %v must be positive", cfg.Camera.Near)
	case cfg.Camera.Far <= cfg.Camera.Near:
		return errors.Errorf("camera far plane %v must be beyond the near plane %v", cfg.Camera.Far, cfg.Camera.Near)
	case cfg.Camera.Eye == cfg.Camera.Target:
		return errors.New("camera eye and target must differ")
	case cfg.Scene.RideSeconds <= 0:
		return errors.Errorf("ride_seconds %v must be positive", cfg.Scene.RideSeconds)
	case len([]rune(cfg.Scene.Rider)) > 1:
		return errors.Errorf("rider %q must be a single letter", cfg.Scene.Rider)
	}

	return nil

}

func finite(values ...float32) bool {
	for _, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// Decode reads settings from r on top of the defaults, so a file only needs the values it changes.
func Decode(ctx context.Context, r io.Reader) (Config, error) {

	cfg := Default()

	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logging.From(ctx).Warn("ignoring unknown config keys", zap.Stringer("keys", keyList(undecoded)))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil

}

// Load reads settings from the TOML file at path. An empty path gives the defaults.
func Load(ctx context.Context, path string) (Config, error) {

	if path == "" {
		return Default(), nil
	}

	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}

	logger := logging.From(ctx).With(zap.String("path", path))

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warn("ignoring unknown config keys", zap.Stringer("keys", keyList(undecoded)))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}

	logger.Debug("config loaded", zap.Int("keys", len(meta.Keys())))

	return cfg, nil

}

type keyList []toml.Key

func (keys keyList) String() string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.String())
	}
	return strings.Join(names, ", ")
}
