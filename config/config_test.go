package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene/colors"
	"github.com/solarlune/skatescene/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {

	const data = `
[window]
width = 640

[camera]
eye = [0, 4, 12.5]

[scene]
word = "DUB"
plank_color = "burlywood"
wheel_color = [255, 0, 0]
checker = false
`

	cfg, err := Decode(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, Default().Window.Height, cfg.Window.Height)
	assert.Equal(t, mgl32.Vec3{0, 4, 12.5}, cfg.Camera.Eye)
	assert.Equal(t, "DUB", cfg.Scene.Word)
	assert.False(t, cfg.Scene.Checker)

	burlywood, ok := colors.Named("burlywood")
	require.True(t, ok)
	assert.Equal(t, burlywood, cfg.Scene.PlankColor.Vec3())
	assert.InDeltaSlice(t, []float32{1, 0, 0}, cfg.Scene.WheelColor[:], 1e-6)

}

func TestDecodeFractionalColor(t *testing.T) {
	cfg, err := Decode(context.Background(), strings.NewReader("[scene]\nplank_color = [0.5, 0.25, 1]\n"))
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0.5, 0.25, 1}, cfg.Scene.PlankColor.Vec3())
}

func TestDecodeErrors(t *testing.T) {

	cases := map[string]string{
		"unknown color":   "[scene]\nplank_color = \"notacolor\"\n",
		"short color":     "[scene]\nplank_color = [1, 2]\n",
		"bad component":   "[scene]\nplank_color = [1, \"x\", 2]\n",
		"bad fov":         "[camera]\nfov = 180\n",
		"far before near": "[camera]\nnear = 10\nfar = 5\n",
		"zero window":     "[window]\nwidth = 0\n",
		"long rider":      "[scene]\nrider = \"UB\"\n",
		"stopped ride":    "[scene]\nride_seconds = 0\n",
		"not toml":        "[scene\n",
		"nan fov":         "[camera]\nfov = nan\n",
		"nan near":        "[camera]\nnear = nan\n",
		"infinite eye":    "[camera]\neye = [inf, 0, 0]\n",
		"nan target":      "[camera]\ntarget = [0, nan, 0]\n",
		"nan board":       "[scene]\nboard_position = [nan, 0, 0]\n",
		"infinite ride":   "[scene]\nride_distance = -inf\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(context.Background(), strings.NewReader(data))
			assert.Error(t, err)
		})
	}

}

func TestUnknownKeysAreLogged(t *testing.T) {

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logging.Context(context.Background(), zap.New(core))

	_, err := Decode(ctx, strings.NewReader("[scene]\nsparkles = true\n"))
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "scene.sparkles", logs.All()[0].ContextMap()["keys"])

}

func TestLoad(t *testing.T) {

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scene]\nride_distance = 4\n"), 0644))

	cfg, err = Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.Scene.RideDistance)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

}
