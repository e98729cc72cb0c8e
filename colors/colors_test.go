package colors

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	c, ok := Named("Saddle Brown")
	require.True(t, ok)
	assert.True(t, c.ApproxEqualThreshold(RGB8(139, 69, 19), 1e-6), "got %v", c)

	_, ok = Named("not-a-color")
	assert.False(t, ok)
}

func TestColorRoundTrip(t *testing.T) {
	wood := Wood()
	assert.Equal(t, color.NRGBA{193, 154, 107, 255}, ToColor(wood))
	assert.True(t, FromColor(ToColor(wood)).ApproxEqualThreshold(wood, 1e-6))
}

func TestToColorClamps(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 0, 128, 255}, ToColor(mgl32.Vec3{2, -1, 0.5}))
}
