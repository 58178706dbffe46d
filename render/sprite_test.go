package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDefaultSpriteDecodes(t *testing.T) {
	s := DefaultSprite()
	require.NotNil(t, s)
	assert.Equal(t, 64, s.bounds.Dx())
	assert.Equal(t, 64, s.bounds.Dy())
	assert.Same(t, s, DefaultSprite())
}

func TestLoadSpriteDataURI(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 1, color.NRGBA{G: 255, A: 128})

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodePNG(t, img))
	s, err := LoadSprite(uri)
	require.NoError(t, err)

	c, a := s.Sample(0.1, 0.1)
	assert.InDelta(t, 1.0, c.R, 1e-3)
	assert.InDelta(t, 1.0, a, 1e-9)

	c, a = s.Sample(0.9, 0.9)
	assert.InDelta(t, 1.0, c.G, 1e-2)
	assert.InDelta(t, 128.0/255, a, 1e-2)

	_, a = s.Sample(0.9, 0.1)
	assert.Zero(t, a, "transparent texel")

	_, a = s.Sample(1.2, 0.5)
	assert.Zero(t, a, "outside the sprite")
}

func TestLoadSpriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flake.png")
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	require.NoError(t, os.WriteFile(path, encodePNG(t, img), 0o644))

	s, err := LoadSprite(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.bounds.Dx())
}

func TestLoadSpriteErrors(t *testing.T) {
	for name, ref := range map[string]string{
		"missing comma": "data:image/png;base64",
		"not base64":    "data:image/png,abc",
		"bad payload":   "data:image/png;base64,!!!",
		"not an image":  "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("snow")),
		"missing file":  filepath.Join(t.TempDir(), "nope.png"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSprite(ref)
			assert.Error(t, err)
		})
	}
}
