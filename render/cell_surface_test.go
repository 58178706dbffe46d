package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snowfall/vmath"
)

func newTestSurface(t *testing.T, w, h int) (tcell.SimulationScreen, *CellSurface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen, NewCellSurface(screen, 8, 16, colorful.Color{})
}

func TestCellSurfacePixelSize(t *testing.T) {
	_, s := newTestSurface(t, 10, 5)
	w, h := s.PixelSize()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)
}

func TestCellSurfaceClear(t *testing.T) {
	screen, s := newTestSurface(t, 4, 3)
	screen.SetContent(1, 1, 'x', nil, tcell.StyleDefault)

	s.Clear()
	r, _, _, _ := screen.GetContent(1, 1)
	assert.Equal(t, ' ', r)
}

func TestCellSurfaceCircleGlyphs(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{1, '·'},
		{2, '•'},
		{3, '*'},
		{3.9, '❄'},
	}

	for _, tt := range tests {
		screen, s := newTestSurface(t, 10, 5)
		s.Circle(vmath.V2F(20, 40), tt.radius, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 1}})

		// Pixel (20, 40) lands in cell (2, 2)
		r, _, style, _ := screen.GetContent(2, 2)
		assert.Equal(t, tt.want, r, "radius %v", tt.radius)
		fg, _, _ := style.Decompose()
		red, _, _ := fg.RGB()
		assert.Equal(t, int32(255), red)
	}
}

func TestCellSurfaceCircleOpacityBlends(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	s.Circle(vmath.V2F(4, 8), 1, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 0.5}})

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	r, g, b := fg.RGB()
	assert.Equal(t, int32(128), r)
	assert.Equal(t, int32(128), g)
	assert.Equal(t, int32(128), b)
}

func TestCellSurfaceCircleSkips(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	s.Clear()
	s.Circle(vmath.V2F(4, 8), 1, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 0}})
	s.Circle(vmath.V2F(4, 8), 1, CircleStyle{Fill: Fill{Colour: "bogus", Opacity: 1}})
	s.Circle(vmath.V2F(-50, 8), 1, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 1}})

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, ' ', r)
}

func TestCellSurfaceLargeCircleFillsDisc(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	s.Circle(vmath.V2F(40, 40), 12, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 1}})

	r, _, _, _ := screen.GetContent(4, 2)
	assert.Equal(t, '█', r)
	r, _, _, _ = screen.GetContent(0, 0)
	assert.NotEqual(t, '█', r)
}

func solidSprite(w, h int, c color.Color) *Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return NewSprite(img)
}

func TestCellSurfaceSmallImageIsGlyph(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	sprite := solidSprite(4, 4, color.RGBA{R: 255, A: 255})

	s.Image(sprite, vmath.V2F(16, 32), Size{Width: 4, Height: 4})
	r, _, style, _ := screen.GetContent(2, 2)
	assert.Equal(t, '❄', r)
	fg, _, _ := style.Decompose()
	red, green, _ := fg.RGB()
	assert.Equal(t, int32(255), red)
	assert.Equal(t, int32(0), green)
}

func TestCellSurfaceLargeImageUsesHalfBlocks(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	sprite := solidSprite(8, 8, color.RGBA{B: 255, A: 255})

	s.Image(sprite, vmath.V2F(0, 0), Size{Width: 32, Height: 32})
	r, _, style, _ := screen.GetContent(1, 0)
	assert.Equal(t, '▀', r)
	fg, bg, _ := style.Decompose()
	_, _, fb := fg.RGB()
	_, _, bb := bg.RGB()
	assert.Equal(t, int32(255), fb)
	assert.Equal(t, int32(255), bb)
}

func TestCellSurfaceRotationMovesCircle(t *testing.T) {
	screen, s := newTestSurface(t, 10, 5)
	s.Clear()

	// Quarter turn clockwise about (40, 40) carries (56, 40) to (40, 56)
	s.Rotation(func() {
		s.Circle(vmath.V2F(56, 40), 1, CircleStyle{Fill: Fill{Colour: "#ffffff", Opacity: 1}})
	}, 90, vmath.V2F(40, 40))

	r, _, _, _ := screen.GetContent(5, 3)
	assert.Equal(t, '·', r)
	r, _, _, _ = screen.GetContent(7, 2)
	assert.Equal(t, ' ', r)
	assert.Empty(t, s.transforms, "transform stack must unwind")
}

func TestCellSurfaceDrawTextClips(t *testing.T) {
	screen, s := newTestSurface(t, 4, 2)
	s.DrawText(2, 1, "snow", RgbHUDText)

	r, _, _, _ := screen.GetContent(2, 1)
	assert.Equal(t, 's', r)
	r, _, _, _ = screen.GetContent(3, 1)
	assert.Equal(t, 'n', r)

	// Off-screen rows are ignored
	s.DrawText(0, 5, "x", RgbHUDText)
}
