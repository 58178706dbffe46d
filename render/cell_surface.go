package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/vmath"
)

// Screen is the subset of tcell.Screen the cell surface writes to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Flake glyphs by radius in pixels, smallest first
var circleGlyphs = []struct {
	maxRadius float64
	glyph     rune
}{
	{1.5, '·'},
	{2.5, '•'},
	{3.5, '*'},
	{math.Inf(1), '❄'},
}

type transform struct {
	degrees float64
	pivot   vmath.Vec2F
}

// CellSurface maps pixel drawing onto terminal cells
// Each cell covers CellWidth x CellHeight pixels; overlapping flakes paint in call order
type CellSurface struct {
	screen     Screen
	cellWidth  float64
	cellHeight float64
	background colorful.Color
	bgStyle    tcell.Style

	transforms []transform
}

// NewCellSurface wraps a screen; non-positive cell sizes fall back to defaults
func NewCellSurface(screen Screen, cellWidth, cellHeight float64, background colorful.Color) *CellSurface {
	if cellWidth <= 0 {
		cellWidth = parameter.DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = parameter.DefaultCellHeight
	}
	bg := ToTcell(background)
	return &CellSurface{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		background: background,
		bgStyle:    tcell.StyleDefault.Background(bg).Foreground(bg),
	}
}

// PixelSize is the viewport in pixels for the current screen size
func (c *CellSurface) PixelSize() (float64, float64) {
	w, h := c.screen.Size()
	return float64(w) * c.cellWidth, float64(h) * c.cellHeight
}

func (c *CellSurface) Clear() {
	w, h := c.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.screen.SetContent(x, y, ' ', nil, c.bgStyle)
		}
	}
}

func (c *CellSurface) Circle(pos vmath.Vec2F, radius float64, style CircleStyle) {
	if style.Fill.Opacity <= 0 || radius <= 0 {
		return
	}
	fill, err := ParseColour(style.Fill.Colour)
	if err != nil {
		return
	}
	fg := ToTcell(Blend(fill, c.background, style.Fill.Opacity))
	pos = c.apply(pos)

	// Large circles become a filled disc of cells, small ones a single glyph
	if radius*2 >= c.cellWidth {
		c.disc(pos, radius, fg)
		return
	}

	glyph := circleGlyphs[len(circleGlyphs)-1].glyph
	for _, g := range circleGlyphs {
		if radius < g.maxRadius {
			glyph = g.glyph
			break
		}
	}
	c.plot(pos, glyph, tcell.StyleDefault.Foreground(fg).Background(ToTcell(c.background)))
}

func (c *CellSurface) disc(pos vmath.Vec2F, radius float64, fg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(ToTcell(c.background))
	x0, y0, x1, y1 := c.cellRect(vmath.V2F(pos.X-radius, pos.Y-radius), vmath.V2F(pos.X+radius, pos.Y+radius))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			centre := c.cellCentre(cx, cy)
			if vmath.V2FMag(vmath.V2FSub(centre, pos)) <= radius {
				c.screen.SetContent(cx, cy, '█', nil, style)
			}
		}
	}
}

func (c *CellSurface) Image(sprite *Sprite, topLeft vmath.Vec2F, size Size) {
	if sprite == nil || size.Width <= 0 || size.Height <= 0 {
		return
	}

	centre := vmath.V2F(topLeft.X+size.Width/2, topLeft.Y+size.Height/2)

	// Below one cell a sprite reads as a tinted glyph
	if size.Width < c.cellWidth*2 {
		fg := ToTcell(sprite.Average())
		c.plot(c.apply(centre), '❄', tcell.StyleDefault.Foreground(fg).Background(ToTcell(c.background)))
		return
	}

	// Bounding box of the transformed sprite, so rotated corners are covered
	diag := math.Hypot(size.Width, size.Height) / 2
	mid := c.apply(centre)
	x0, y0, x1, y1 := c.cellRect(vmath.V2F(mid.X-diag, mid.Y-diag), vmath.V2F(mid.X+diag, mid.Y+diag))

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			// Upper and lower half of the cell sampled separately through a half block
			topPt := vmath.V2F((float64(cx)+0.5)*c.cellWidth, (float64(cy)+0.25)*c.cellHeight)
			botPt := vmath.V2F((float64(cx)+0.5)*c.cellWidth, (float64(cy)+0.75)*c.cellHeight)
			top, topA := c.sampleAt(sprite, topLeft, size, topPt)
			bot, botA := c.sampleAt(sprite, topLeft, size, botPt)
			if topA < parameter.SpriteAlphaThreshold && botA < parameter.SpriteAlphaThreshold {
				continue
			}
			fg := ToTcell(Blend(top, c.background, topA))
			bg := ToTcell(Blend(bot, c.background, botA))
			c.screen.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// sampleAt maps a screen pixel back through the active transforms into sprite space
func (c *CellSurface) sampleAt(sprite *Sprite, topLeft vmath.Vec2F, size Size, p vmath.Vec2F) (colorful.Color, float64) {
	q := c.invert(p)
	return sprite.Sample((q.X-topLeft.X)/size.Width, (q.Y-topLeft.Y)/size.Height)
}

func (c *CellSurface) Rotation(draw func(), degrees float64, pivot vmath.Vec2F) {
	c.transforms = append(c.transforms, transform{degrees: degrees, pivot: pivot})
	defer func() { c.transforms = c.transforms[:len(c.transforms)-1] }()
	draw()
}

// DrawText writes a string at a cell position, clipped to the screen
func (c *CellSurface) DrawText(x, y int, text string, fg tcell.Color) {
	w, h := c.screen.Size()
	if y < 0 || y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(ToTcell(c.background))
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			c.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (c *CellSurface) plot(p vmath.Vec2F, glyph rune, style tcell.Style) {
	cx := int(math.Floor(p.X / c.cellWidth))
	cy := int(math.Floor(p.Y / c.cellHeight))
	w, h := c.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	c.screen.SetContent(cx, cy, glyph, nil, style)
}

// cellRect converts a pixel box to an inclusive cell range clipped to the screen
func (c *CellSurface) cellRect(lo, hi vmath.Vec2F) (x0, y0, x1, y1 int) {
	w, h := c.screen.Size()
	x0 = max(0, int(math.Floor(lo.X/c.cellWidth)))
	y0 = max(0, int(math.Floor(lo.Y/c.cellHeight)))
	x1 = min(int(math.Floor(hi.X/c.cellWidth)), w-1)
	y1 = min(int(math.Floor(hi.Y/c.cellHeight)), h-1)
	return
}

func (c *CellSurface) cellCentre(cx, cy int) vmath.Vec2F {
	return vmath.V2F((float64(cx)+0.5)*c.cellWidth, (float64(cy)+0.5)*c.cellHeight)
}

// apply runs p through the transform stack, innermost last
func (c *CellSurface) apply(p vmath.Vec2F) vmath.Vec2F {
	for i := len(c.transforms) - 1; i >= 0; i-- {
		t := c.transforms[i]
		p = rotateAbout(p, t.pivot, t.degrees)
	}
	return p
}

// invert undoes apply
func (c *CellSurface) invert(p vmath.Vec2F) vmath.Vec2F {
	for _, t := range c.transforms {
		p = rotateAbout(p, t.pivot, -t.degrees)
	}
	return p
}

func rotateAbout(p, pivot vmath.Vec2F, degrees float64) vmath.Vec2F {
	if degrees == 0 {
		return p
	}
	rad := vmath.DegToRad(degrees)
	sin, cos := math.Sincos(rad)
	d := vmath.V2FSub(p, pivot)
	return vmath.V2F(pivot.X+d.X*cos-d.Y*sin, pivot.Y+d.X*sin+d.Y*cos)
}
