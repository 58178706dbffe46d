package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowfall/config"
)

// Sprite is a decoded image layer texture
type Sprite struct {
	img    image.Image
	bounds image.Rectangle

	// Alpha-weighted mean colour, used when a sprite covers less than a cell
	average colorful.Color
}

var (
	defaultSprite     *Sprite
	defaultSpriteOnce sync.Once
)

// DefaultSprite is the embedded flake
func DefaultSprite() *Sprite {
	defaultSpriteOnce.Do(func() {
		s, err := LoadSprite(config.DefaultImage)
		if err != nil {
			panic(fmt.Sprintf("embedded sprite: %v", err))
		}
		defaultSprite = s
	})
	return defaultSprite
}

// LoadSprite decodes a data URI (data:image/...;base64,...) or an image file path
func LoadSprite(ref string) (*Sprite, error) {
	data, err := spriteBytes(ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return NewSprite(img), nil
}

func spriteBytes(ref string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(ref, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, fmt.Errorf("malformed data URI")
		}
		if !strings.HasSuffix(meta, ";base64") {
			return nil, fmt.Errorf("data URI must be base64 encoded")
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode data URI: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// NewSprite wraps an already decoded image
func NewSprite(img image.Image) *Sprite {
	s := &Sprite{img: img, bounds: img.Bounds()}

	var r, g, b, weight float64
	for y := s.bounds.Min.Y; y < s.bounds.Max.Y; y++ {
		for x := s.bounds.Min.X; x < s.bounds.Max.X; x++ {
			c, a := s.pixel(x, y)
			r += c.R * a
			g += c.G * a
			b += c.B * a
			weight += a
		}
	}
	if weight > 0 {
		s.average = colorful.Color{R: r / weight, G: g / weight, B: b / weight}
	}
	return s
}

// Average returns the alpha-weighted mean colour
func (s *Sprite) Average() colorful.Color {
	return s.average
}

// Sample reads the texel at normalized coordinates u, v in [0, 1)
// Returns the straight (non-premultiplied) colour and alpha in [0, 1]
func (s *Sprite) Sample(u, v float64) (colorful.Color, float64) {
	if u < 0 || v < 0 || u >= 1 || v >= 1 {
		return colorful.Color{}, 0
	}
	x := s.bounds.Min.X + int(u*float64(s.bounds.Dx()))
	y := s.bounds.Min.Y + int(v*float64(s.bounds.Dy()))
	return s.pixel(x, y)
}

func (s *Sprite) pixel(x, y int) (colorful.Color, float64) {
	r, g, b, a := s.img.At(x, y).RGBA()
	if a == 0 {
		return colorful.Color{}, 0
	}
	// RGBA is premultiplied 16-bit
	af := float64(a)
	return colorful.Color{R: float64(r) / af, G: float64(g) / af, B: float64(b) / af}, af / 0xffff
}
