package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"white", "#ffffff", 255, 255, 255, false},
		{"short red", "#f00", 255, 0, 0, false},
		{"lavender", "#8d90b7", 0x8d, 0x90, 0xb7, false},
		{"no hash", "ffffff", 0, 0, 0, true},
		{"garbage", "#zzz", 0, 0, 0, true},
		{"empty", "", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColour(tt.hex)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			r, g, b := c.RGB255()
			assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b})
		})
	}
}

func TestBlend(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}

	assert.Equal(t, black, Blend(white, black, 0))
	assert.Equal(t, white, Blend(white, black, 1))

	half := Blend(white, black, 0.5)
	assert.InDelta(t, 0.5, half.R, 1e-9)
	assert.InDelta(t, 0.5, half.G, 1e-9)
	assert.InDelta(t, 0.5, half.B, 1e-9)
}

func TestTcellRoundTrip(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	tc := ToTcell(c)
	r, g, b := tc.RGB()
	assert.Equal(t, int32(255), r)
	assert.Equal(t, int32(128), g)
	assert.Equal(t, int32(0), b)

	back := FromTcell(tc)
	assert.InDelta(t, 1.0, back.R, 1e-9)
	assert.Equal(t, colorful.Color{}, FromTcell(tcell.ColorDefault))
}
