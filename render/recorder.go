package render

import (
	"github.com/lixenwraith/snowfall/vmath"
)

// Op names a recorded drawing call
type Op string

const (
	OpClear    Op = "clear"
	OpCircle   Op = "circle"
	OpImage    Op = "image"
	OpRotation Op = "rotation"
)

// Call is one recorded drawing call; fields unused by the op stay zero
type Call struct {
	Op      Op
	Pos     vmath.Vec2F
	Radius  float64
	Style   CircleStyle
	Sprite  *Sprite
	Size    Size
	Degrees float64
}

// Recorder is a Surface that logs calls instead of drawing
// Used for headless frame inspection
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) Circle(pos vmath.Vec2F, radius float64, style CircleStyle) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Pos: pos, Radius: radius, Style: style})
}

func (r *Recorder) Image(sprite *Sprite, topLeft vmath.Vec2F, size Size) {
	r.Calls = append(r.Calls, Call{Op: OpImage, Pos: topLeft, Sprite: sprite, Size: size})
}

func (r *Recorder) Rotation(draw func(), degrees float64, pivot vmath.Vec2F) {
	r.Calls = append(r.Calls, Call{Op: OpRotation, Pos: pivot, Degrees: degrees})
	draw()
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
