package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry collects the gauges shown by the HUD
// Writers cache gauge pointers; the frame loop and HUD share them lock-free
type Registry struct {
	Ints   *Gauges[atomic.Int64]
	Floats *Gauges[Float]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewGauges[atomic.Int64](),
		Floats: NewGauges[Float](),
	}
}

// Line is one formatted gauge
type Line struct {
	Name  string
	Value string
}

// Lines renders every gauge, integers first, each group in name order
func (r *Registry) Lines() []Line {
	lines := make([]Line, 0, r.Ints.Len()+r.Floats.Len())
	r.Ints.Each(func(name string, g *atomic.Int64) {
		lines = append(lines, Line{Name: name, Value: strconv.FormatInt(g.Load(), 10)})
	})
	r.Floats.Each(func(name string, g *Float) {
		lines = append(lines, Line{Name: name, Value: fmt.Sprintf("%.2f", g.Get())})
	})
	return lines
}
