package main

import (
	"fmt"

	"github.com/lixenwraith/snowfall/engine"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/status"
)

// hud overlays gauges and per-layer state in the top-left corner
type hud struct {
	text     *render.CellSurface
	registry *status.Registry
	sim      *engine.Simulation
	visible  bool
}

func (h *hud) Toggle() {
	h.visible = !h.visible
}

// Draw runs as the simulation overlay, after every layer has rendered
func (h *hud) Draw(render.Surface) {
	if !h.visible {
		return
	}
	row := 0
	for _, line := range h.registry.Lines() {
		h.text.DrawText(1, row, fmt.Sprintf("%-16s %8s", line.Name, line.Value), render.RgbHUDText)
		row++
	}
	for i, st := range h.sim.Snapshot().Layers {
		colour := render.RgbHUDText
		label := fmt.Sprintf("layer %d %-6s gust %-11s", i, st.Mode, st.Gust)
		if st.Paused {
			colour = render.RgbHUDWarn
			label += " paused"
		}
		h.text.DrawText(1, row, label, colour)
		row++
	}
}
