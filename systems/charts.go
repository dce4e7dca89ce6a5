package systems

import (
	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawCharts renders the auxiliary aerodynamic series as a grid of
// sparklines over arc length. Hidden until toggled; pass-through of the
// engine's post-processing output, never part of the summary.
func DrawCharts(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	settings := components.Settings.Get(entry)
	if !settings.ShowCharts || !sim.HasResult {
		return
	}

	c := cfg.Charts
	panels := []struct {
		label  string
		series []float64
	}{
		{"Attack (deg)", sim.Aux.Alpha},
		{"Side slip (deg)", sim.Aux.Beta},
		{"Lift (N)", sim.Aux.Lift},
		{"Drag (N)", sim.Aux.Drag},
		{"Moment (N m)", sim.Aux.Moment},
		{"Roll rate (deg/s)", sim.Aux.RollRate},
	}

	for n, p := range panels {
		col := n % c.Columns
		row := n / c.Columns
		x := c.X + col*(c.CellW+c.Gap)
		y := c.Y + row*(c.CellH+c.Gap)
		drawSparkline(screen, x, y, c.CellW, c.CellH, p.label, p.series)
	}
}

func drawSparkline(screen *ebiten.Image, x, y, w, h int, label string, series []float64) {
	c := cfg.Charts
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c.FrameColor, false)
	text.Draw(screen, label, fonts.Small.Get(), x+4, y+11, c.TextColor)

	if len(series) < 2 {
		return
	}
	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	top, bottom := float64(y+15), float64(y+h-4)
	var px, py float64
	for i, v := range series {
		sx := float64(x+3) + float64(w-6)*float64(i)/float64(len(series)-1)
		sy := bottom - (bottom-top)*(v-lo)/span
		if i > 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(sx), float32(sy), 1, c.LineColor, true)
		}
		px, py = sx, sy
	}
}
