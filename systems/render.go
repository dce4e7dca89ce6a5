package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/fonts"
	"github.com/fairwaylab/discflight/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawTrajectory renders the ground grid, the flight path with its ground
// shadow, extrema markers, the playback marker, and the hover tooltip.
func DrawTrajectory(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	view := components.View.Get(entry)
	cam := PlotCamera(view, sim)

	// Clip everything to the plot viewport.
	clip := screen.SubImage(image.Rect(cfg.Plot.X, cfg.Plot.Y, cfg.Plot.X+cfg.Plot.W, cfg.Plot.Y+cfg.Plot.H)).(*ebiten.Image)

	drawGrid(clip, cam)

	if sim.Err != "" {
		text.Draw(screen, "simulation failed: "+sim.Err, fonts.Regular.Get(),
			cfg.Plot.X+10, cfg.Plot.Y+20, cfg.Red)
	}
	if !sim.HasResult {
		return
	}

	plot := sim.Plot

	// Ground shadow first, then the path over it.
	strokePath(clip, cam, plot.X, plot.Y, nil, cfg.Plot.ShadowColor, 1)
	strokePath(clip, cam, plot.X, plot.Y, plot.Z, cfg.Plot.PathColor, 2)

	drawExtremaMarkers(clip, cam, sim)
	drawPlayback(clip, cam, entry, sim)
	drawTooltip(screen, entry, sim)
}

// strokePath projects and strokes a polyline. A nil z series draws the
// path flattened onto the ground plane.
func strokePath(dst *ebiten.Image, cam *geom.Camera, xs, ys, zs []float64, clr color.Color, width float32) {
	var px, py float64
	for i := range xs {
		z := 0.0
		if zs != nil {
			z = zs[i]
		}
		sx, sy, _ := cam.Project(geom.Vec3{X: xs[i], Y: ys[i], Z: z})
		if i > 0 {
			vector.StrokeLine(dst, float32(px), float32(py), float32(sx), float32(sy), width, clr, true)
		}
		px, py = sx, sy
	}
}

func drawGrid(dst *ebiten.Image, cam *geom.Camera) {
	ext := cfg.Plot.GridExtent
	for g := -ext; g <= ext; g += cfg.Plot.GridStep {
		// Lines along the throw direction span the full forward range;
		// cross lines only cover downrange ground.
		x1, y1, _ := cam.Project(geom.Vec3{X: g, Y: 0})
		x2, y2, _ := cam.Project(geom.Vec3{X: g, Y: ext})
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, cfg.Plot.GridColor, false)

		if g < 0 {
			continue
		}
		x1, y1, _ = cam.Project(geom.Vec3{X: -ext, Y: g})
		x2, y2, _ = cam.Project(geom.Vec3{X: ext, Y: g})
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, cfg.Plot.GridColor, false)
	}
}

// drawExtremaMarkers marks max height and both lateral extremes, the same
// points the summary table reports.
func drawExtremaMarkers(dst *ebiten.Image, cam *geom.Camera, sim *components.SimulationData) {
	plot := sim.Plot
	hiZ, loX, hiX := 0, 0, 0
	for i := 1; i < plot.Len(); i++ {
		if plot.Z[i] > plot.Z[hiZ] {
			hiZ = i
		}
		if plot.X[i] < plot.X[loX] {
			loX = i
		}
		if plot.X[i] > plot.X[hiX] {
			hiX = i
		}
	}
	for _, i := range []int{hiZ, loX, hiX} {
		sx, sy, _ := cam.Project(geom.Vec3{X: plot.X[i], Y: plot.Y[i], Z: plot.Z[i]})
		vector.StrokeCircle(dst, float32(sx), float32(sy), 4, 1.5, cfg.Plot.MarkerColor, true)
	}
}

func drawPlayback(dst *ebiten.Image, cam *geom.Camera, entry *donburi.Entry, sim *components.SimulationData) {
	pb := components.Playback.Get(entry)
	if !pb.Active {
		return
	}
	plot := sim.Plot

	// Interpolate between the two samples around the fractional index.
	i := int(pb.Index)
	if i >= plot.Len()-1 {
		i = plot.Len() - 2
	}
	f := pb.Index - float64(i)
	p := geom.Vec3{
		X: plot.X[i] + (plot.X[i+1]-plot.X[i])*f,
		Y: plot.Y[i] + (plot.Y[i+1]-plot.Y[i])*f,
		Z: plot.Z[i] + (plot.Z[i+1]-plot.Z[i])*f,
	}
	sx, sy, _ := cam.Project(p)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(cfg.Plot.PlaybackSize), cfg.SkyBlue, true)
}

func drawTooltip(screen *ebiten.Image, entry *donburi.Entry, sim *components.SimulationData) {
	hv := components.Hover.Get(entry)
	if !hv.Active || hv.SampleIndex >= sim.Plot.Len() {
		return
	}
	i := hv.SampleIndex
	lines := []string{
		fmt.Sprintf("t = %.2f s", sim.Plot.T[i]),
		fmt.Sprintf("x = %.1f m", sim.Plot.X[i]),
		fmt.Sprintf("y = %.1f m", sim.Plot.Y[i]),
		fmt.Sprintf("z = %.1f m", sim.Plot.Z[i]),
	}

	const w, lineH, pad = 90, 13, 5
	h := float32(len(lines)*lineH + 2*pad)
	bx := float32(hv.ScreenX) + 12
	by := float32(hv.ScreenY) - h - 4
	if by < 0 {
		by = float32(hv.ScreenY) + 12
	}
	vector.DrawFilledRect(screen, bx, by, w, h, cfg.Plot.TooltipBg, false)
	for n, line := range lines {
		text.Draw(screen, line, fonts.Small.Get(), int(bx)+pad, int(by)+pad+(n+1)*lineH-3, cfg.White)
	}
}
