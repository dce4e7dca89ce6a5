package systems

import (
	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

const (
	hoverTag    = "sample"
	hoverStride = 4 // pick every nth trajectory sample
	hoverSize   = 8 // pick target size in pixels
)

// UpdateHover rebuilds the picking space from the projected trajectory and
// tests the cursor against it. The hovered sample index feeds the tooltip
// drawn by the render system.
func UpdateHover(e *ecs.ECS) {
	entry, ok := components.Hover.First(e.World)
	if !ok {
		return
	}
	hv := components.Hover.Get(entry)
	sim := components.Simulation.Get(entry)
	view := components.View.Get(entry)

	hv.Active = false
	if !sim.HasResult {
		return
	}

	mx, my := ebiten.CursorPosition()
	if mx < cfg.Plot.X || mx >= cfg.Plot.X+cfg.Plot.W ||
		my < cfg.Plot.Y || my >= cfg.Plot.Y+cfg.Plot.H {
		return
	}

	// The camera moves with every drag, so the space is rebuilt per frame
	// from fresh projections. Sample counts are small enough for this.
	cam := PlotCamera(view, sim)
	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	for i := 0; i < sim.Plot.Len(); i += hoverStride {
		sx, sy, _ := cam.Project(geom.Vec3{X: sim.Plot.X[i], Y: sim.Plot.Y[i], Z: sim.Plot.Z[i]})
		if sx < 0 || sx >= float64(cfg.C.Width) || sy < 0 || sy >= float64(cfg.C.Height) {
			continue
		}
		obj := resolv.NewObject(sx-hoverSize/2, sy-hoverSize/2, hoverSize, hoverSize, hoverTag)
		obj.Data = i
		space.Add(obj)
	}

	probe := resolv.NewObject(float64(mx)-1, float64(my)-1, 2, 2)
	space.Add(probe)
	hv.Space = space
	hv.Probe = probe

	if col := probe.Check(0, 0, hoverTag); col != nil && len(col.Objects) > 0 {
		hv.Active = true
		hv.SampleIndex = col.Objects[0].Data.(int)
		hv.ScreenX = float64(mx)
		hv.ScreenY = float64(my)
	}
}
