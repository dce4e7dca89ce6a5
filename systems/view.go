package systems

import (
	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateView orbits the plot camera with mouse drag and zooms with the
// wheel, only while the cursor is over the plot viewport.
func UpdateView(e *ecs.ECS) {
	entry, ok := components.View.First(e.World)
	if !ok {
		return
	}
	view := components.View.Get(entry)

	mx, my := ebiten.CursorPosition()
	inPlot := mx >= cfg.Plot.X && mx < cfg.Plot.X+cfg.Plot.W &&
		my >= cfg.Plot.Y && my < cfg.Plot.Y+cfg.Plot.H

	if _, wy := ebiten.Wheel(); wy != 0 && inPlot {
		view.Zoom *= 1 + wy*0.1
		if view.Zoom < cfg.Plot.MinZoom {
			view.Zoom = cfg.Plot.MinZoom
		}
		if view.Zoom > cfg.Plot.MaxZoom {
			view.Zoom = cfg.Plot.MaxZoom
		}
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !view.Dragging && inPlot:
		view.Dragging = true
	case !pressed:
		view.Dragging = false
	case view.Dragging:
		view.Yaw += float64(mx-view.LastMouseX) * cfg.Plot.DragRate
		view.Pitch += float64(my-view.LastMouseY) * cfg.Plot.DragRate
		// Keep the camera between top-down and ground level.
		if view.Pitch > 0 {
			view.Pitch = 0
		}
		if view.Pitch < -1.55 {
			view.Pitch = -1.55
		}
	}
	view.LastMouseX = mx
	view.LastMouseY = my
}

// PlotCamera builds the projection for the current view state, aimed at
// the midpoint of the flight (or a fixed point before the first result).
func PlotCamera(view *components.ViewData, sim *components.SimulationData) *geom.Camera {
	target := geom.Vec3{Y: 30}
	if sim.HasResult {
		target = geom.Vec3{Y: sim.Summary.Distance / 2, Z: sim.Summary.MaxHeight / 2}
	}
	return &geom.Camera{
		Yaw:     view.Yaw,
		Pitch:   view.Pitch,
		Zoom:    view.Zoom,
		Target:  target,
		CenterX: float64(cfg.Plot.X) + float64(cfg.Plot.W)/2,
		CenterY: float64(cfg.Plot.Y) + float64(cfg.Plot.H)/2,
	}
}
