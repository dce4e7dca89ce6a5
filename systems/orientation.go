package systems

import (
	"math"

	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/fonts"
	"github.com/fairwaylab/discflight/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// previewTilt is the fixed viewing angle of the orientation panel, chosen
// so both nose and roll changes are visible.
const previewTilt = -1.15

// DrawOrientation renders the disc-orientation preview: the disc plane
// under the current nose and roll angles, seen from behind the thrower.
// Geometry is rebuilt from scratch every frame; nothing is shared or
// mutated in place.
func DrawOrientation(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	o := cfg.Orientation

	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.DarkPanel, false)

	cx := float64(o.X) + float64(o.W)/2
	cy := float64(o.Y) + float64(o.H)/2 + 8

	// Disc attitude, then the fixed preview tilt.
	att := geom.RotX(geom.Radians(sim.Params.RollAngle)).
		Mul(geom.RotY(-geom.Radians(sim.Params.NoseAngle)))
	tilt := geom.RotX(previewTilt)

	project := func(p geom.Vec3) (float64, float64) {
		v := tilt.Apply(att.Apply(p))
		return cx + v.X, cy - v.Z
	}

	// Horizon reference line.
	hx1, hy1 := float64(o.X)+8, cy
	hx2, hy2 := float64(o.X)+float64(o.W)-8, cy
	vector.StrokeLine(screen, float32(hx1), float32(hy1), float32(hx2), float32(hy2), 1, o.AxisColor, false)

	// Disc rim as a tessellated circle in the disc plane.
	var px, py float64
	for i := 0; i <= o.Segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(o.Segments)
		sx, sy := project(geom.Vec3{X: o.Radius * math.Cos(a), Y: o.Radius * math.Sin(a)})
		if i > 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(sx), float32(sy), 2, o.DiscColor, true)
		}
		px, py = sx, sy
	}

	// Leading edge marker: center to the nose of the disc.
	ex, ey := project(geom.Vec3{X: o.Radius})
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 2, o.EdgeColor, true)

	text.Draw(screen, "Disc Orientation", fonts.Small.Get(), o.X+8, o.Y+14, cfg.White)
}
