package systems

import (
	"fmt"

	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawSummary renders the four-row flight summary table.
func DrawSummary(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	if !sim.HasResult {
		return
	}

	s := cfg.Summary
	values := [4]float64{
		sim.Summary.DriftLeft,
		sim.Summary.DriftRight,
		sim.Summary.MaxHeight,
		sim.Summary.Distance,
	}

	face := fonts.Regular.Get()
	for i := 0; i < 4; i++ {
		y := s.Y + (i+1)*s.RowHeight
		text.Draw(screen, s.Labels[i], face, s.X, y, s.TextColor)
		text.Draw(screen, fmt.Sprintf("%.2f m", values[i]), face, s.X+s.ColGap, y, s.ValColor)
	}
}
