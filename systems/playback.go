package systems

import (
	"github.com/fairwaylab/discflight/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// playbackStretch slows the replay relative to real flight time so short
// throws stay watchable.
const playbackStretch = 1.5

// UpdatePlayback animates the flight marker along the current trajectory
// after the Play button is pressed.
func UpdatePlayback(e *ecs.ECS) {
	entry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(entry)
	sim := components.Simulation.Get(entry)

	if pb.Requested {
		pb.Requested = false
		if sim.HasResult && sim.Plot.Len() > 1 {
			dur := float32(sim.Plot.T[sim.Plot.Len()-1] * playbackStretch)
			if dur <= 0 {
				dur = 1
			}
			pb.Tween = gween.New(0, float32(sim.Plot.Len()-1), dur, ease.Linear)
			pb.Active = true
			pb.Index = 0
		}
	}

	if pb.Active && pb.Tween != nil {
		idx, done := pb.Tween.Update(1.0 / 60.0)
		pb.Index = float64(idx)
		if done {
			pb.Active = false
		}
	}
}
