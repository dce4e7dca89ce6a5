package components

import (
	"github.com/fairwaylab/discflight/flight"
	"github.com/yohamta/donburi"
)

// SimulationData holds the current throw parameters and the latest
// simulation result. The UI writes Params and sets Dirty; the simulation
// system consumes Dirty and fills the rest. On engine failure Err is set
// and the previous result stays on screen.
type SimulationData struct {
	Params flight.ThrowParameters
	Dirty  bool

	HasResult bool
	Traj      flight.Trajectory // engine frame
	Plot      flight.Trajectory // throw-facing remap, what gets drawn
	Summary   flight.Summary
	Aux       flight.AeroSeries
	Err       string
}

var Simulation = donburi.NewComponentType[SimulationData]()
