package systems

import (
	"github.com/fairwaylab/discflight/aero"
	"github.com/fairwaylab/discflight/components"
	"github.com/fairwaylab/discflight/flight"
	"github.com/yohamta/donburi/ecs"
)

// engine is the flight physics collaborator. Everything downstream depends
// only on the flight.Engine interface.
var engine flight.Engine = aero.NewEngine()

// UpdateSimulation reruns the full pipeline when the UI has marked the
// parameters dirty. One synchronous recomputation per interaction; engine
// failures surface in SimulationData.Err and leave the previous result on
// screen.
func UpdateSimulation(e *ecs.ECS) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	if !sim.Dirty {
		return
	}
	sim.Dirty = false

	traj, summary, err := flight.Simulate(engine, sim.Params)
	if err != nil {
		sim.Err = err.Error()
		return
	}
	aux, err := engine.PostProcess(traj, sim.Params.Omega)
	if err != nil {
		sim.Err = err.Error()
		return
	}

	sim.Err = ""
	sim.Traj = traj
	sim.Plot = traj.Remapped()
	sim.Summary = summary
	sim.Aux = aux
	sim.HasResult = true

	// A new flight invalidates the running playback.
	pb := components.Playback.Get(entry)
	pb.Active = false
	pb.Tween = nil
	pb.Index = 0
}
