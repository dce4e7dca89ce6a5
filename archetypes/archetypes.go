package archetypes

import (
	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Simulator is the single entity backing the interactive panel: the
	// current parameters and result, plot camera, playback marker, hover
	// picking space, and display settings.
	Simulator = newArchetype(
		components.Simulation,
		components.View,
		components.Playback,
		components.Hover,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
