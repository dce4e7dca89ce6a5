package scenes

import (
	"sync"

	"github.com/fairwaylab/discflight/archetypes"
	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/systems"
	"github.com/fairwaylab/discflight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SimulatorScene is the interactive panel: sidebar controls plus the
// trajectory plot, orientation preview, summary table, and charts.
type SimulatorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	simUI        *ui.SimulatorUI
	once         sync.Once
	showInfo     bool
}

// NewSimulatorScene creates a new simulator scene
func NewSimulatorScene(sc SceneChanger) *SimulatorScene {
	return &SimulatorScene{sceneChanger: sc}
}

func (ss *SimulatorScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.simUI.Update()

	if ss.showInfo {
		ss.showInfo = false
		ss.sceneChanger.ChangeScene(NewInfoScene(ss.sceneChanger))
	}
}

func (ss *SimulatorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkerBg)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.simUI.UI.Draw(screen)
}

func (ss *SimulatorScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	entry := archetypes.Simulator.Spawn(ss.ecs)
	components.Simulation.Set(entry, &components.SimulationData{
		Params: cfg.Throw.DefaultParameters(),
		Dirty:  true, // first frame computes the default flight
	})
	components.View.Set(entry, &components.ViewData{
		Yaw:   cfg.Plot.Yaw,
		Pitch: cfg.Plot.Pitch,
		Zoom:  cfg.Plot.Zoom,
	})
	settings := systems.StartupSettings()
	components.Settings.Set(entry, &settings)

	ss.ecs.AddSystem(systems.UpdateSimulation)
	ss.ecs.AddSystem(systems.UpdateView)
	ss.ecs.AddSystem(systems.UpdatePlayback)
	ss.ecs.AddSystem(systems.UpdateHover)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawTrajectory)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawOrientation)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawSummary)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawCharts)

	ss.simUI = ui.NewSimulatorUI(
		components.Simulation.Get(entry),
		components.Settings.Get(entry),
		components.Playback.Get(entry),
		func() { ss.showInfo = true },
	)
}
