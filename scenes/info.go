package scenes

import (
	"sync"

	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InfoScene displays the static informational panel
type InfoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewInfoScene creates a new info scene
func NewInfoScene(sc SceneChanger) *InfoScene {
	return &InfoScene{sceneChanger: sc}
}

func (is *InfoScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()
}

func (is *InfoScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Info.Bg)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *InfoScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	createSimulatorScene := func() interface{} {
		return NewSimulatorScene(is.sceneChanger)
	}

	is.ecs.AddSystem(systems.NewUpdateInfo(is.sceneChanger, createSimulatorScene))
	is.ecs.AddRenderer(cfg.Default, systems.DrawInfo)
}
