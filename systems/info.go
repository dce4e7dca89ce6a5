package systems

import (
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateInfo returns the info-panel input system: Escape or Enter
// returns to the simulator.
func NewUpdateInfo(sceneChanger SceneChanger, createSimulatorScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			sceneChanger.ChangeScene(createSimulatorScene())
		}
	}
}

// DrawInfo renders the static informational panel.
func DrawInfo(e *ecs.ECS, screen *ebiten.Image) {
	info := cfg.Info

	text.Draw(screen, info.Title, fonts.Title.Get(), 60, int(info.TitleY), cfg.Yellow)

	face := fonts.Regular.Get()
	y := info.TextStart
	for _, line := range info.Lines {
		text.Draw(screen, line, face, 60, int(y), info.TextColor)
		y += info.LineGap
	}

	hint := "Press ESC to return to the simulator"
	text.Draw(screen, hint, fonts.Small.Get(), 60, cfg.C.Height-24, cfg.Gray)
}
