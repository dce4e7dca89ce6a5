package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HoverData holds the picking space for trajectory tooltips: one small
// resolv object per projected sample point, rebuilt whenever the
// simulation result or the plot camera changes.
type HoverData struct {
	Space *resolv.Space
	Probe *resolv.Object

	Active      bool
	SampleIndex int
	ScreenX     float64
	ScreenY     float64
}

var Hover = donburi.NewComponentType[HoverData]()
