package components

import (
	"github.com/yohamta/donburi"
)

// ViewData is the orbit camera state for the trajectory plot.
type ViewData struct {
	Yaw   float64
	Pitch float64
	Zoom  float64

	Dragging   bool
	LastMouseX int
	LastMouseY int
}

var View = donburi.NewComponentType[ViewData]()
