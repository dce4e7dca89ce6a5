package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlaybackData animates a marker along the current flight path. Requested
// is set by the UI's Play button; the playback system owns the tween.
type PlaybackData struct {
	Requested bool
	Active    bool
	Tween     *gween.Tween
	Index     float64 // fractional sample index along the path
}

var Playback = donburi.NewComponentType[PlaybackData]()
