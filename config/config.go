package config

import (
	"image/color"
	"math"

	"github.com/fairwaylab/discflight/flight"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every drawing system registers on.
const Default = ecs.LayerDefault

// SliderSpec describes one throw-parameter slider: its closed valid range,
// default value, and step. Ranges are enforced by the slider widget itself;
// nothing downstream re-validates.
type SliderSpec struct {
	Label   string
	Help    string
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// SliderMin returns the widget-side (integer) lower bound.
func (s SliderSpec) SliderMin() int { return int(math.Round(s.Min / s.Step)) }

// SliderMax returns the widget-side (integer) upper bound.
func (s SliderSpec) SliderMax() int { return int(math.Round(s.Max / s.Step)) }

// ToSlider converts a parameter value to the widget's integer scale.
func (s SliderSpec) ToSlider(v float64) int { return int(math.Round(v / s.Step)) }

// FromSlider converts a widget value back to the parameter scale.
func (s SliderSpec) FromSlider(v int) float64 { return float64(v) * s.Step }

// ThrowConfig is the explicit configuration record for the six throw
// parameters, constructed once at startup.
type ThrowConfig struct {
	Speed         SliderSpec
	Omega         SliderSpec
	ReleaseHeight SliderSpec
	Pitch         SliderSpec
	Nose          SliderSpec
	Roll          SliderSpec

	DefaultDisc flight.DiscType
}

// DefaultParameters assembles a ThrowParameters record from the configured
// defaults.
func (t ThrowConfig) DefaultParameters() flight.ThrowParameters {
	return flight.ThrowParameters{
		Speed:         t.Speed.Default,
		Omega:         t.Omega.Default,
		ReleaseHeight: t.ReleaseHeight.Default,
		Pitch:         t.Pitch.Default,
		NoseAngle:     t.Nose.Default,
		RollAngle:     t.Roll.Default,
		Disc:          t.DefaultDisc,
	}
}

// UIConfig contains sidebar layout and widget styling values.
type UIConfig struct {
	SidebarWidth  int
	SidebarBg     color.RGBA
	PanelBg       color.RGBA
	SliderWidth   int
	SliderHeight  int
	TitleFontSize float64
	FontSize      float64
	SmallFontSize float64
}

// PlotConfig contains the trajectory plot viewport and styling.
type PlotConfig struct {
	// Viewport in screen pixels.
	X, Y, W, H int

	// Initial orbit camera.
	Yaw      float64 // radians
	Pitch    float64 // radians
	Zoom     float64 // pixels per meter
	MinZoom  float64
	MaxZoom  float64
	DragRate float64 // radians per pixel of mouse drag

	GridExtent float64 // meters each side of the origin
	GridStep   float64 // meters between grid lines

	PathColor    color.RGBA
	ShadowColor  color.RGBA // path projected onto the ground
	GridColor    color.RGBA
	MarkerColor  color.RGBA // extrema markers
	PlaybackSize float64    // playback marker radius, px
	TooltipBg    color.RGBA
}

// OrientationConfig contains the disc-orientation preview panel.
type OrientationConfig struct {
	X, Y, W, H int
	Radius     float64 // drawn disc radius, px
	Segments   int     // ellipse tessellation
	DiscColor  color.RGBA
	EdgeColor  color.RGBA
	AxisColor  color.RGBA
}

// SummaryConfig contains the flight-summary table placement.
type SummaryConfig struct {
	X, Y      int
	RowHeight int
	ColGap    int
	Labels    [4]string
	TextColor color.RGBA
	ValColor  color.RGBA
}

// ChartsConfig contains the auxiliary-series chart panel.
type ChartsConfig struct {
	X, Y    int
	CellW   int
	CellH   int
	Gap     int
	Columns int

	LineColor  color.RGBA
	FrameColor color.RGBA
	TextColor  color.RGBA
}

// InfoConfig contains the static informational panel content.
type InfoConfig struct {
	Title     string
	Lines     []string
	TitleY    float64
	TextStart float64
	LineGap   float64
	Bg        color.RGBA
	TextColor color.RGBA
}

// Config holds general application configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Throw ThrowConfig
var UI UIConfig
var Plot PlotConfig
var Orientation OrientationConfig
var Summary SummaryConfig
var Charts ChartsConfig
var Info InfoConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Red        = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green      = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	SkyBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray       = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	DarkPanel  = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	DarkerBg   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	FaintGrid  = color.RGBA{R: 60, G: 70, B: 60, A: 255}
	PathOrange = color.RGBA{R: 255, G: 160, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Disc Flight Visualizer",
	}

	Throw = ThrowConfig{
		Speed: SliderSpec{
			Label: "Throwing Velocity (m/s)",
			Help:  "20 m/s is a beginner's throw; ~40 m/s is the record",
			Min:   0, Max: 40, Default: 24.2, Step: 0.1,
		},
		Omega: SliderSpec{
			Label: "Omega (rev/s)",
			Help:  "Spin rate about the disc's central axis",
			Min:   0, Max: 200, Default: 116.8, Step: 0.1,
		},
		ReleaseHeight: SliderSpec{
			Label: "Release Height (m)",
			Help:  "Arm height at release",
			Min:   0, Max: 2, Default: 1.3, Step: 0.1,
		},
		Pitch: SliderSpec{
			Label: "Pitch Angle (deg)",
			Help:  "0 = flat throw, 90 = straight up",
			Min:   0, Max: 90, Default: 15.5, Step: 0.1,
		},
		Nose: SliderSpec{
			Label: "Nose Angle (deg)",
			Help:  "0 = leading edge at the horizon, 90 = pointing at the sky",
			Min:   -45, Max: 90, Default: 0.0, Step: 0.1,
		},
		Roll: SliderSpec{
			Label: "Roll Angle (deg)",
			Help:  "-90 = full anhyzer, 0 = flat, 90 = full hyzer",
			Min:   -90, Max: 90, Default: 14.7, Step: 0.1,
		},
		DefaultDisc: flight.DiscWraith,
	}

	UI = UIConfig{
		SidebarWidth:  250,
		SidebarBg:     DarkPanel,
		PanelBg:       color.RGBA{R: 40, G: 40, B: 50, A: 255},
		SliderWidth:   180,
		SliderHeight:  14,
		TitleFontSize: 18,
		FontSize:      12,
		SmallFontSize: 10,
	}

	Plot = PlotConfig{
		X: 250, Y: 0, W: 710, H: 400,
		Yaw:      -0.6,
		Pitch:    -1.1,
		Zoom:     4.0,
		MinZoom:  1.5,
		MaxZoom:  12.0,
		DragRate: 0.008,

		GridExtent: 100,
		GridStep:   10,

		PathColor:    PathOrange,
		ShadowColor:  color.RGBA{R: 80, G: 80, B: 90, A: 255},
		GridColor:    FaintGrid,
		MarkerColor:  Red,
		PlaybackSize: 4,
		TooltipBg:    color.RGBA{R: 0, G: 0, B: 0, A: 200},
	}

	Orientation = OrientationConfig{
		X: 820, Y: 10, W: 130, H: 110,
		Radius:    42,
		Segments:  48,
		DiscColor: color.RGBA{R: 60, G: 120, B: 200, A: 255},
		EdgeColor: SkyBlue,
		AxisColor: Gray,
	}

	Summary = SummaryConfig{
		X: 270, Y: 420,
		RowHeight: 18,
		ColGap:    110,
		Labels:    [4]string{"Drift Left", "Drift Right", "Max Height", "Distance"},
		TextColor: White,
		ValColor:  Yellow,
	}

	Charts = ChartsConfig{
		X: 470, Y: 410,
		CellW:   150,
		CellH:   55,
		Gap:     10,
		Columns: 3,

		LineColor:  SkyBlue,
		FrameColor: Gray,
		TextColor:  White,
	}

	Info = InfoConfig{
		Title: "About",
		Lines: []string{
			"This visualizer renders disc-golf flight paths from throw",
			"parameters: launch speed, spin, release height, pitch, nose",
			"and roll angles, per disc model.",
			"",
			"Inspired by the shotshaper project and the flight physics",
			"article behind it. Coefficients here are simplified per model",
			"class and tuned for plausible shapes, not measurements.",
			"",
			"Glossary:",
			"  Nose angle - leading edge up/down relative to the horizon.",
			"  Roll angle - hyzer/anhyzer tilt of the disc plane.",
			"  Pitch angle - release angle from the horizon.",
			"  Omega - spin rate in revolutions per second.",
			"  Drift - lateral displacement from the throw line.",
		},
		TitleY:    60,
		TextStart: 110,
		LineGap:   18,
		Bg:        color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TextColor: White,
	}
}
