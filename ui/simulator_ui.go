package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/fairwaylab/discflight/flight"
	"github.com/fairwaylab/discflight/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// paramSlider binds one SliderSpec-configured widget to a field of the
// throw parameters.
type paramSlider struct {
	spec   cfg.SliderSpec
	slider *widget.Slider
	value  *widget.Label
	get    func(*flight.ThrowParameters) float64
	set    func(*flight.ThrowParameters, float64)
}

// SimulatorUI holds the ebitenui sidebar for the simulator scene: the disc
// selector, the six parameter sliders, and the action buttons. Slider
// handlers only write parameters and mark the simulation dirty; the
// simulation system does the rest.
type SimulatorUI struct {
	UI  *ebitenui.UI
	Sim *components.SimulationData
	Set *components.SettingsData
	Pb  *components.PlaybackData

	// Callbacks
	OnShowInfo func()

	// Widget references for updates
	sliders      []*paramSlider
	discButton   *widget.Button
	chartsButton *widget.Button
	scaleButton  *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSimulatorUI creates the sidebar for the given simulator entity state.
func NewSimulatorUI(sim *components.SimulationData, set *components.SettingsData, pb *components.PlaybackData, onShowInfo func()) *SimulatorUI {
	sui := &SimulatorUI{
		Sim:        sim,
		Set:        set,
		Pb:         pb,
		OnShowInfo: onShowInfo,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SimulatorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleFontSize,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.SmallFontSize,
	}
}

func (sui *SimulatorUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}
	sidebar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.SidebarBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(cfg.UI.SidebarWidth, cfg.C.Height),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DISC FLIGHT", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	sidebar.AddChild(titleLabel)

	sidebar.AddChild(sui.buildDiscRow())

	sidebar.AddChild(sui.sectionLabel("Disc Orientation"))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.Nose,
		func(p *flight.ThrowParameters) float64 { return p.NoseAngle },
		func(p *flight.ThrowParameters, v float64) { p.NoseAngle = v },
	))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.Roll,
		func(p *flight.ThrowParameters) float64 { return p.RollAngle },
		func(p *flight.ThrowParameters, v float64) { p.RollAngle = v },
	))

	sidebar.AddChild(sui.sectionLabel("Throwing Properties"))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.Speed,
		func(p *flight.ThrowParameters) float64 { return p.Speed },
		func(p *flight.ThrowParameters, v float64) { p.Speed = v },
	))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.Omega,
		func(p *flight.ThrowParameters) float64 { return p.Omega },
		func(p *flight.ThrowParameters, v float64) { p.Omega = v },
	))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.ReleaseHeight,
		func(p *flight.ThrowParameters) float64 { return p.ReleaseHeight },
		func(p *flight.ThrowParameters, v float64) { p.ReleaseHeight = v },
	))
	sidebar.AddChild(sui.buildSliderRow(cfg.Throw.Pitch,
		func(p *flight.ThrowParameters) float64 { return p.Pitch },
		func(p *flight.ThrowParameters, v float64) { p.Pitch = v },
	))

	sidebar.AddChild(sui.buildButtonsContainer())

	rootContainer.AddChild(sidebar)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SimulatorUI) sectionLabel(title string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
}

func (sui *SimulatorUI) buildDiscRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	discLabel := widget.NewLabel(
		widget.LabelOpts.Text("Disc:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(discLabel)

	sui.discButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 20),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(sui.Sim.Params.Disc.DisplayName(), &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Sim.Params.Disc = sui.Sim.Params.Disc.Next()
			sui.Sim.Dirty = true
			sui.UpdateUI()
		}),
	)
	row.AddChild(sui.discButton)

	return row
}

func (sui *SimulatorUI) buildSliderRow(spec cfg.SliderSpec,
	get func(*flight.ThrowParameters) float64,
	set func(*flight.ThrowParameters, float64),
) *widget.Container {
	ps := &paramSlider{spec: spec, get: get, set: set}
	sui.sliders = append(sui.sliders, ps)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(1),
		)),
	)

	ps.value = widget.NewLabel(
		widget.LabelOpts.Text(sliderText(spec, get(&sui.Sim.Params)), &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(ps.value)

	ps.slider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(spec.SliderMin(), spec.SliderMax()),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.SliderWidth, cfg.UI.SliderHeight),
		),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover: image.NewNineSliceColor(color.RGBA{70, 70, 90, 255}),
			},
			&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{160, 160, 180, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{200, 200, 220, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{220, 220, 240, 255}),
			},
		),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 10 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			v := spec.FromSlider(args.Current)
			set(&sui.Sim.Params, v)
			sui.Sim.Dirty = true
			ps.value.Label = sliderText(spec, v)
		}),
	)
	ps.slider.Current = spec.ToSlider(get(&sui.Sim.Params))
	row.AddChild(ps.slider)

	if spec.Help != "" {
		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(spec.Help, &sui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{140, 140, 150, 255},
			}),
		))
	}

	return row
}

func (sui *SimulatorUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	topRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	topRow.AddChild(sui.actionButton("Play", func() {
		sui.Pb.Requested = true
	}))
	topRow.AddChild(sui.actionButton("Reset", func() {
		sui.Sim.Params = cfg.Throw.DefaultParameters()
		sui.Sim.Dirty = true
		sui.UpdateUI()
	}))
	container.AddChild(topRow)

	sui.chartsButton = sui.actionButton(chartsText(sui.Set.ShowCharts), func() {
		sui.Set.ShowCharts = !sui.Set.ShowCharts
		systems.SaveCurrentSettings(sui.Set)
		sui.UpdateUI()
	})
	container.AddChild(sui.chartsButton)

	sui.scaleButton = sui.actionButton("Window: "+systems.ScaleLabel(sui.Set.ScaleIndex), func() {
		systems.CycleWindowScale(sui.Set)
		sui.UpdateUI()
	})
	container.AddChild(sui.scaleButton)

	container.AddChild(sui.actionButton("About", func() {
		if sui.OnShowInfo != nil {
			sui.OnShowInfo()
		}
	}))

	return container
}

func (sui *SimulatorUI) actionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SimulatorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes widget state from the bound components after a change
// that did not come from the widget itself (reset, disc cycle).
func (sui *SimulatorUI) UpdateUI() {
	for _, ps := range sui.sliders {
		v := ps.get(&sui.Sim.Params)
		ps.slider.Current = ps.spec.ToSlider(v)
		ps.value.Label = sliderText(ps.spec, v)
	}

	if sui.discButton != nil {
		if textWidget := sui.discButton.Text(); textWidget != nil {
			textWidget.Label = sui.Sim.Params.Disc.DisplayName()
		}
	}
	if sui.chartsButton != nil {
		if textWidget := sui.chartsButton.Text(); textWidget != nil {
			textWidget.Label = chartsText(sui.Set.ShowCharts)
		}
	}
	if sui.scaleButton != nil {
		if textWidget := sui.scaleButton.Text(); textWidget != nil {
			textWidget.Label = "Window: " + systems.ScaleLabel(sui.Set.ScaleIndex)
		}
	}
}

// Update runs the ebitenui input/layout pass.
func (sui *SimulatorUI) Update() {
	sui.UI.Update()
}

func sliderText(spec cfg.SliderSpec, v float64) string {
	return fmt.Sprintf("%s: %.1f", spec.Label, v)
}

func chartsText(on bool) string {
	if on {
		return "Charts: on"
	}
	return "Charts: off"
}
