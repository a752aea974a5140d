package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsValues is what the settings screen edits.
type SettingsValues struct {
	SFXVolume     float64
	StartingLives int
}

// SettingsLimits bounds the editable values.
type SettingsLimits struct {
	VolumeStep float64
	MinLives   int
	MaxLives   int
}

type SettingsUI struct {
	UI *ebitenui.UI

	OnChange         func(SettingsValues)
	OnResetHighScore func()
	OnGoBack         func()

	values SettingsValues
	limits SettingsLimits

	volumeLabel *widget.Label
	livesLabel  *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSettingsUI(values SettingsValues, limits SettingsLimits) *SettingsUI {
	ui := &SettingsUI{
		values: values,
		limits: limits,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 18, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.volumeLabel = ui.newValueLabel()
	contentContainer.AddChild(ui.buildStepperRow("Sound:", ui.volumeLabel,
		func() { ui.StepVolume(-1) },
		func() { ui.StepVolume(1) },
	))

	ui.livesLabel = ui.newValueLabel()
	contentContainer.AddChild(ui.buildStepperRow("Lives:", ui.livesLabel,
		func() { ui.StepLives(-1) },
		func() { ui.StepLives(1) },
	))

	contentContainer.AddChild(ui.newButton("Reset High Score", 180, color.RGBA{120, 40, 40, 255}, func() {
		if ui.OnResetHighScore != nil {
			ui.OnResetHighScore()
		}
		ui.SetStatus("High score cleared")
	}))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.newButton("Back", 80, color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.refresh()
}

func (ui *SettingsUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

func (ui *SettingsUI) buildStepperRow(name string, value *widget.Label, onDown, onUp func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(ui.newButton("-", 28, color.RGBA{60, 60, 80, 255}, onDown))
	row.AddChild(value)
	row.AddChild(ui.newButton("+", 28, color.RGBA{60, 60, 80, 255}, onUp))

	return row
}

func (ui *SettingsUI) newButton(label string, width int, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{lighten(base.R), lighten(base.G), lighten(base.B), 255}
	pressed := color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(pressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 180, 255},
			Pressed: color.RGBA{200, 180, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// StepVolume moves the volume by steps increments of the configured step.
func (ui *SettingsUI) StepVolume(steps int) {
	ui.values.SFXVolume = stepVolume(ui.values.SFXVolume, steps, ui.limits.VolumeStep)
	ui.changed()
}

// StepLives moves the starting lives by delta within the limits.
func (ui *SettingsUI) StepLives(delta int) {
	ui.values.StartingLives = min(max(ui.values.StartingLives+delta, ui.limits.MinLives), ui.limits.MaxLives)
	ui.changed()
}

func (ui *SettingsUI) Values() SettingsValues { return ui.values }

func (ui *SettingsUI) changed() {
	ui.refresh()
	ui.SetStatus("")
	if ui.OnChange != nil {
		ui.OnChange(ui.values)
	}
}

func (ui *SettingsUI) refresh() {
	ui.volumeLabel.Label = volumeText(ui.values.SFXVolume)
	ui.livesLabel.Label = fmt.Sprintf("%d", ui.values.StartingLives)
}

func (ui *SettingsUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *SettingsUI) Update() {
	ui.UI.Update()
}

// stepVolume snaps to the step grid so repeated presses do not drift.
func stepVolume(v float64, steps int, step float64) float64 {
	if step <= 0 {
		return v
	}
	n := math.Round(v/step) + float64(steps)
	return min(max(n*step, 0), 1)
}

func volumeText(v float64) string {
	return fmt.Sprintf("%3d%%", int(math.Round(v*100)))
}

func lighten(c uint8) uint8 {
	return uint8(min(int(c)+20, 255))
}
