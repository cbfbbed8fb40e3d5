package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the connect screen: a server address field and a connect button.
type MenuUI struct {
	UI *ebitenui.UI

	OnConnect func(address string)

	addressInput *widget.TextInput
	statusLabel  *widget.Label
	connectBtn   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(defaultAddress string, onConnect func(address string)) *MenuUI {
	ui := &MenuUI{
		OnConnect: onConnect,
	}
	ui.loadFonts()
	ui.buildUI(defaultAddress)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *MenuUI) buildUI(defaultAddress string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{17, 17, 26, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
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
		widget.LabelOpts.Text("SLITHERIO", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{100, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildConnectPanel(defaultAddress))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) buildConnectPanel(defaultAddress string) *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	addressRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	addressLabel := widget.NewLabel(
		widget.LabelOpts.Text("Server:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	addressRow.AddChild(addressLabel)

	ui.addressInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("localhost:5001"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	if defaultAddress != "" {
		ui.addressInput.SetText(defaultAddress)
	}
	addressRow.AddChild(ui.addressInput)
	panel.AddChild(addressRow)

	ui.connectBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Play", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.Address())
			}
		}),
	)
	panel.AddChild(ui.connectBtn)

	return panel
}

func (ui *MenuUI) Address() string {
	addr := ui.addressInput.GetText()
	if addr == "" {
		addr = "localhost:5001"
	}
	return addr
}

func (ui *MenuUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *MenuUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
