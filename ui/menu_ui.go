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

// MenuUI is the start screen form: player name, relay address, and the
// three ways into a table.
type MenuUI struct {
	UI *ebitenui.UI

	OnJoin    func(name, address string)
	OnBrowse  func(name string)
	OnOffline func(name string)

	nameInput    *widget.TextInput
	addressInput *widget.TextInput
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(onJoin func(name, address string), onBrowse, onOffline func(name string)) *MenuUI {
	ui := &MenuUI{
		OnJoin:    onJoin,
		OnBrowse:  onBrowse,
		OnOffline: onOffline,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

// SetStatus shows a status/error line under the form.
func (ui *MenuUI) SetStatus(message string) {
	ui.statusLabel.Label = message
}

// SetDefaults prefills the form from saved settings.
func (ui *MenuUI) SetDefaults(name, address string) {
	if name != "" {
		ui.nameInput.SetText(name)
	}
	if address != "" {
		ui.addressInput.SetText(address)
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 20, 28, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("TOKENPLAY", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	content.AddChild(title)

	ui.nameInput = ui.textInput("your name", 200)
	content.AddChild(ui.labeledRow("Name:    ", ui.nameInput))

	ui.addressInput = ui.textInput("localhost:7373", 200)
	content.AddChild(ui.labeledRow("Address: ", ui.addressInput))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	content.AddChild(ui.statusLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(ui.button("Join Table", color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnJoin != nil {
			ui.OnJoin(ui.playerName(), ui.address())
		}
	}))
	buttons.AddChild(ui.button("Browse Tables", color.RGBA{50, 70, 120, 255}, func() {
		if ui.OnBrowse != nil {
			ui.OnBrowse(ui.playerName())
		}
	}))
	buttons.AddChild(ui.button("Offline Table", color.RGBA{90, 70, 40, 255}, func() {
		if ui.OnOffline != nil {
			ui.OnOffline(ui.playerName())
		}
	}))
	content.AddChild(buttons)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("click: select   shift-click: multi-select   F/V: flip   B: bounce   1-9: emote   Tab: scene", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	content.AddChild(hint)

	rootContainer.AddChild(content)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) playerName() string {
	name := ui.nameInput.GetText()
	if name == "" {
		name = "player"
	}
	return name
}

func (ui *MenuUI) address() string {
	addr := ui.addressInput.GetText()
	if addr == "" {
		addr = "localhost:7373"
	}
	return addr
}

func (ui *MenuUI) labeledRow(label string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(input)
	return row
}

func (ui *MenuUI) textInput(placeholder string, minWidth int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 22)),
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
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *MenuUI) button(label string, bg color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{bg.R + 30, bg.G + 30, bg.B + 30, 255}
	pressed := color.RGBA{bg.R - 10, bg.G - 10, bg.B - 10, 255}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(130, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(bg),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(pressed),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 235, 220, 255},
			Pressed:  color.RGBA{170, 190, 170, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
