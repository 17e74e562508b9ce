package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TableEntry is one row in the public table list.
type TableEntry struct {
	Name    string
	Address string
	Players int
}

// BrowserUI is the public-table browser: the list fetched from the
// directory service plus refresh/back controls.
type BrowserUI struct {
	UI *ebitenui.UI

	OnJoin    func(address string)
	OnRefresh func()
	OnGoBack  func()

	listContainer *widget.Container
	statusLabel   *widget.Label
	refreshBtn    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewBrowserUI(onJoin func(address string), onRefresh, onGoBack func()) *BrowserUI {
	ui := &BrowserUI{
		OnJoin:    onJoin,
		OnRefresh: onRefresh,
		OnGoBack:  onGoBack,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *BrowserUI) Update() {
	ui.UI.Update()
}

// SetStatus shows a status/error line under the list.
func (ui *BrowserUI) SetStatus(message string) {
	ui.statusLabel.Label = message
}

// SetRefreshing disables the refresh button while a fetch is in
// flight.
func (ui *BrowserUI) SetRefreshing(refreshing bool) {
	ui.refreshBtn.GetWidget().Disabled = refreshing
}

// SetTableList replaces the visible rows.
func (ui *BrowserUI) SetTableList(entries []TableEntry) {
	ui.listContainer.RemoveChildren()

	if len(entries) == 0 {
		ui.listContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("no public tables", &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{150, 150, 150, 255},
			}),
		))
		return
	}

	for _, entry := range entries {
		entry := entry
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			)),
		)
		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(
				fmt.Sprintf("%-24s %-20s %d online", entry.Name, entry.Address, entry.Players),
				&ui.normalFace,
				&widget.LabelColor{Idle: color.RGBA{220, 220, 220, 255}},
			),
		))
		row.AddChild(ui.button("Join", color.RGBA{40, 100, 40, 255}, func() {
			if ui.OnJoin != nil {
				ui.OnJoin(entry.Address)
			}
		}))
		ui.listContainer.AddChild(row)
	}
}

func (ui *BrowserUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *BrowserUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
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

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PUBLIC TABLES", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.listContainer = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	content.AddChild(ui.listContainer)

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
	ui.refreshBtn = ui.button("Refresh", color.RGBA{50, 70, 120, 255}, func() {
		if ui.OnRefresh != nil {
			ui.OnRefresh()
		}
	})
	buttons.AddChild(ui.refreshBtn)
	buttons.AddChild(ui.button("Back", color.RGBA{80, 50, 50, 255}, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))
	content.AddChild(buttons)

	rootContainer.AddChild(content)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *BrowserUI) button(label string, bg color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{bg.R + 30, bg.G + 30, bg.B + 30, 255}
	pressed := color.RGBA{bg.R - 10, bg.G - 10, bg.B - 10, 255}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 24)),
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
