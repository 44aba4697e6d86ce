package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/puffball/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is one button of a menu screen.
type MenuItem struct {
	Label    string
	Disabled bool
	OnClick  func()
}

// MenuUI is a centred title, subtitle and a column of buttons.
type MenuUI struct {
	UI    *ebitenui.UI
	items []MenuItem

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	buttonFace text.Face
}

// NewMenuUI builds a menu screen.
func NewMenuUI(title, subtitle string, items []MenuItem) *MenuUI {
	mui := &MenuUI{items: items}
	mui.loadFonts()
	mui.buildUI(title, subtitle)
	return mui
}

func (mui *MenuUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: boldSource,
		Size:   cfg.Menu.TitleFontSize,
	}
	mui.buttonFace = &text.GoTextFace{
		Source: boldSource,
		Size:   cfg.Menu.ButtonFontSize,
	}
	mui.normalFace = &text.GoTextFace{
		Source: regularSource,
		Size:   cfg.Menu.ButtonFontSize * 0.75,
	}
}

func (mui *MenuUI) buildUI(title, subtitle string) {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(mui.centredLabel(title, &mui.titleFace, cfg.Menu.TitleColor))
	if subtitle != "" {
		contentContainer.AddChild(mui.centredLabel(subtitle, &mui.normalFace, cfg.Menu.TextColor))
	}

	for _, item := range mui.items {
		onClick := item.OnClick
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(item.Label, &mui.buttonFace, &widget.ButtonTextColor{
				Idle:     cfg.Menu.ButtonTextColor,
				Hover:    cfg.Menu.ButtonTextColor,
				Pressed:  cfg.Menu.ButtonTextColor,
				Disabled: cfg.Menu.TextColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		button.GetWidget().Disabled = item.Disabled
		contentContainer.AddChild(button)
	}

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) centredLabel(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		),
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}

// ActivateFirst runs the first enabled item, the keyboard shortcut for the
// default choice.
func (mui *MenuUI) ActivateFirst() {
	for _, item := range mui.items {
		if !item.Disabled && item.OnClick != nil {
			item.OnClick()
			return
		}
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
