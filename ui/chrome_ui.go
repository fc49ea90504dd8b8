package ui

import (
	"bytes"

	cfg "github.com/automoto/portfolio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ChromeUI is the floating header: the owner's name and one button per
// section. The active section's button is shown highlighted and disabled.
type ChromeUI struct {
	UI *ebitenui.UI

	// OnNavigate is called with the section id of a clicked button
	OnNavigate func(id string)

	header  *widget.Container
	buttons map[string]*widget.Button
	active  string

	titleFace text.Face
	navFace   text.Face
}

// NewChromeUI builds the header for content's sections.
func NewChromeUI(content *cfg.ContentData, onNavigate func(id string)) *ChromeUI {
	cui := &ChromeUI{
		OnNavigate: onNavigate,
		buttons:    map[string]*widget.Button{},
	}

	cui.loadFonts()
	cui.buildUI(content)

	return cui
}

func (cui *ChromeUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	cui.titleFace = &text.GoTextFace{Source: bold, Size: 20}
	cui.navFace = &text.GoTextFace{Source: regular, Size: 15}
}

func (cui *ChromeUI) buildUI(content *cfg.ContentData) {
	p := cfg.Page

	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// The bar covers the gap above it so page content never shows through
	padding := widget.Insets{Top: int(p.HeaderTop) + 12, Bottom: 12, Left: 24, Right: 24}
	cui.header = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Theme.Header)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(p.MaxWidth), int(p.HeaderTop+p.HeaderHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(content.Owner, &cui.titleFace, &widget.LabelColor{
			Idle: cfg.Theme.Text,
		}),
	)
	cui.header.AddChild(title)

	for _, s := range content.Sections {
		id := s.ID // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(88, 36),
			),
			widget.ButtonOpts.Image(cui.buttonImage()),
			widget.ButtonOpts.Text(s.Label, &cui.navFace, &widget.ButtonTextColor{
				Idle:     cfg.Theme.TextMuted,
				Hover:    cfg.Theme.Text,
				Pressed:  cfg.Theme.Text,
				Disabled: cfg.Theme.Accent,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if cui.OnNavigate != nil {
					cui.OnNavigate(id)
				}
			}),
		)
		cui.buttons[id] = button
		cui.header.AddChild(button)
	}
	rootContainer.AddChild(cui.header)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ChromeUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Theme.NavIdle),
		Hover:    image.NewNineSliceColor(cfg.Theme.NavHover),
		Pressed:  image.NewNineSliceColor(cfg.Theme.NavActive),
		Disabled: image.NewNineSliceColor(cfg.Theme.NavActive),
	}
}

// SetActive highlights the button for section id.
func (cui *ChromeUI) SetActive(id string) {
	if id == cui.active {
		return
	}
	cui.active = id
	for sid, b := range cui.buttons {
		b.GetWidget().Disabled = sid == id
	}
}

// Active is the highlighted section id.
func (cui *ChromeUI) Active() string {
	return cui.active
}

func (cui *ChromeUI) Update() {
	cui.UI.Update()
}

func (cui *ChromeUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}
