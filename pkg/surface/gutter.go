package surface

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Gutter is the margin strip that shows line numbers next to the text.
type Gutter struct {
	widget.BaseWidget
	width float32
	lines int
	font  Font
}

// NewGutter creates a gutter of zero width.
func NewGutter(font Font) *Gutter {
	g := &Gutter{lines: 1, font: font}
	g.ExtendBaseWidget(g)
	return g
}

// CreateRenderer creates the gutter renderer
func (g *Gutter) CreateRenderer() fyne.WidgetRenderer {
	r := &gutterRenderer{
		gutter:     g,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
	}
	r.refresh()
	return r
}

// Width returns the current margin width in pixels.
func (g *Gutter) Width() float32 {
	return g.width
}

// SetWidth sets the margin width. A width of zero hides the gutter.
func (g *Gutter) SetWidth(width float32) {
	g.width = width
	if width <= 0 {
		g.Hide()
	} else {
		g.Show()
	}
	g.Refresh()
}

func (g *Gutter) setLines(lines int) {
	g.lines = lines
	g.Refresh()
}

func (g *Gutter) setFont(font Font) {
	g.font = font
	g.Refresh()
}

// gutterRenderer draws one right-aligned number per line
type gutterRenderer struct {
	gutter     *Gutter
	background *canvas.Rectangle
	numbers    []*canvas.Text
}

func (r *gutterRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	pad := theme.InnerPadding()
	rowHeight := r.rowHeight()
	charWidth := r.gutter.font.CharWidth()

	for i, number := range r.numbers {
		textSize := number.MinSize()
		x := size.Width - charWidth - textSize.Width
		number.Move(fyne.NewPos(x, pad+float32(i)*rowHeight))
		number.Resize(textSize)
	}
}

func (r *gutterRenderer) MinSize() fyne.Size {
	pad := theme.InnerPadding()
	return fyne.NewSize(r.gutter.width, 2*pad+float32(r.gutter.lines)*r.rowHeight())
}

func (r *gutterRenderer) Refresh() {
	r.refresh()
	r.Layout(r.gutter.Size())
	canvas.Refresh(r.gutter)
}

func (r *gutterRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.numbers)+1)
	objects = append(objects, r.background)
	for _, number := range r.numbers {
		objects = append(objects, number)
	}
	return objects
}

func (r *gutterRenderer) Destroy() {}

func (r *gutterRenderer) rowHeight() float32 {
	return r.gutter.font.LineHeight() + theme.LineSpacing()
}

// refresh grows or shrinks the number objects to match the line count
func (r *gutterRenderer) refresh() {
	g := r.gutter
	fg := theme.Color(theme.ColorNameDisabled)
	r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.background.Refresh()

	if len(r.numbers) > g.lines {
		r.numbers = r.numbers[:g.lines]
	}
	for i := len(r.numbers); i < g.lines; i++ {
		r.numbers = append(r.numbers, canvas.NewText(strconv.Itoa(i+1), fg))
	}

	for _, number := range r.numbers {
		r.styleNumber(number, fg)
	}
}

func (r *gutterRenderer) styleNumber(number *canvas.Text, fg color.Color) {
	number.Color = fg
	number.TextSize = r.gutter.font.Size
	number.TextStyle = r.gutter.font.Style
	number.Refresh()
}
