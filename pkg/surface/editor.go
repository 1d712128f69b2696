package surface

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Editor is the edit surface: an entry, a line-number gutter and an
// optional highlighted view, all rendered in one font.
type Editor struct {
	widget.BaseWidget

	entry    *widget.Entry
	view     *widget.RichText
	gutter   *Gutter
	override *container.ThemeOverride

	highlighter  *Highlighter
	highlighting bool

	font      Font
	lineCount int

	onLineCountChanged func(lines int)
}

// New creates an edit surface using font, highlighting language when asked to.
func New(font Font, language string) *Editor {
	e := &Editor{
		font:        font,
		lineCount:   1,
		highlighter: NewHighlighter(language),
	}

	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapOff
	e.entry.Scroll = container.ScrollNone
	e.entry.TextStyle = font.Style
	e.entry.OnChanged = e.textChanged

	e.view = widget.NewRichText()
	e.view.Wrapping = fyne.TextWrapOff
	e.view.Hide()

	e.gutter = NewGutter(font)
	e.gutter.SetWidth(0)

	body := container.NewBorder(nil, nil, e.gutter, nil, container.NewStack(e.entry, e.view))
	e.override = container.NewThemeOverride(container.NewScroll(body), newFontTheme(font.Size))

	e.ExtendBaseWidget(e)
	return e
}

// CreateRenderer creates the editor renderer
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.override)
}

// Text returns the whole document.
func (e *Editor) Text() string {
	return e.entry.Text
}

// SetText replaces the whole document.
func (e *Editor) SetText(text string) {
	e.entry.SetText(text)
	e.textChanged(text)
	if e.highlighting {
		e.updateView()
	}
}

// LineCount returns the number of lines in the document, at least 1.
func (e *Editor) LineCount() int {
	return e.lineCount
}

// SetOnLineCountChanged registers fn to run whenever the line count changes.
func (e *Editor) SetOnLineCountChanged(fn func(lines int)) {
	e.onLineCountChanged = fn
}

// Font returns the active font.
func (e *Editor) Font() Font {
	return e.font
}

// SetFont replaces the active font.
func (e *Editor) SetFont(font Font) {
	e.font = font

	e.entry.TextStyle = font.Style
	e.entry.Refresh()
	e.gutter.setFont(font)

	e.override.Theme = newFontTheme(font.Size)
	e.override.Refresh()

	if e.highlighting {
		e.updateView()
	}
}

// CharWidth returns the width of one digit in the active font.
func (e *Editor) CharWidth() float32 {
	return e.font.CharWidth()
}

// MarginWidth returns the gutter width in pixels.
func (e *Editor) MarginWidth() float32 {
	return e.gutter.Width()
}

// SetMarginWidth sets the gutter width in pixels; zero hides it.
func (e *Editor) SetMarginWidth(width float32) {
	e.gutter.SetWidth(width)
	e.override.Refresh()
}

// Highlighting reports whether the read-only highlighted view is shown.
func (e *Editor) Highlighting() bool {
	return e.highlighting
}

// SetHighlighting switches between the editable entry and the highlighted view.
func (e *Editor) SetHighlighting(on bool) {
	e.highlighting = on
	if on {
		e.updateView()
		e.entry.Hide()
		e.view.Show()
	} else {
		e.view.Hide()
		e.entry.Show()
	}
	e.override.Refresh()
}

func (e *Editor) updateView() {
	e.view.Segments = e.highlighter.Segments(e.entry.Text, e.font.Style)
	e.view.Refresh()
}

func (e *Editor) textChanged(text string) {
	lines := CountLines(text)
	if lines == e.lineCount {
		return
	}

	e.lineCount = lines
	e.gutter.setLines(lines)
	if e.onLineCountChanged != nil {
		e.onLineCountChanged(lines)
	}
}

// CountLines returns the number of lines in text. Empty text is one line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}
