package surface

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Font is the face and size used to render the document.
type Font struct {
	Size  float32
	Style fyne.TextStyle
}

// CharWidth returns the advance width of the digit zero in f.
func (f Font) CharWidth() float32 {
	return fyne.MeasureText("0", f.Size, f.Style).Width
}

// LineHeight returns the height of one rendered text row in f.
func (f Font) LineHeight() float32 {
	return fyne.MeasureText("0", f.Size, f.Style).Height
}

// fontTheme overrides the text size of the theme that was active when it
// was created. It must never look up theme.Current: inside the override
// that returns the fontTheme itself.
type fontTheme struct {
	base fyne.Theme
	size float32
}

func newFontTheme(size float32) *fontTheme {
	base := theme.DefaultTheme()
	if app := fyne.CurrentApp(); app != nil && app.Settings().Theme() != nil {
		base = app.Settings().Theme()
	}
	return &fontTheme{base: base, size: size}
}

func (t *fontTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *fontTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *fontTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *fontTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.size
	}
	return t.base.Size(name)
}
