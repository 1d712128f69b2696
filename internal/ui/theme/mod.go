package theme

import (
	"image/color"
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/ispapp/textpad/pkg/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme is the editor theme. Dark forces the dark variant, and syntax
// colors come from the chroma style.
type AppTheme struct {
	Dark   bool
	Syntax *chroma.Style
}

// NewAppTheme creates the theme with the named chroma style.
func NewAppTheme(dark bool, syntaxStyle string) *AppTheme {
	style := styles.Get(syntaxStyle)
	if style == nil || style == styles.Fallback && syntaxStyle != styles.Fallback.Name {
		log.Printf("Unknown syntax style %q, using %s", syntaxStyle, styles.Fallback.Name)
		style = styles.Fallback
	}
	return &AppTheme{Dark: dark, Syntax: style}
}

func (m *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if m.Dark {
		variant = theme.VariantDark
	}

	if tokenType, ok := surface.SyntaxTokens[name]; ok {
		if c, ok := m.syntaxColor(tokenType); ok {
			return c
		}
		return theme.DefaultTheme().Color(theme.ColorNameForeground, variant)
	}

	if m.Dark && name == theme.ColorNameInputBackground {
		if entry := m.Syntax.Get(chroma.Background); entry.Background.IsSet() {
			return toNRGBA(entry.Background)
		}
	}

	return theme.DefaultTheme().Color(name, variant)
}

func (m *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func (m *AppTheme) ApplyTheme(a fyne.App) {
	a.Settings().SetTheme(m)
}

func (m *AppTheme) syntaxColor(tokenType chroma.TokenType) (color.Color, bool) {
	if m.Syntax == nil {
		return nil, false
	}
	entry := m.Syntax.Get(tokenType)
	if !entry.Colour.IsSet() {
		return nil, false
	}
	return toNRGBA(entry.Colour), true
}

func toNRGBA(c chroma.Colour) color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}
