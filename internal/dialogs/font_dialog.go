package dialogs

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ispapp/textpad/pkg/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	familyMonospace    = "Monospace"
	familyProportional = "Proportional"

	styleBold   = "Bold"
	styleItalic = "Italic"

	previewText = "AaBbYyZz 0123456789"
)

var fontSizes = []string{"8", "9", "10", "11", "12", "13", "14", "16", "18", "20", "24", "28", "32", "36", "48", "72"}

// fontPicker holds the form widgets of the font dialog
type fontPicker struct {
	family  *widget.Select
	styles  *widget.CheckGroup
	size    *widget.Select
	preview *canvas.Text
}

func newFontPicker(current surface.Font) *fontPicker {
	p := &fontPicker{
		preview: canvas.NewText(previewText, theme.Color(theme.ColorNameForeground)),
	}

	p.family = widget.NewSelect([]string{familyMonospace, familyProportional}, func(string) { p.updatePreview() })
	p.styles = widget.NewCheckGroup([]string{styleBold, styleItalic}, func([]string) { p.updatePreview() })
	p.styles.Horizontal = true

	sizes := fontSizes
	currentSize := formatSize(current.Size)
	if !slices.Contains(sizes, currentSize) {
		sizes = append([]string{currentSize}, sizes...)
	}
	p.size = widget.NewSelect(sizes, func(string) { p.updatePreview() })

	if current.Style.Monospace {
		p.family.SetSelected(familyMonospace)
	} else {
		p.family.SetSelected(familyProportional)
	}
	var selected []string
	if current.Style.Bold {
		selected = append(selected, styleBold)
	}
	if current.Style.Italic {
		selected = append(selected, styleItalic)
	}
	p.styles.SetSelected(selected)
	p.size.SetSelected(currentSize)

	return p
}

func (p *fontPicker) items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Family", p.family),
		widget.NewFormItem("Style", p.styles),
		widget.NewFormItem("Size", p.size),
		widget.NewFormItem("Preview", p.preview),
	}
}

// font returns the font described by the current selections
func (p *fontPicker) font() (surface.Font, error) {
	size, err := strconv.ParseFloat(p.size.Selected, 32)
	if err != nil || size <= 0 {
		return surface.Font{}, fmt.Errorf("invalid font size %q", p.size.Selected)
	}

	style := fyne.TextStyle{
		Monospace: p.family.Selected == familyMonospace,
		Bold:      slices.Contains(p.styles.Selected, styleBold),
		Italic:    slices.Contains(p.styles.Selected, styleItalic),
	}
	return surface.Font{Size: float32(size), Style: style}, nil
}

func (p *fontPicker) updatePreview() {
	if p.size == nil || p.family == nil || p.styles == nil {
		return
	}
	font, err := p.font()
	if err != nil {
		return
	}
	p.preview.TextSize = font.Size
	p.preview.TextStyle = font.Style
	p.preview.Refresh()
}

func formatSize(size float32) string {
	return strconv.FormatFloat(float64(size), 'f', -1, 32)
}
