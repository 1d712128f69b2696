package surface

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFont = Font{Size: 14, Style: fyne.TextStyle{Monospace: true}}

func TestCountLines(t *testing.T) {
	testCases := []struct {
		text     string
		expected int
	}{
		{"", 1},
		{"one", 1},
		{"one\n", 2},
		{"one\ntwo\nthree", 3},
		{"\n\n\n", 4},
		{"crlf\r\nline", 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CountLines(tc.text), "CountLines(%q)", tc.text)
	}
}

func TestNewEditor(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	require.NotNil(t, ed)

	assert.Equal(t, "", ed.Text())
	assert.Equal(t, 1, ed.LineCount())
	assert.Zero(t, ed.MarginWidth())
	assert.False(t, ed.gutter.Visible())
	assert.Equal(t, testFont, ed.Font())
	assert.False(t, ed.Highlighting())
	assert.Equal(t, "python", ed.highlighter.Language())
}

func TestSetTextReplacesContentAndNotifies(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	var notified []int
	ed.SetOnLineCountChanged(func(lines int) { notified = append(notified, lines) })

	ed.SetText("alpha\nbeta\ngamma")
	assert.Equal(t, "alpha\nbeta\ngamma", ed.Text())
	assert.Equal(t, 3, ed.LineCount())

	ed.SetText("x\ny\nz")
	assert.Equal(t, "x\ny\nz", ed.Text())

	ed.SetText("only")
	assert.Equal(t, "only", ed.Text())
	assert.Equal(t, []int{3, 1}, notified)
}

func TestTypingNewlineNotifies(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	var notified []int
	ed.SetOnLineCountChanged(func(lines int) { notified = append(notified, lines) })

	test.Type(ed.entry, "abc")
	assert.Empty(t, notified)

	ed.entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, 2, ed.LineCount())
	assert.Equal(t, []int{2}, notified)
}

func TestMarginWidth(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")

	ed.SetMarginWidth(36)
	assert.Equal(t, float32(36), ed.MarginWidth())
	assert.True(t, ed.gutter.Visible())

	ed.SetMarginWidth(0)
	assert.Zero(t, ed.MarginWidth())
	assert.False(t, ed.gutter.Visible())
}

func TestGutterTracksLines(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	ed.SetMarginWidth(40)
	ed.SetText("1\n2\n3\n4\n5\n6\n7\n8\n9\n10")

	r := test.WidgetRenderer(ed.gutter).(*gutterRenderer)
	require.Len(t, r.numbers, 10)
	assert.Equal(t, "10", r.numbers[9].Text)
	assert.Equal(t, float32(40), r.MinSize().Width)

	ed.SetText("short")
	assert.Len(t, r.numbers, 1)
}

func TestSetFontChangesCharWidth(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	small := ed.CharWidth()
	require.Greater(t, small, float32(0))

	ed.SetFont(Font{Size: 28, Style: fyne.TextStyle{Monospace: true}})
	assert.Greater(t, ed.CharWidth(), small)
	assert.Equal(t, float32(28), ed.Font().Size)
	assert.True(t, ed.entry.TextStyle.Monospace)

	ed.SetFont(Font{Size: 28, Style: fyne.TextStyle{Monospace: true, Bold: true}})
	assert.True(t, ed.entry.TextStyle.Bold)
}

func TestHighlightingView(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	ed.SetText("def greet(name):\n    # say hello\n    return 'hi ' + name\n")

	ed.SetHighlighting(true)
	assert.True(t, ed.Highlighting())
	assert.False(t, ed.entry.Visible())
	assert.True(t, ed.view.Visible())

	colors := map[fyne.ThemeColorName]bool{}
	for _, seg := range ed.view.Segments {
		text, ok := seg.(*widget.TextSegment)
		require.True(t, ok)
		colors[text.Style.ColorName] = true
	}
	assert.True(t, colors[ColorNameSyntaxKeyword])
	assert.True(t, colors[ColorNameSyntaxComment])
	assert.True(t, colors[ColorNameSyntaxString])

	ed.SetText("x = 1\n")
	assert.NotEmpty(t, ed.view.Segments)

	ed.SetHighlighting(false)
	assert.True(t, ed.entry.Visible())
	assert.False(t, ed.view.Visible())
	assert.Equal(t, "x = 1\n", ed.Text())
}

func TestColorNameFor(t *testing.T) {
	assert.Equal(t, ColorNameSyntaxKeyword, ColorNameFor(chroma.KeywordNamespace))
	assert.Equal(t, ColorNameSyntaxString, ColorNameFor(chroma.LiteralStringDouble))
	assert.Equal(t, ColorNameSyntaxNumber, ColorNameFor(chroma.LiteralNumberInteger))
	assert.Equal(t, ColorNameSyntaxComment, ColorNameFor(chroma.CommentSingle))
	assert.Equal(t, ColorNameSyntaxFunction, ColorNameFor(chroma.NameFunction))
	assert.Equal(t, ColorNameSyntaxBuiltin, ColorNameFor(chroma.NameBuiltin))
	assert.Equal(t, ColorNameSyntaxOperator, ColorNameFor(chroma.OperatorWord))
	assert.Equal(t, fyne.ThemeColorName(""), ColorNameFor(chroma.Name))
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	h := NewHighlighter("no-such-language")
	segments := h.Segments("anything at all", fyne.TextStyle{})
	assert.NotEmpty(t, segments)
}

func TestFontThemeDelegatesToBase(t *testing.T) {
	a := test.NewTempApp(t)
	base := a.Settings().Theme()

	ft := newFontTheme(21)
	assert.Equal(t, float32(21), ft.Size(theme.SizeNameText))
	assert.Equal(t, base.Size(theme.SizeNameInnerPadding), ft.Size(theme.SizeNameInnerPadding))
	assert.Equal(t, base.Color(theme.ColorNameForeground, theme.VariantDark), ft.Color(theme.ColorNameForeground, theme.VariantDark))
	assert.Equal(t, base.Font(fyne.TextStyle{Monospace: true}), ft.Font(fyne.TextStyle{Monospace: true}))
}

func TestEditorLaysOutOnCanvas(t *testing.T) {
	test.NewTempApp(t)

	ed := New(testFont, "python")
	ed.SetText("import os\n\ndef main():\n    print(os.getcwd())\n")
	width := 3 * ed.CharWidth()
	ed.SetMarginWidth(width)

	w := test.NewTempWindow(t, ed)
	w.Resize(fyne.NewSize(480, 320))

	assert.Greater(t, ed.MinSize().Width, float32(0))
	assert.Equal(t, width, ed.gutter.Size().Width)
	assert.Greater(t, ed.gutter.Size().Height, float32(0))
	assert.Greater(t, ed.entry.Size().Width, float32(0))

	ed.SetFont(Font{Size: 24, Style: fyne.TextStyle{Monospace: true, Bold: true}})
	ed.SetMarginWidth(3 * ed.CharWidth())
	w.Resize(fyne.NewSize(500, 340))
	assert.Greater(t, w.Content().MinSize().Height, float32(0))
	assert.Equal(t, 3*ed.CharWidth(), ed.gutter.Size().Width)

	ed.SetHighlighting(true)
	w.Resize(fyne.NewSize(520, 360))
	assert.Greater(t, ed.view.Size().Width, float32(0))
	assert.Greater(t, ed.view.MinSize().Height, float32(0))

	ed.SetMarginWidth(0)
	w.Resize(fyne.NewSize(480, 320))
	assert.False(t, ed.gutter.Visible())
	assert.Greater(t, w.Content().MinSize().Width, float32(0))
}
