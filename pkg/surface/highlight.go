package surface

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Theme color names used for highlighted tokens. The application theme
// resolves them; any other theme falls back to its foreground color.
const (
	ColorNameSyntaxKeyword  fyne.ThemeColorName = "syntax.keyword"
	ColorNameSyntaxString   fyne.ThemeColorName = "syntax.string"
	ColorNameSyntaxComment  fyne.ThemeColorName = "syntax.comment"
	ColorNameSyntaxNumber   fyne.ThemeColorName = "syntax.number"
	ColorNameSyntaxFunction fyne.ThemeColorName = "syntax.function"
	ColorNameSyntaxBuiltin  fyne.ThemeColorName = "syntax.builtin"
	ColorNameSyntaxOperator fyne.ThemeColorName = "syntax.operator"
)

// SyntaxTokens maps each syntax color name to the chroma token type whose
// style entry defines it.
var SyntaxTokens = map[fyne.ThemeColorName]chroma.TokenType{
	ColorNameSyntaxKeyword:  chroma.Keyword,
	ColorNameSyntaxString:   chroma.LiteralString,
	ColorNameSyntaxComment:  chroma.Comment,
	ColorNameSyntaxNumber:   chroma.LiteralNumber,
	ColorNameSyntaxFunction: chroma.NameFunction,
	ColorNameSyntaxBuiltin:  chroma.NameBuiltin,
	ColorNameSyntaxOperator: chroma.Operator,
}

// Highlighter turns source text into styled rich text segments.
type Highlighter struct {
	language string
	lexer    chroma.Lexer
}

// NewHighlighter creates a highlighter for a chroma language name.
// Unknown languages fall back to plain text.
func NewHighlighter(language string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		log.Printf("No lexer for %q, highlighting as plain text", language)
		lexer = lexers.Fallback
	}
	return &Highlighter{language: language, lexer: chroma.Coalesce(lexer)}
}

// Language returns the language the highlighter was created for.
func (h *Highlighter) Language() string {
	return h.language
}

// Segments tokenizes text and returns one segment per token.
func (h *Highlighter) Segments(text string, style fyne.TextStyle) []widget.RichTextSegment {
	plain := []widget.RichTextSegment{
		&widget.TextSegment{Text: text, Style: widget.RichTextStyle{TextStyle: style}},
	}
	if text == "" {
		return plain
	}

	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("Error tokenizing text: %v", err)
		return plain
	}

	var segments []widget.RichTextSegment
	for token := iterator(); token != chroma.EOF; token = iterator() {
		segment := &widget.TextSegment{
			Text:  token.Value,
			Style: widget.RichTextStyle{TextStyle: style, Inline: true},
		}
		if name := ColorNameFor(token.Type); name != "" {
			segment.Style.ColorName = name
		}
		segments = append(segments, segment)
	}
	return segments
}

// ColorNameFor maps a chroma token type to a theme color name, or "" for
// the default foreground.
func ColorNameFor(tokenType chroma.TokenType) fyne.ThemeColorName {
	switch {
	case tokenType.InCategory(chroma.Keyword):
		return ColorNameSyntaxKeyword
	case tokenType.InSubCategory(chroma.LiteralString):
		return ColorNameSyntaxString
	case tokenType.InSubCategory(chroma.LiteralNumber):
		return ColorNameSyntaxNumber
	case tokenType.InCategory(chroma.Comment):
		return ColorNameSyntaxComment
	case tokenType == chroma.NameFunction, tokenType == chroma.NameClass:
		return ColorNameSyntaxFunction
	case tokenType == chroma.NameBuiltin, tokenType == chroma.NameBuiltinPseudo:
		return ColorNameSyntaxBuiltin
	case tokenType.InCategory(chroma.Operator):
		return ColorNameSyntaxOperator
	case tokenType == chroma.Error:
		return theme.ColorNameError
	default:
		return ""
	}
}
