// Package surface provides the edit surface used by the editor window.
//
// The surface wraps a multi-line entry with a line-number gutter, an
// optional read-only view that is syntax highlighted by a chroma lexer,
// and a per-widget font. The gutter width is not computed here: callers
// set it with SetMarginWidth, typically from a margin policy that reacts
// to SetOnLineCountChanged.
//
// Basic usage:
//
//	ed := surface.New(surface.Font{Size: 14, Style: fyne.TextStyle{Monospace: true}}, "python")
//	ed.SetOnLineCountChanged(func(int) { policy.OnLineCountChanged() })
//	ed.SetText("print('hello')\n")
package surface
