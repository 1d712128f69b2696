// Package actions maps menu action identifiers to the handlers that run
// them. Handlers get every collaborator explicitly so they can be driven
// directly from tests.
package actions

import (
	"fmt"
	"io"
	"log"

	"github.com/ispapp/textpad/internal/textio"
	"github.com/ispapp/textpad/pkg/surface"
)

// ID identifies a menu action.
type ID string

const (
	Open               ID = "open"
	OpenAny            ID = "open-any"
	Save               ID = "save"
	Exit               ID = "exit"
	ToggleLineNumbers  ID = "toggle-line-numbers"
	ChangeFont         ID = "change-font"
	ToggleHighlighting ID = "toggle-highlighting"
)

// Filter selects which files the open dialog lists.
type Filter int

const (
	FilterText Filter = iota
	FilterAll
)

// Surface is the part of the edit surface the handlers use.
type Surface interface {
	Text() string
	SetText(text string)
	Font() surface.Font
	SetFont(font surface.Font)
	Highlighting() bool
	SetHighlighting(on bool)
}

// Margin is the line-number margin policy.
type Margin interface {
	Toggle() bool
	OnFontChanged()
}

// Dialogs shows the prompts handlers need. A chosen callback receiving a
// nil stream and a nil error means the user cancelled.
type Dialogs interface {
	OpenFile(filter Filter, chosen func(r io.ReadCloser, err error))
	SaveFile(chosen func(w io.WriteCloser, err error))
	PickFont(current surface.Font, chosen func(font surface.Font, ok bool))
	ShowError(err error)
}

// Handlers holds the collaborators shared by every action.
type Handlers struct {
	Surface Surface
	Margin  Margin
	Dialogs Dialogs
	Codec   *textio.Codec
	Quit    func()

	// OnStateChanged runs after an action changes a toggle or the font.
	OnStateChanged func()
}

// Table returns the dispatch table for h.
func (h *Handlers) Table() map[ID]func() {
	return map[ID]func(){
		Open:               func() { h.open(FilterText) },
		OpenAny:            func() { h.open(FilterAll) },
		Save:               h.save,
		Exit:               h.exit,
		ToggleLineNumbers:  h.toggleLineNumbers,
		ChangeFont:         h.changeFont,
		ToggleHighlighting: h.toggleHighlighting,
	}
}

func (h *Handlers) open(filter Filter) {
	h.Dialogs.OpenFile(filter, func(r io.ReadCloser, err error) {
		if err != nil {
			h.fail("open", err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		text, err := h.Codec.Read(r)
		if err != nil {
			h.fail("open", err)
			return
		}
		h.Surface.SetText(text)
		log.Printf("Opened document: %d bytes", len(text))
	})
}

func (h *Handlers) save() {
	h.Dialogs.SaveFile(func(w io.WriteCloser, err error) {
		if err != nil {
			h.fail("save", err)
			return
		}
		if w == nil {
			return
		}

		text := h.Surface.Text()
		if err := h.Codec.Write(w, text); err != nil {
			w.Close()
			h.fail("save", err)
			return
		}
		if err := w.Close(); err != nil {
			h.fail("save", err)
			return
		}
		log.Printf("Saved document: %d bytes", len(text))
	})
}

func (h *Handlers) exit() {
	h.Quit()
}

func (h *Handlers) toggleLineNumbers() {
	h.Margin.Toggle()
	h.stateChanged()
}

func (h *Handlers) changeFont() {
	h.Dialogs.PickFont(h.Surface.Font(), func(font surface.Font, ok bool) {
		if !ok {
			return
		}
		h.Surface.SetFont(font)
		h.Margin.OnFontChanged()
		h.stateChanged()
	})
}

func (h *Handlers) toggleHighlighting() {
	h.Surface.SetHighlighting(!h.Surface.Highlighting())
	h.stateChanged()
}

func (h *Handlers) stateChanged() {
	if h.OnStateChanged != nil {
		h.OnStateChanged()
	}
}

func (h *Handlers) fail(op string, err error) {
	log.Printf("Failed to %s file: %v", op, err)
	h.Dialogs.ShowError(fmt.Errorf("failed to %s file: %w", op, err))
}
