package dialogs

import (
	"io"
	"log"

	"github.com/ispapp/textpad/internal/actions"
	"github.com/ispapp/textpad/pkg/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Fyne shows the editor's prompts as Fyne dialogs over parent.
type Fyne struct {
	parent          fyne.Window
	textExtensions  []string
	defaultFileName string
}

// New creates the dialog adapter. textExtensions is the "text files"
// filter offered by the open dialog.
func New(parent fyne.Window, textExtensions []string, defaultFileName string) *Fyne {
	return &Fyne{
		parent:          parent,
		textExtensions:  textExtensions,
		defaultFileName: defaultFileName,
	}
}

// OpenFile shows a file picker and passes the chosen file to chosen.
func (d *Fyne) OpenFile(filter actions.Filter, chosen func(io.ReadCloser, error)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			chosen(nil, err)
			return
		}
		if reader == nil {
			chosen(nil, nil) // User cancelled
			return
		}
		log.Printf("Opening %s", reader.URI())
		chosen(reader, nil)
	}, d.parent)

	if filter == actions.FilterText {
		fileDialog.SetFilter(storage.NewExtensionFileFilter(d.textExtensions))
	}
	fileDialog.Show()
}

// SaveFile shows a save picker and passes the destination to chosen.
func (d *Fyne) SaveFile(chosen func(io.WriteCloser, error)) {
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			chosen(nil, err)
			return
		}
		if writer == nil {
			chosen(nil, nil)
			return
		}
		log.Printf("Saving to %s", writer.URI())
		chosen(writer, nil)
	}, d.parent)

	fileDialog.SetFileName(d.defaultFileName)
	fileDialog.Show()
}

// PickFont shows the font picker seeded with current.
func (d *Fyne) PickFont(current surface.Font, chosen func(surface.Font, bool)) {
	picker := newFontPicker(current)

	form := dialog.NewForm("Font", "OK", "Cancel", picker.items(), func(ok bool) {
		if !ok {
			chosen(current, false)
			return
		}
		font, err := picker.font()
		if err != nil {
			d.ShowError(err)
			chosen(current, false)
			return
		}
		chosen(font, true)
	}, d.parent)
	form.Resize(fyne.NewSize(360, 320))
	form.Show()
}

// ShowError reports err to the user.
func (d *Fyne) ShowError(err error) {
	dialog.ShowError(err, d.parent)
}
