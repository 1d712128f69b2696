package ui

import (
	"fmt"
	"log"

	"github.com/ispapp/textpad/internal/actions"
	"github.com/ispapp/textpad/internal/config"
	"github.com/ispapp/textpad/internal/dialogs"
	"github.com/ispapp/textpad/internal/margin"
	"github.com/ispapp/textpad/internal/textio"
	"github.com/ispapp/textpad/pkg/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// MainUI is the editor window and the state it owns.
type MainUI struct {
	Window  fyne.Window
	Editor  *surface.Editor
	Margin  *margin.Policy
	Actions map[actions.ID]func()
	Status  binding.String

	menu         *fyne.MainMenu
	lineNumbers  *fyne.MenuItem
	highlighting *fyne.MenuItem
}

// NewMainUI builds the editor window on app using cfg.
func NewMainUI(app fyne.App, cfg *config.Editor) *MainUI {
	if problems := cfg.Validate(); len(problems) > 0 {
		for _, problem := range problems {
			log.Printf("Invalid editor setting: %s", problem)
		}
		log.Printf("Falling back to default editor settings")
		cfg = config.Default()
	}

	codec, err := textio.NewCodec(cfg.Encoding)
	if err != nil {
		log.Printf("Failed to load encoding, falling back to utf-8: %v", err)
		codec, _ = textio.NewCodec("utf-8")
	}

	m := &MainUI{
		Window: app.NewWindow(cfg.Title),
		Status: binding.NewString(),
	}

	font := surface.Font{Size: cfg.FontSize, Style: fyne.TextStyle{Monospace: cfg.Monospace}}
	m.Editor = surface.New(font, cfg.Language)
	m.Margin = margin.NewPolicy(m.Editor, cfg.MarginPlaceholder)
	m.Editor.SetOnLineCountChanged(func(int) {
		m.Margin.OnLineCountChanged()
		m.refreshState()
	})

	handlers := &actions.Handlers{
		Surface:        m.Editor,
		Margin:         m.Margin,
		Dialogs:        dialogs.New(m.Window, cfg.TextExtensions, cfg.DefaultFileName),
		Codec:          codec,
		Quit:           app.Quit,
		OnStateChanged: m.refreshState,
	}
	m.Actions = handlers.Table()

	m.buildMenu()
	m.Window.SetMainMenu(m.menu)

	statusBar := widget.NewLabelWithData(m.Status)
	statusBar.TextStyle = fyne.TextStyle{Italic: true}

	m.Window.SetContent(container.NewBorder(nil, statusBar, nil, nil, m.Editor))
	m.Window.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	m.Margin.SetVisible(cfg.ShowLineNumbers)
	m.refreshState()
	return m
}

// ShowAndRun shows the window and runs the application event loop.
func (m *MainUI) ShowAndRun() {
	m.Window.ShowAndRun()
}

func (m *MainUI) buildMenu() {
	open := m.menuItem("Open…", actions.Open, fyne.KeyO)
	openAny := m.menuItem("Open Any File…", actions.OpenAny, "")
	save := m.menuItem("Save…", actions.Save, fyne.KeyS)
	exit := m.menuItem("Exit", actions.Exit, "")
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		open,
		openAny,
		save,
		fyne.NewMenuItemSeparator(),
		exit,
	)

	m.lineNumbers = m.menuItem("Line Numbers", actions.ToggleLineNumbers, fyne.KeyL)
	m.highlighting = m.menuItem("Syntax Highlighting", actions.ToggleHighlighting, "")
	viewMenu := fyne.NewMenu("View",
		m.lineNumbers,
		m.highlighting,
		fyne.NewMenuItemSeparator(),
		m.menuItem("Font…", actions.ChangeFont, ""),
	)

	m.menu = fyne.NewMainMenu(fileMenu, viewMenu)
}

// menuItem binds a menu item to the action id and, when key is set, a
// Ctrl/Cmd shortcut on the window canvas.
func (m *MainUI) menuItem(label string, id actions.ID, key fyne.KeyName) *fyne.MenuItem {
	action := m.Actions[id]
	item := fyne.NewMenuItem(label, action)

	if key != "" {
		shortcut := &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
		item.Shortcut = shortcut
		m.Window.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) { action() })
	}
	return item
}

// refreshState mirrors the editor state into the menu checks and status bar
func (m *MainUI) refreshState() {
	if m.lineNumbers != nil {
		m.lineNumbers.Checked = m.Margin.Visible()
		m.highlighting.Checked = m.Editor.Highlighting()
		m.menu.Refresh()
	}

	font := m.Editor.Font()
	family := "Proportional"
	if font.Style.Monospace {
		family = "Monospace"
	}
	_ = m.Status.Set(fmt.Sprintf("Lines: %d | Font: %s %gpt", m.Editor.LineCount(), family, font.Size))
}
