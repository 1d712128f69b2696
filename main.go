package main

import (
	"github.com/ispapp/textpad/internal/config"
	"github.com/ispapp/textpad/internal/ui"
	"github.com/ispapp/textpad/internal/ui/theme"

	"fyne.io/fyne/v2/app"
)

func main() {
	cfg := config.Default()

	// Create the application once and hand it to the window explicitly
	a := app.NewWithID(cfg.AppID)
	theme.NewAppTheme(cfg.DarkTheme, cfg.SyntaxStyle).ApplyTheme(a)

	mainUI := ui.NewMainUI(a, cfg)
	mainUI.ShowAndRun()
}
