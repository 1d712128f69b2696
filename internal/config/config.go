// Package config holds the editor defaults and their validation.
package config

import (
	"fmt"
)

// Editor holds the compiled-in editor defaults.
type Editor struct {
	// Application
	AppID  string
	Title  string
	Width  float32
	Height float32

	// Appearance
	DarkTheme   bool
	SyntaxStyle string
	FontSize    float32
	Monospace   bool

	// Highlighting
	Language string

	// Files
	Encoding        string
	TextExtensions  []string
	DefaultFileName string

	// Margin
	MarginPlaceholder float32
	ShowLineNumbers   bool
}

// Default returns the editor defaults used when nothing else is configured.
func Default() *Editor {
	return &Editor{
		AppID:  "co.ispapp.textpad",
		Title:  "Textpad",
		Width:  800,
		Height: 600,

		DarkTheme:   true,
		SyntaxStyle: "monokai",
		FontSize:    14,
		Monospace:   true,

		Language: "python",

		Encoding:        "utf-8",
		TextExtensions:  []string{".txt"},
		DefaultFileName: "untitled.txt",

		MarginPlaceholder: 40,
		ShowLineNumbers:   false,
	}
}

// Validate reports every problem found in the defaults.
func (e *Editor) Validate() []string {
	var errors []string

	if e.Title == "" {
		errors = append(errors, "Window title must not be empty")
	}

	if e.Width <= 0 || e.Height <= 0 {
		errors = append(errors, fmt.Sprintf("Window size must be positive, got %vx%v", e.Width, e.Height))
	}

	if e.FontSize < 6 || e.FontSize > 72 {
		errors = append(errors, "Font size must be between 6 and 72")
	}

	if e.Encoding == "" {
		errors = append(errors, "Encoding must not be empty")
	}

	if len(e.TextExtensions) == 0 {
		errors = append(errors, "At least one text file extension is required")
	}

	if e.MarginPlaceholder < 0 {
		errors = append(errors, "Margin placeholder width must not be negative")
	}

	return errors
}
