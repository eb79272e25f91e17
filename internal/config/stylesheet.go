package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Class is one named style rule. Colors are anything lipgloss.Color accepts.
type Class struct {
	Foreground    string `toml:"foreground"`
	Background    string `toml:"background"`
	Bold          bool   `toml:"bold"`
	Italic        bool   `toml:"italic"`
	Faint         bool   `toml:"faint"`
	Strikethrough bool   `toml:"strikethrough"`
	Underline     bool   `toml:"underline"`
}

type Stylesheet struct {
	PriorityHigh   Class `toml:"priority-high"`
	PriorityMedium Class `toml:"priority-medium"`
	PriorityLow    Class `toml:"priority-low"`
	Completed      Class `toml:"completed"`
	Description    Class `toml:"task-desc"`
	FilterBar      Class `toml:"filter-bar"`
	FilterActive   Class `toml:"filter-active"`
	Selected       Class `toml:"selected"`
	Button         Class `toml:"btn-icon"`
	ButtonClear    Class `toml:"btn-clear"`
	Dialog         Class `toml:"dialog"`
	Status         Class `toml:"status"`
}

// LoadStylesheet overlays the file at path on the built-in stylesheet.
// An empty path means built-ins only; a missing file is an error.
func LoadStylesheet(path string) (Stylesheet, error) {
	sheet := DefaultStylesheet()
	if path == "" {
		return sheet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return sheet, fmt.Errorf("read stylesheet: %w", err)
	}
	if err := toml.Unmarshal(data, &sheet); err != nil {
		return sheet, fmt.Errorf("parse stylesheet %s: %w", path, err)
	}
	return sheet, nil
}

func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		PriorityHigh:   Class{Foreground: "#FF5F5F", Bold: true},
		PriorityMedium: Class{Foreground: "#FFAF00"},
		PriorityLow:    Class{Foreground: "#5FAF5F"},
		Completed:      Class{Foreground: "#808080", Strikethrough: true},
		Description:    Class{Foreground: "#A8A8A8", Italic: true},
		FilterBar:      Class{Faint: true},
		FilterActive:   Class{Foreground: "#5FAFFF", Bold: true},
		Selected:       Class{Foreground: "#5FAFFF", Bold: true},
		Button:         Class{Foreground: "#D0D0D0"},
		ButtonClear:    Class{Foreground: "#FF8787"},
		Dialog:         Class{Foreground: "#5FAFFF"},
		Status:         Class{Faint: true},
	}
}
