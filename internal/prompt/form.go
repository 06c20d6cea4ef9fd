package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Form is a Prompter that renders each question as a single-field huh form.
// It is meant for interactive terminals; use LineReader for pipes.
type Form struct {
	theme *huh.Theme
}

// NewForm returns a Form styled to match the named color theme.
func NewForm(themeName string) *Form {
	return &Form{theme: huhTheme(themeName)}
}

// Ask runs a one-field form. Ctrl-C is treated the same as end of input.
func (f *Form) Ask(label string) (string, error) {
	var value string

	input := huh.NewInput().
		Title(strings.TrimSpace(label)).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(f.theme).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("running prompt form: %w", err)
	}

	return value, nil
}

func huhTheme(name string) *huh.Theme {
	switch name {
	case "catppuccin-mocha":
		return huh.ThemeCatppuccin()
	case "terminal":
		return huh.ThemeBase16()
	default:
		return huh.ThemeCharm()
	}
}
