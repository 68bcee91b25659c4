package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vk/csvpeek/internal/config"
	"github.com/vk/csvpeek/internal/logging"
)

var fieldValueStyle = lipgloss.NewStyle().Foreground(logging.ColorSuccess)

// renderFields prints the normalized field sequence. The decorated style
// colorizes each value; the plain and json styles print a Go-quoted list.
func (a *App) renderFields(values []string) {
	if a.settings.LogStyle != config.StyleDecorated {
		fmt.Fprintf(a.outW, "%q\n", values)
		return
	}

	styled := make([]string, len(values))
	for i, v := range values {
		styled[i] = fieldValueStyle.Render(fmt.Sprintf("%q", v))
	}
	fmt.Fprintf(a.outW, "[%s]\n", strings.Join(styled, " "))
}
