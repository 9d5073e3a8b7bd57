package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for CLI-surface text (version output, errors). The rendered
// listing itself carries only the escapes ls produced and is never styled
// here.
var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}
