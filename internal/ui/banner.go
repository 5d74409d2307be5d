// Package ui formats the build banners printed to the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#10b981")
	errorColor   = lipgloss.Color("#ef4444")
	mutedColor   = lipgloss.Color("#94a3b8")

	ruleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

const ruleWidth = 60

func rule() string {
	return ruleStyle.Render(strings.Repeat("=", ruleWidth))
}

// Start prints the opening banner.
func Start(w io.Writer) {
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, titleStyle.Render("Starting static site generation..."))
	fmt.Fprintln(w, rule())
}

// Success prints the closing banner with the elapsed time.
func Success(w io.Writer, outputDir string, d time.Duration) {
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ Build complete in %.2fs!", d.Seconds())))
	fmt.Fprintln(w, rule())
	fmt.Fprintf(w, "Output directory: %s\n", outputDir)
}

// Failure prints the failure banner and the error.
func Failure(w io.Writer, err error) {
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, errorStyle.Render("✗ Build failed!"))
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, err)
}
