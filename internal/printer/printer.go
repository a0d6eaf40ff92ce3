// Package printer formats CLI output with colour.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"zkevmsite/internal/tracker"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// Success prints a green line with a check mark.
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a yellow line.
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! %s\n", fmt.Sprintf(format, a...))
}

// Heading prints a cyan section title.
func Heading(w io.Writer, format string, a ...any) {
	cyan.Fprintf(w, "%s\n", fmt.Sprintf(format, a...))
}

// Error prints a title and explanation to stderr and returns an error for
// cobra, which is configured not to print it again.
func Error(title, explanation string) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}

// Bar renders progress as a fixed-width text bar, e.g. "[#####-----]  50%  3/6".
func Bar(p tracker.Progress, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if p.Total > 0 {
		filled = p.Completed * width / p.Total
	}
	return fmt.Sprintf("[%s%s] %3d%%  %d/%d",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		p.Percent(), p.Completed, p.Total)
}

// Status colours a status label.
func Status(s tracker.Status) string {
	switch s.Normalize() {
	case tracker.StatusComplete:
		return green.Sprint(s.Label())
	case tracker.StatusInProgress:
		return yellow.Sprint(s.Label())
	case tracker.StatusBlocked:
		return red.Sprint(s.Label())
	default:
		return faint.Sprint(s.Label())
	}
}
