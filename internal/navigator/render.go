package navigator

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted hints
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// keyStyle for menu option keys
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// errorStyle for not-found notices and invalid input
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// headerBoxStyle for the menu header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	// boxStyle for notices
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)
)

// clearSequence moves the cursor home and erases the screen.
const clearSequence = "\x1b[H\x1b[2J"

type menuEntry struct {
	key   string
	label string
}

// FormatMenu renders a titled list of options.
func FormatMenu(w io.Writer, title string, entries []menuEntry) {
	fmt.Fprintln(w, headerBoxStyle.Render(titleStyle.Render(title)))
	fmt.Fprintln(w)
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", keyStyle.Render(e.key+"."), e.label)
	}
	fmt.Fprintln(w)
}

// FormatResult renders section text, or a boxed notice when r is a miss.
func FormatResult(w io.Writer, r Result) {
	if !r.Found() {
		fmt.Fprintln(w, boxStyle.Render(errorStyle.Render(r.Notice)))
		return
	}
	fmt.Fprintf(w, "\n%s\n\n", r.Text)
}

// FormatHint renders a muted one-line message.
func FormatHint(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// IsTerminal reports whether w is a terminal, so escape sequences that
// clear the screen are only written to one.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
