package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/docnav/internal/outline"
)

var (
	// errorStyle for fatal errors on stderr
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// dimStyle for notices that are not errors
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// labelStyle for block labels in listings
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)

// writeRanges prints each range's text separated by a blank line.
func writeRanges(w io.Writer, doc *outline.Document, ranges []outline.Range) {
	texts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		texts = append(texts, doc.Text(r))
	}
	fmt.Fprintln(w, strings.Join(texts, "\n\n"))
}

// writeNotice prints a muted message for empty results.
func writeNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// describeMiss turns a resolution miss into a user-facing error.
func describeMiss(err error, what string) error {
	switch outline.ReasonOf(err) {
	case outline.ReasonTitleNotFound:
		return fmt.Errorf("no heading matches %q", what)
	case outline.ReasonStartMissing:
		return fmt.Errorf("start heading not found for %s", what)
	case outline.ReasonEndMissing:
		return fmt.Errorf("end heading not found for %s (use --to-end to read to the end of the document)", what)
	case outline.ReasonEndBeforeStart:
		return fmt.Errorf("end heading for %s only appears before the start heading", what)
	case outline.ReasonIndexOutOfRange:
		return fmt.Errorf("%s is out of range", what)
	default:
		return err
	}
}
