package outline

import (
	"regexp"
	"strings"
)

// Heading is an ATX heading line of a document.
type Heading struct {
	Position int    `json:"position"` // 0-based line index of the heading line
	Level    int    `json:"level"`    // number of '#' characters, 1..6
	Title    string `json:"title"`    // heading text, trimmed
}

var (
	headerPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// headerPrefixPattern is the looser test used when skipping heading lines
	// outside the index: any line opening with one to six '#'.
	headerPrefixPattern = regexp.MustCompile(`^#{1,6}`)
)

// ParseHeadings scans lines and returns every ATX heading in document order.
// Lines that do not match are ignored; empty input yields nil.
func ParseHeadings(lines []string) []Heading {
	var headings []Heading
	for i, line := range lines {
		if h, ok := parseHeading(line); ok {
			h.Position = i
			headings = append(headings, h)
		}
	}
	return headings
}

func parseHeading(line string) (Heading, bool) {
	matches := headerPattern.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
	if matches == nil {
		return Heading{}, false
	}
	title := strings.TrimSpace(matches[2])
	if title == "" {
		return Heading{}, false
	}
	return Heading{
		Level: len(matches[1]), // Number of # characters
		Title: title,
	}, true
}
