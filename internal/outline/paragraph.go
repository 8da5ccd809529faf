package outline

import (
	"strconv"
	"strings"
)

// AllParagraphs returns the paragraphs of lines in order. Heading lines are
// skipped entirely; blank lines separate paragraphs.
func AllParagraphs(lines []string) []string {
	var paragraphs []string
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if p := strings.TrimSpace(strings.Join(buf, "\n")); p != "" {
			paragraphs = append(paragraphs, p)
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		if headerPrefixPattern.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return paragraphs
}

// ParagraphAt returns paragraphs[index], or a ReasonIndexOutOfRange miss.
func ParagraphAt(paragraphs []string, index int) (string, error) {
	if index < 0 || index >= len(paragraphs) {
		return "", notFound(ReasonIndexOutOfRange, strconv.Itoa(index))
	}
	return paragraphs[index], nil
}
