package outline

import (
	"strings"
	"unicode"
)

// SectionStats sizes one heading's section, nested subsections included.
type SectionStats struct {
	Heading
	Lines int `json:"lines"`
	Words int `json:"words"`
}

// Measure returns size statistics for every heading in document order.
func Measure(doc *Document) []SectionStats {
	stats := make([]SectionStats, 0, len(doc.headings))
	for i, h := range doc.headings {
		r := Range{Start: h.Position, End: nestingEnd(doc.headings, i, doc.Len())}
		stats = append(stats, SectionStats{
			Heading: h,
			Lines:   r.Len(),
			Words:   CountWords(doc.Text(r)),
		})
	}
	return stats
}

// CountWords counts whitespace-separated words that contain at least one
// letter or digit. Markdown markers such as "##" or "-" are not words.
func CountWords(text string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		if strings.IndexFunc(field, isWordRune) >= 0 {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
