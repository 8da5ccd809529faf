package outline

import "strings"

// Predicate tests a heading by level and by its Normalize'd title.
type Predicate func(level int, normalizedTitle string) bool

// AtLevel matches headings at exactly level whose title contains every term.
func AtLevel(level int, terms ...string) Predicate {
	all := AllTerms(terms...)
	return func(l int, title string) bool {
		return l == level && all(l, title)
	}
}

// AllTerms matches titles containing every term, at any level.
func AllTerms(terms ...string) Predicate {
	normalized := normalizeTerms(terms)
	return func(_ int, title string) bool {
		for _, term := range normalized {
			if !strings.Contains(title, term) {
				return false
			}
		}
		return true
	}
}

// AnyTerm matches titles containing at least one term.
func AnyTerm(terms ...string) Predicate {
	normalized := normalizeTerms(terms)
	return func(_ int, title string) bool {
		for _, term := range normalized {
			if strings.Contains(title, term) {
				return true
			}
		}
		return false
	}
}

// TitleContains matches titles containing query, ignoring case and accents.
func TitleContains(query string) Predicate {
	return AllTerms(query)
}

// AtOrAbove matches headings of level or shallower (numerically <= level).
func AtOrAbove(level int) Predicate {
	return func(l int, _ string) bool {
		return l <= level
	}
}

// And matches when both p and q match.
func (p Predicate) And(q Predicate) Predicate {
	return func(level int, title string) bool {
		return p(level, title) && q(level, title)
	}
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, Normalize(t))
	}
	return out
}
