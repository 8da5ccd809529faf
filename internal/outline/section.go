package outline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is a half-open line range [Start, End) over a Document.
type Range struct {
	Start int
	End   int
}

// Len returns the number of lines in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r covers no lines.
func (r Range) Empty() bool {
	return r.Len() == 0
}

// Contains reports whether line i lies in r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// EndFallback selects what FindRange does when no end heading follows the
// start heading.
type EndFallback int

const (
	// FallbackFail reports ReasonEndMissing or ReasonEndBeforeStart.
	FallbackFail EndFallback = iota
	// FallbackToEnd extends the range to the end of the document.
	FallbackToEnd
)

func (f EndFallback) String() string {
	switch f {
	case FallbackFail:
		return "fail"
	case FallbackToEnd:
		return "to_end"
	default:
		return "EndFallback(" + strconv.Itoa(int(f)) + ")"
	}
}

// RangeOptions controls FindRange boundaries.
type RangeOptions struct {
	// IncludeStartHeading starts the range at the start heading's own line
	// instead of the line after it.
	IncludeStartHeading bool
	EndFallback         EndFallback
}

// FindSection returns the content of the first heading whose title contains
// query, case-insensitively. The heading line itself is excluded and the
// range stops at the next heading of equal or shallower level.
func FindSection(doc *Document, query string) (Range, error) {
	q := strings.ToLower(query)
	for i, h := range doc.headings {
		if strings.Contains(strings.ToLower(h.Title), q) {
			return Range{Start: h.Position + 1, End: nestingEnd(doc.headings, i, doc.Len())}, nil
		}
	}
	return Range{}, notFound(ReasonTitleNotFound, query)
}

// FindRange resolves a range whose start and end headings are picked by
// separate predicates. The end is the first heading after the start heading
// that satisfies end; when there is none, opts.EndFallback decides between
// failing and running to the end of the document.
func FindRange(doc *Document, start, end Predicate, opts RangeOptions) (Range, error) {
	si := firstMatch(doc.headings, 0, start)
	if si < 0 {
		return Range{}, notFound(ReasonStartMissing, "")
	}

	r := Range{Start: contentStart(doc.headings[si], opts.IncludeStartHeading), End: doc.Len()}

	if ei := firstMatch(doc.headings, si+1, end); ei >= 0 {
		r.End = doc.headings[ei].Position
		return r, nil
	}

	if opts.EndFallback == FallbackToEnd {
		return r, nil
	}
	// Distinguish an end heading that exists only before the start.
	if firstMatch(doc.headings[:si+1], 0, end) >= 0 {
		return Range{}, notFound(ReasonEndBeforeStart, "")
	}
	return Range{}, notFound(ReasonEndMissing, "")
}

// FindNested resolves the first heading matching start together with all of
// its subsections, ending at the next heading of equal or shallower level.
func FindNested(doc *Document, start Predicate, includeHeading bool) (Range, error) {
	si := firstMatch(doc.headings, 0, start)
	if si < 0 {
		return Range{}, notFound(ReasonStartMissing, "")
	}
	return Range{
		Start: contentStart(doc.headings[si], includeHeading),
		End:   nestingEnd(doc.headings, si, doc.Len()),
	}, nil
}

// FindAllSections resolves every heading at level whose title matches pred,
// each with its heading line and nested content. Level 0 matches any level.
// Results follow document order; no match yields an empty slice.
func FindAllSections(doc *Document, level int, pred Predicate) []Range {
	var ranges []Range
	for i, h := range doc.headings {
		if level != 0 && h.Level != level {
			continue
		}
		if !pred(h.Level, Normalize(h.Title)) {
			continue
		}
		ranges = append(ranges, Range{Start: h.Position, End: nestingEnd(doc.headings, i, doc.Len())})
	}
	return ranges
}

// PartitionSubsections splits outer into one range per heading at one of
// levels (2 and 3 when none are given) positioned inside outer. Each range
// starts at its heading and runs to the next heading of equal or shallower
// level, never past outer.End. With no such headings the result is outer
// itself, meaning the container should be shown as-is.
func PartitionSubsections(doc *Document, outer Range, levels ...int) []Range {
	if len(levels) == 0 {
		levels = []int{2, 3}
	}
	wanted := make(map[int]bool, len(levels))
	for _, l := range levels {
		wanted[l] = true
	}

	var parts []Range
	for i := headingAtOrAfter(doc.headings, outer.Start); i < len(doc.headings); i++ {
		h := doc.headings[i]
		if h.Position >= outer.End {
			break
		}
		if !wanted[h.Level] {
			continue
		}
		parts = append(parts, Range{Start: h.Position, End: nestingEnd(doc.headings, i, outer.End)})
	}

	if len(parts) == 0 {
		return []Range{outer}
	}
	return parts
}

// SectionAt resolves the heading at index in the heading index, with its
// nested content.
func SectionAt(doc *Document, index int, includeHeading bool) (Range, error) {
	if index < 0 || index >= len(doc.headings) {
		return Range{}, notFound(ReasonIndexOutOfRange, strconv.Itoa(index))
	}
	return Range{
		Start: contentStart(doc.headings[index], includeHeading),
		End:   nestingEnd(doc.headings, index, doc.Len()),
	}, nil
}

func contentStart(h Heading, includeHeading bool) int {
	if includeHeading {
		return h.Position
	}
	return h.Position + 1
}

// firstMatch returns the index of the first heading from index from on that
// satisfies pred, or -1.
func firstMatch(headings []Heading, from int, pred Predicate) int {
	for i := from; i < len(headings); i++ {
		if pred(headings[i].Level, Normalize(headings[i].Title)) {
			return i
		}
	}
	return -1
}

// nestingEnd returns the position of the first heading after headings[i]
// whose level is at or above headings[i].Level, or limit when none comes
// before limit.
func nestingEnd(headings []Heading, i, limit int) int {
	level := headings[i].Level
	for j := i + 1; j < len(headings); j++ {
		if headings[j].Position >= limit {
			break
		}
		if headings[j].Level <= level {
			return headings[j].Position
		}
	}
	return limit
}

// headingAtOrAfter returns the index of the first heading positioned at or
// after pos. Positions are strictly increasing, so a binary search applies.
func headingAtOrAfter(headings []Heading, pos int) int {
	return sort.Search(len(headings), func(i int) bool {
		return headings[i].Position >= pos
	})
}
