// Package outline extracts structure from a single markdown document held in
// memory as an ordered sequence of lines.
//
// # Overview
//
// A Document is loaded once and never mutated. Everything else is computed
// from it by position:
//
//   - Heading index: every ATX heading line as (position, level, title).
//   - Sections: half-open line ranges bounded by the nesting rule, where a
//     heading's content ends at the next heading of equal or shallower level.
//   - Paragraphs: maximal runs of non-blank, non-heading lines.
//   - Code blocks: text between triple-backtick fences.
//
// # Usage
//
//	doc, err := outline.Load("documentacion.md")
//	if err != nil {
//		return err
//	}
//	r, err := outline.FindSection(doc, "Información general")
//	if errors.Is(err, outline.ErrNotFound) {
//		// render a message and keep going
//	}
//	fmt.Println(doc.Text(r))
//
// Titles are matched two ways. FindSection uses a plain case-insensitive
// substring. Predicates built with AtLevel, AnyTerm and TitleContains see
// the Normalize form of the title, so accents do not matter.
//
// # Architecture
//
//   - document.go: loading and line access
//   - heading.go: heading index
//   - cache.go: heading index memoized by content hash
//   - normalize.go: diacritic-insensitive matching
//   - section.go, predicate.go: section resolution
//   - paragraph.go, codeblock.go: paragraph and fenced code extraction
//   - tree.go: heading tree and table of contents
package outline
