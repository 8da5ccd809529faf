package navigator

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/itsmostafa/docnav/internal/config"
	"github.com/itsmostafa/docnav/internal/logging"
	"github.com/itsmostafa/docnav/internal/outline"
)

// Session is the state shared by every query of a navigation session. The
// document is immutable, so handlers never coordinate.
type Session struct {
	Doc    *outline.Document
	Topics config.Topics
	Logger *slog.Logger

	// Loader re-reads Doc from disk in Refresh. Nil disables reloading.
	Loader *outline.Loader
}

// Refresh reloads the document from its path through Loader. Unchanged
// content reuses the cached heading index. When the file can no longer be
// read the current document is kept.
func (s *Session) Refresh() {
	if s.Loader == nil || s.Doc == nil || s.Doc.Path == "" {
		return
	}

	doc, err := s.Loader.Load(s.Doc.Path)
	if err != nil {
		s.logger().Warn("document reload failed, keeping previous version", "path", s.Doc.Path, "error", err)
		return
	}

	stats := s.Loader.Stats()
	s.logger().Debug("document reloaded",
		"path", doc.Path,
		"hash", doc.Hash,
		"cache_hit", doc.CacheHit(),
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
		"cache_size", stats.Size,
	)
	s.Doc = doc
}

// Result is what a handler produced: section text, or a notice when the
// document does not contain what was asked for. Both empty means there is
// nothing to show.
type Result struct {
	Text   string
	Notice string
}

// Found reports whether r carries section text rather than a notice.
func (r Result) Found() bool {
	return r.Notice == ""
}

func notice(format string, args ...any) Result {
	return Result{Notice: fmt.Sprintf(format, args...)}
}

// Resolve runs the handler for cmd. Dataset, which has a submenu, resolves
// to its summary.
func (s *Session) Resolve(cmd Command) Result {
	switch cmd {
	case CmdGeneral:
		return s.General()
	case CmdDataset:
		return s.DatasetSummary()
	case CmdSteps:
		return s.Steps()
	case CmdDiagrams:
		return s.Diagrams()
	case CmdSuggestions:
		return s.Suggestions()
	case CmdOutline:
		return s.Outline()
	default:
		return notice("Option %s has nothing to show.", cmd)
	}
}

// General shows the content of the general information section.
func (s *Session) General() Result {
	return s.titledSection(s.Topics.General)
}

// Steps shows the program steps section. An empty section shows nothing.
func (s *Session) Steps() Result {
	return s.titledSection(s.Topics.Steps)
}

func (s *Session) titledSection(query string) Result {
	r, err := outline.FindSection(s.Doc, query)
	if err != nil {
		s.miss("section", query, err)
		return notice("Section %q was not found in the document.", query)
	}
	if r.Empty() {
		s.logger().Debug("section has no content", "query", query, "range", r.String())
		return notice("Section %q was not found in the document.", query)
	}
	return Result{Text: s.Doc.Text(r)}
}

// DatasetSummary shows the dataset heading and its introduction, up to the
// table subsection. Both headings are required.
func (s *Session) DatasetSummary() Result {
	t := s.Topics.Dataset
	r, err := outline.FindRange(s.Doc, match(t.Section), match(t.Table), outline.RangeOptions{
		IncludeStartHeading: true,
		EndFallback:         outline.FallbackFail,
	})
	if err != nil {
		s.miss("dataset summary", t.Section.Label, err)
		if outline.ReasonOf(err) == outline.ReasonStartMissing {
			return notice("Section %q was not found in the document.", t.Section.Label)
		}
		return notice("Subsection %q was not found after %q.", t.Table.Label, t.Section.Label)
	}
	return Result{Text: s.Doc.Text(r)}
}

// DatasetDetail shows the table subsection and everything after it up to the
// program section, or to the end of the document when that is missing.
func (s *Session) DatasetDetail() Result {
	t := s.Topics.Dataset
	r, err := outline.FindRange(s.Doc, match(t.Table), match(t.Program), outline.RangeOptions{
		IncludeStartHeading: true,
		EndFallback:         outline.FallbackToEnd,
	})
	if err != nil {
		s.miss("dataset detail", t.Table.Label, err)
		return notice("Subsection %q was not found in the document.", t.Table.Label)
	}
	return Result{Text: s.Doc.Text(r)}
}

// Diagrams shows every heading at the configured level whose title names
// one of the diagram terms, each with its own nested content.
func (s *Session) Diagrams() Result {
	if len(s.Doc.Headings()) == 0 {
		return notice("No headings were found in the document.")
	}

	d := s.Topics.Diagrams
	ranges := outline.FindAllSections(s.Doc, d.Level, outline.AnyTerm(d.Terms...))
	if len(ranges) == 0 {
		s.logger().Debug("no matching sections", "topic", "diagrams", "terms", d.Terms)
		return notice("No %q sections were found in the document.", d.Label)
	}
	return Result{Text: s.join(ranges)}
}

// Suggestions shows the level-2 and level-3 subsections of the suggestions
// section, or the whole section when it has none.
func (s *Session) Suggestions() Result {
	query := s.Topics.Suggestions
	section, err := outline.FindNested(s.Doc, outline.TitleContains(query), true)
	if err != nil {
		s.miss("suggestions", query, err)
		return notice("Section %q was not found.", query)
	}

	content := outline.Range{Start: section.Start + 1, End: section.End}
	if !s.hasHeadingAt(content, 2, 3) {
		if text := s.Doc.Text(section); text != "" {
			return Result{Text: text}
		}
		return notice("There is no content under %q.", query)
	}
	return Result{Text: s.join(outline.PartitionSubsections(s.Doc, content, 2, 3))}
}

// Outline shows the document's table of contents.
func (s *Session) Outline() Result {
	tree := outline.BuildTree(s.Doc.Headings())
	if len(tree) == 0 {
		return notice("No headings were found in the document.")
	}
	return Result{Text: strings.TrimRight(outline.FormatTOC(tree, 0), "\n")}
}

func (s *Session) join(ranges []outline.Range) string {
	texts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		texts = append(texts, s.Doc.Text(r))
	}
	return strings.Join(texts, "\n\n")
}

// hasHeadingAt reports whether r holds a heading at one of levels.
func (s *Session) hasHeadingAt(r outline.Range, levels ...int) bool {
	for _, h := range s.Doc.Headings() {
		if !r.Contains(h.Position) {
			continue
		}
		if slices.Contains(levels, h.Level) {
			return true
		}
	}
	return false
}

func (s *Session) miss(topic, query string, err error) {
	s.logger().Debug("query not resolved", "topic", topic, "query", query, "reason", outline.ReasonOf(err))
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

func match(m config.HeadingMatch) outline.Predicate {
	return outline.AtLevel(m.Level, m.Terms...)
}
