package outline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\uFEFF"

// Document is a markdown document held as an ordered, immutable sequence of
// lines together with its heading index.
type Document struct {
	Path string // source path, empty for in-memory documents
	Hash string // BLAKE3 digest of the split lines rejoined with "\n"

	lines      []string
	headings   []Heading
	paragraphs []string
	cacheHit   bool
}

// Loader builds documents using a heading index cache.
type Loader struct {
	Cache *IndexCache
}

// Stats reports the hit and miss counts of the loader's index cache.
func (l *Loader) Stats() CacheStats {
	return l.cache().Stats()
}

func (l *Loader) cache() *IndexCache {
	if l.Cache == nil {
		return defaultCache
	}
	return l.Cache
}

// Load reads the markdown file at path using the default index cache.
func Load(path string) (*Document, error) {
	return (&Loader{}).Load(path)
}

// Load reads the file at path as UTF-8 text. Any failure wraps ErrIOFailure.
func (l *Loader) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIOFailure, path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s: content is not valid UTF-8", ErrIOFailure, path)
	}

	doc := l.build(string(content))
	if abs, err := filepath.Abs(path); err == nil {
		doc.Path = abs
	} else {
		doc.Path = path
	}
	return doc, nil
}

// New builds a document from in-memory text using the default index cache.
func New(text string) *Document {
	return (&Loader{}).build(text)
}

// NewFromLines builds a document from already split lines using the default
// index cache. The slice is copied.
func NewFromLines(lines []string) *Document {
	owned := make([]string, len(lines))
	copy(owned, lines)
	return (&Loader{}).fromLines(owned)
}

func (l *Loader) build(text string) *Document {
	text = strings.TrimPrefix(text, utf8BOM)
	return l.fromLines(splitLines(text))
}

func (l *Loader) fromLines(lines []string) *Document {
	hash := ContentHash([]byte(strings.Join(lines, "\n")))
	headings, hit := l.cache().Headings(hash, lines)

	return &Document{
		Hash:       hash,
		lines:      lines,
		headings:   headings,
		paragraphs: AllParagraphs(lines),
		cacheHit:   hit,
	}
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not add
// an empty line, and empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i. It panics if i is out of range, like a slice index.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Headings returns a copy of the heading index.
func (d *Document) Headings() []Heading {
	out := make([]Heading, len(d.headings))
	copy(out, d.headings)
	return out
}

// Paragraphs returns a copy of the document's paragraphs.
func (d *Document) Paragraphs() []string {
	out := make([]string, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// CacheHit reports whether the heading index came from the cache.
func (d *Document) CacheHit() bool {
	return d.cacheHit
}

// Slice returns the lines in r, clamped to the document. The result is a copy.
func (d *Document) Slice(r Range) []string {
	start := min(max(r.Start, 0), len(d.lines))
	end := min(max(r.End, start), len(d.lines))
	out := make([]string, end-start)
	copy(out, d.lines[start:end])
	return out
}

// Text returns the lines in r joined by newlines and trimmed.
func (d *Document) Text(r Range) string {
	return strings.TrimSpace(strings.Join(d.Slice(r), "\n"))
}

// Title returns the first level-1 heading title, or the file name without
// extension when there is none.
func (d *Document) Title() string {
	for _, h := range d.headings {
		if h.Level == 1 {
			return h.Title
		}
	}
	if d.Path == "" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
}
