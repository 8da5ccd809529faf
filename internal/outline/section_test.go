package outline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSection(t *testing.T) {
	doc := storeDoc()

	tests := []struct {
		name     string
		query    string
		expected Range
	}{
		{"level 2 section", "Información general", Range{Start: 3, End: 7}},
		{"case insensitive", "información GENERAL", Range{Start: 3, End: 7}},
		{"level 3 stops at sibling", "Pasos", Range{Start: 22, End: 26}},
		{"nested headings are content", "Dataset", Range{Start: 8, End: 19}},
		{"last section runs to the end", "Pruebas", Range{Start: 52, End: 54}},
		{"first match wins", "Tabla", Range{Start: 12, End: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FindSection(doc, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestFindSectionIsNotAccentInsensitive(t *testing.T) {
	_, err := FindSection(storeDoc(), "informacion general")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ReasonTitleNotFound, ReasonOf(err))
}

func TestFindSectionNeverLeaksPastBoundary(t *testing.T) {
	doc := storeDoc()
	headings := doc.Headings()

	for _, anchor := range headings {
		r, err := FindSection(doc, anchor.Title)
		require.NoError(t, err)
		for _, h := range headings {
			if r.Contains(h.Position) && h.Position != anchor.Position {
				assert.Greater(t, h.Level, anchor.Level, "%q leaks into %q", h.Title, anchor.Title)
			}
		}
	}
}

func TestFindRange(t *testing.T) {
	doc := storeDoc()
	datasetStart := AtLevel(2, "dataset", "referenc")
	tableStart := AtLevel(3, "tabla", "clientes")
	programStart := AtLevel(2, "programa", "interact")

	t.Run("including the start heading", func(t *testing.T) {
		r, err := FindRange(doc, datasetStart, tableStart, RangeOptions{IncludeStartHeading: true})
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 7, End: 11}, r)
		assert.Equal(t, "## Dataset de referencia\n\nCuatro tablas.", doc.Text(r))
	})

	t.Run("content only", func(t *testing.T) {
		r, err := FindRange(doc, datasetStart, tableStart, RangeOptions{})
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 8, End: 11}, r)
	})

	t.Run("end heading at a shallower level", func(t *testing.T) {
		r, err := FindRange(doc, tableStart, programStart, RangeOptions{IncludeStartHeading: true, EndFallback: FallbackToEnd})
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 11, End: 19}, r)
	})

	t.Run("start missing", func(t *testing.T) {
		_, err := FindRange(doc, AtLevel(2, "inexistente"), tableStart, RangeOptions{EndFallback: FallbackToEnd})
		assert.Equal(t, ReasonStartMissing, ReasonOf(err))
	})

	t.Run("end missing fails", func(t *testing.T) {
		_, err := FindRange(doc, datasetStart, AtLevel(3, "inexistente"), RangeOptions{EndFallback: FallbackFail})
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, ReasonEndMissing, ReasonOf(err))
	})

	t.Run("end missing runs to end", func(t *testing.T) {
		r, err := FindRange(doc, datasetStart, AtLevel(3, "inexistente"), RangeOptions{EndFallback: FallbackToEnd})
		require.NoError(t, err)
		assert.Equal(t, doc.Len(), r.End)
	})

	t.Run("end only before start", func(t *testing.T) {
		_, err := FindRange(doc, AtLevel(3, "tabla", "ventas"), datasetStart, RangeOptions{})
		assert.Equal(t, ReasonEndBeforeStart, ReasonOf(err))

		r, err := FindRange(doc, AtLevel(3, "tabla", "ventas"), datasetStart, RangeOptions{IncludeStartHeading: true, EndFallback: FallbackToEnd})
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 15, End: doc.Len()}, r)
	})

	t.Run("nesting rule as end predicate", func(t *testing.T) {
		r, err := FindRange(doc, AtLevel(2, "dataset"), AtOrAbove(2), RangeOptions{IncludeStartHeading: true})
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 7, End: 19}, r)
	})
}

func TestFindNested(t *testing.T) {
	doc := storeDoc()

	r, err := FindNested(doc, TitleContains("sugerencias copilot"), true)
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 39, End: 54}, r)

	r, err = FindNested(doc, TitleContains("programa"), false)
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 20, End: 39}, r)

	_, err = FindNested(doc, TitleContains("nada"), true)
	assert.Equal(t, ReasonStartMissing, ReasonOf(err))
}

func TestFindAllSections(t *testing.T) {
	doc := storeDoc()

	t.Run("keyword variants at level 3", func(t *testing.T) {
		ranges := FindAllSections(doc, 3, AnyTerm("pseudocodigo", "diagrama"))
		assert.Equal(t, []Range{{Start: 26, End: 33}, {Start: 33, End: 39}}, ranges)
	})

	t.Run("level filter matching nothing", func(t *testing.T) {
		assert.Empty(t, FindAllSections(doc, 6, AnyTerm("pseudocodigo")))
	})

	t.Run("any level", func(t *testing.T) {
		ranges := FindAllSections(doc, 0, AnyTerm("tabla"))
		assert.Equal(t, []Range{{Start: 11, End: 15}, {Start: 15, End: 19}}, ranges)
	})

	t.Run("deterministic", func(t *testing.T) {
		pred := AnyTerm("pseudocodigo", "diagrama")
		assert.Equal(t, FindAllSections(doc, 3, pred), FindAllSections(doc, 3, pred))
	})
}

func TestPartitionSubsections(t *testing.T) {
	doc := storeDoc()

	t.Run("levels 2 and 3", func(t *testing.T) {
		parts := PartitionSubsections(doc, Range{Start: 40, End: 54})
		assert.Equal(t, []Range{{Start: 43, End: 51}, {Start: 47, End: 51}, {Start: 51, End: 54}}, parts)
	})

	t.Run("clamped to the outer range", func(t *testing.T) {
		parts := PartitionSubsections(doc, Range{Start: 8, End: 13}, 3)
		assert.Equal(t, []Range{{Start: 11, End: 13}}, parts)
	})

	t.Run("no nested headings returns the container", func(t *testing.T) {
		outer := Range{Start: 3, End: 7}
		assert.Equal(t, []Range{outer}, PartitionSubsections(doc, outer))
	})

	t.Run("explicit levels", func(t *testing.T) {
		parts := PartitionSubsections(doc, Range{Start: 40, End: 54}, 2)
		assert.Equal(t, []Range{{Start: 43, End: 51}, {Start: 51, End: 54}}, parts)
	})
}

func TestSectionAt(t *testing.T) {
	doc := storeDoc()

	r, err := SectionAt(doc, 0, true)
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: 39}, r)

	_, err = SectionAt(doc, 13, true)
	assert.Equal(t, ReasonIndexOutOfRange, ReasonOf(err))

	_, err = SectionAt(doc, -1, false)
	assert.Equal(t, ReasonIndexOutOfRange, ReasonOf(err))
}

func TestResolversOnEmptyDocument(t *testing.T) {
	doc := New("")

	_, err := FindSection(doc, "x")
	assert.Equal(t, ReasonTitleNotFound, ReasonOf(err))
	assert.Empty(t, FindAllSections(doc, 0, AnyTerm("x")))
	assert.Equal(t, []Range{{Start: 0, End: 0}}, PartitionSubsections(doc, Range{}))
}

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[2, 5)", r.String())
	assert.True(t, Range{Start: 4, End: 4}.Empty())
}

func TestEndFallbackString(t *testing.T) {
	assert.Equal(t, "fail", FallbackFail.String())
	assert.Equal(t, "to_end", FallbackToEnd.String())
}
