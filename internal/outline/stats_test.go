package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"markers only", "## - ``` *", 0},
		{"heading", "## Instalación rápida", 2},
		{"mixed", "- Paso 1: ejecutar `go build`.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestMeasure(t *testing.T) {
	doc := New("# Root\n\none two\n\n## Child\n\nthree\n")

	stats := Measure(doc)
	require.Len(t, stats, 2)

	assert.Equal(t, "Root", stats[0].Title)
	assert.Equal(t, 7, stats[0].Lines)
	assert.Equal(t, 5, stats[0].Words)

	assert.Equal(t, "Child", stats[1].Title)
	assert.Equal(t, 3, stats[1].Lines)
	assert.Equal(t, 2, stats[1].Words)
}

func TestMeasureNoHeadings(t *testing.T) {
	assert.Empty(t, Measure(New("plain text only")))
}
