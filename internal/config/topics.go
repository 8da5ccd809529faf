package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HeadingMatch selects a heading by level and by terms that must all appear
// in its title, ignoring case and accents.
type HeadingMatch struct {
	Label string   `yaml:"label"`
	Level int      `yaml:"level"`
	Terms []string `yaml:"terms"`
}

// DatasetTopic drives the two-part dataset submenu: the summary runs from
// Section up to Table, the detail from Table up to Program.
type DatasetTopic struct {
	Label   string       `yaml:"label"`
	Section HeadingMatch `yaml:"section"`
	Table   HeadingMatch `yaml:"table"`
	Program HeadingMatch `yaml:"program"`
}

// Topics maps each menu entry to the headings it shows.
type Topics struct {
	Title string `yaml:"title"`

	// Title substrings resolved with a plain case-insensitive match
	General     string `yaml:"general"`
	Steps       string `yaml:"steps"`
	Suggestions string `yaml:"suggestions"`

	Dataset DatasetTopic `yaml:"dataset"`

	// Every heading at Level whose title has any of Terms
	Diagrams HeadingMatch `yaml:"diagrams"`
}

// DefaultTopics matches the headings of the project documentation the
// navigator was written for.
func DefaultTopics() Topics {
	return Topics{
		Title:       "Tienda Aurelion",
		General:     "Información general",
		Steps:       "Pasos",
		Suggestions: "Sugerencias Copilot",
		Dataset: DatasetTopic{
			Label:   "Dataset de referencia",
			Section: HeadingMatch{Label: "Dataset de referencia", Level: 2, Terms: []string{"dataset", "referenc"}},
			Table:   HeadingMatch{Label: "Tabla clientes", Level: 3, Terms: []string{"tabla", "clientes"}},
			Program: HeadingMatch{Label: "Programa Interactivo", Level: 2, Terms: []string{"programa", "interact"}},
		},
		Diagrams: HeadingMatch{Label: "Pseudocódigo y diagrama", Level: 3, Terms: []string{"pseudocodigo", "diagrama"}},
	}
}

// LoadTopics overlays the YAML file at path on DefaultTopics. Keys missing
// from the file keep their defaults. An empty path returns the defaults.
func LoadTopics(path string) (Topics, error) {
	topics := DefaultTopics()
	if path == "" {
		return topics, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Topics{}, fmt.Errorf("failed to read topics file: %w", err)
	}
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return Topics{}, fmt.Errorf("failed to parse topics file %s: %w", path, err)
	}
	if err := topics.Validate(); err != nil {
		return Topics{}, fmt.Errorf("invalid topics file %s: %w", path, err)
	}
	return topics, nil
}

// Validate checks that every topic can be resolved against a document.
func (t Topics) Validate() error {
	for name, query := range map[string]string{
		"general":     t.General,
		"steps":       t.Steps,
		"suggestions": t.Suggestions,
	} {
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("%s: title query is empty", name)
		}
	}
	for name, m := range map[string]HeadingMatch{
		"dataset.section": t.Dataset.Section,
		"dataset.table":   t.Dataset.Table,
		"dataset.program": t.Dataset.Program,
		"diagrams":        t.Diagrams,
	} {
		if err := m.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (m HeadingMatch) validate() error {
	if m.Level < 1 || m.Level > 6 {
		return fmt.Errorf("level must be between 1 and 6, got %d", m.Level)
	}
	if len(m.Terms) == 0 {
		return fmt.Errorf("at least one term is required")
	}
	return nil
}
