package journal

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed brew_journal.yaml
var brewJournalDocument []byte

type documentField struct {
	Label string `yaml:"label"`
	ID    string `yaml:"id"`
	Lines *int   `yaml:"lines"`
}

type documentSection struct {
	Title  string          `yaml:"title"`
	Fields []documentField `yaml:"fields"`
}

// Parse decodes a YAML schema document. Each field takes an optional
// `lines` height; omitted or 1 means single-line.
func Parse(data []byte) (Schema, error) {
	var doc []documentSection
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Schema{}, fmt.Errorf("decode schema document: %w", err)
	}

	sections := make([]Section, 0, len(doc))
	for _, ds := range doc {
		section := Section{Title: ds.Title, Fields: make([]Field, 0, len(ds.Fields))}
		for _, df := range ds.Fields {
			field, err := df.field()
			if err != nil {
				return Schema{}, err
			}
			section.Fields = append(section.Fields, field)
		}
		sections = append(sections, section)
	}

	return New(sections...)
}

func (df documentField) field() (Field, error) {
	if df.Lines == nil {
		return Line(df.Label, df.ID), nil
	}
	if *df.Lines < 1 {
		return Field{}, fmt.Errorf("%w: field %q has %d", ErrInvalidLineCount, df.ID, *df.Lines)
	}
	return Text(df.Label, df.ID, *df.Lines), nil
}

// BrewJournal returns the built-in homebrewing journal schema.
func BrewJournal() Schema {
	schema, err := Parse(brewJournalDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded brew journal schema: %v", err))
	}
	return schema
}
