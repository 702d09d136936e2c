// Package journal holds the brew journal form schema: ordered sections of
// field descriptors, immutable once built.
package journal

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyIdentifier     = errors.New("field identifier is empty")
	ErrDuplicateIdentifier = errors.New("duplicate field identifier")
	ErrInvalidLineCount    = errors.New("line count must be at least 1")
)

// Kind is the input shape of a field.
type Kind uint8

const (
	SingleLine Kind = iota
	MultiLine
)

func (k Kind) String() string {
	switch k {
	case SingleLine:
		return "single-line"
	case MultiLine:
		return "multi-line"
	default:
		return "unknown"
	}
}

// Field describes one journal input. Rows is only meaningful for MultiLine.
type Field struct {
	Label string
	ID    string
	Kind  Kind
	Rows  int
}

// Line creates a single-line field.
func Line(label, id string) Field {
	return Field{Label: label, ID: id, Kind: SingleLine, Rows: 1}
}

// Text creates a multi-line field showing rows visible lines. A row count of
// one collapses to a single-line field.
func Text(label, id string, rows int) Field {
	if rows == 1 {
		return Line(label, id)
	}
	return Field{Label: label, ID: id, Kind: MultiLine, Rows: rows}
}

// LineCount is the visible height of the field's control.
func (f Field) LineCount() int {
	if f.Kind == SingleLine {
		return 1
	}
	return f.Rows
}

type Section struct {
	Title  string
	Fields []Field
}

// Schema is an ordered list of sections. Use New to obtain a validated copy.
type Schema struct {
	sections []Section
}

// New validates sections and returns a schema owning a deep copy of them.
func New(sections ...Section) (Schema, error) {
	owned := make([]Section, len(sections))
	for i, s := range sections {
		owned[i] = Section{Title: s.Title, Fields: append([]Field(nil), s.Fields...)}
	}

	schema := Schema{sections: owned}
	if err := schema.Validate(); err != nil {
		return Schema{}, err
	}
	return schema, nil
}

// Validate checks identifier uniqueness and line counts across all sections.
func (s Schema) Validate() error {
	seen := make(map[string]string, s.FieldCount())
	for _, section := range s.sections {
		for _, f := range section.Fields {
			if f.ID == "" {
				return fmt.Errorf("%w: field %q in section %q", ErrEmptyIdentifier, f.Label, section.Title)
			}
			if prev, ok := seen[f.ID]; ok {
				return fmt.Errorf("%w: %q in section %q, first declared in %q",
					ErrDuplicateIdentifier, f.ID, section.Title, prev)
			}
			seen[f.ID] = section.Title

			if f.Kind == MultiLine && f.Rows < 1 {
				return fmt.Errorf("%w: field %q has %d", ErrInvalidLineCount, f.ID, f.Rows)
			}
		}
	}
	return nil
}

// Sections returns a copy of the schema's sections in declaration order.
func (s Schema) Sections() []Section {
	out := make([]Section, len(s.sections))
	for i, section := range s.sections {
		out[i] = Section{Title: section.Title, Fields: append([]Field(nil), section.Fields...)}
	}
	return out
}

// Fields flattens all sections into declaration order.
func (s Schema) Fields() []Field {
	out := make([]Field, 0, s.FieldCount())
	for _, section := range s.sections {
		out = append(out, section.Fields...)
	}
	return out
}

func (s Schema) FieldCount() int {
	n := 0
	for _, section := range s.sections {
		n += len(section.Fields)
	}
	return n
}

func (s Schema) SectionCount() int {
	return len(s.sections)
}
