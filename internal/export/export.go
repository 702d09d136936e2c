// Package export turns the current journal form values into the flat text
// document written on save.
package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brew-journal/internal/journal"
)

// Entry is the current content of one form control.
type Entry struct {
	ID   string
	Text string
}

// Value returns the entry text with surrounding whitespace removed. For
// multi-line controls this also drops trailing newlines; interior blank
// lines are kept.
func (e Entry) Value() string {
	return strings.TrimSpace(e.Text)
}

// TextSource reads the current text of the control registered for id.
type TextSource interface {
	Text(id string) (string, bool)
}

// Collect reads one entry per schema field in declaration order. Fields with
// no registered control export an empty value.
func Collect(schema journal.Schema, src TextSource) []Entry {
	fields := schema.Fields()
	entries := make([]Entry, 0, len(fields))
	for _, f := range fields {
		text, _ := src.Text(f.ID)
		entries = append(entries, Entry{ID: f.ID, Text: text})
	}
	return entries
}

// Heading derives the human readable block header from a field identifier:
// underscores become spaces and every word is title cased.
func Heading(id string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(id, "_", " "))
}

// Format renders entries as consecutive blocks of
//
//	<Heading>:
//	<value>
//	<blank line>
//
// in the order given.
func Format(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s:\n%s\n\n", Heading(e.ID), e.Value())
	}
	return b.String()
}

// Write stores text to w and closes it. A close failure is reported when the
// write itself succeeded.
func Write(w io.WriteCloser, text string) (int, error) {
	n, err := io.WriteString(w, text)
	closeErr := w.Close()
	if err != nil {
		return n, fmt.Errorf("write journal entry: %w", err)
	}
	if closeErr != nil {
		return n, fmt.Errorf("close journal entry: %w", closeErr)
	}
	return n, nil
}
