package gui

import (
	"strings"

	"brew-journal/internal/journal"
	formlayout "brew-journal/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// ControlWidthChars is the display width of every input, in characters.
	ControlWidthChars = 50
	SaveButtonText    = "Save Journal Entry"
)

// Bold alone: themes resolve Monospace before Bold, so combining them drops
// the bold face.
var sectionHeaderStyle = fyne.TextStyle{Bold: true}

// Control is the live input widget for one schema field.
type Control struct {
	Field journal.Field
	Entry *widget.Entry
}

func newControl(f journal.Field) *Control {
	var entry *widget.Entry
	switch f.Kind {
	case journal.MultiLine:
		entry = widget.NewMultiLineEntry()
		entry.Wrapping = fyne.TextWrapWord
		entry.SetMinRowsVisible(f.Rows)
	default:
		entry = widget.NewEntry()
	}
	return &Control{Field: f, Entry: entry}
}

func (c *Control) Text() string {
	return c.Entry.Text
}

// Controls maps field identifiers to their live controls.
type Controls map[string]*Control

// Text implements export.TextSource.
func (c Controls) Text(id string) (string, bool) {
	ctrl, ok := c[id]
	if !ok {
		return "", false
	}
	return ctrl.Text(), true
}

// Form is a rendered schema: section headers and labelled controls inside a
// vertical scroll viewport, followed by the save button.
type Form struct {
	content    *container.Scroll
	controls   Controls
	saveButton *widget.Button
	headers    []*widget.Label
}

// RenderForm builds one control per schema field. onSave runs when the save
// button is tapped.
func RenderForm(schema journal.Schema, onSave func()) *Form {
	sections := schema.Sections()
	form := &Form{
		controls: make(Controls, schema.FieldCount()),
		headers:  make([]*widget.Label, 0, len(sections)),
	}

	columns := []float32{labelColumnWidth(schema), controlColumnWidth()}
	rows := container.NewVBox()

	for _, section := range sections {
		header := widget.NewLabelWithStyle("== "+section.Title+" ==",
			fyne.TextAlignLeading, sectionHeaderStyle)
		form.headers = append(form.headers, header)

		rows.Add(formlayout.NewVerticalGap(theme.Padding() * 3))
		rows.Add(header)

		for _, f := range section.Fields {
			ctrl := newControl(f)
			form.controls[f.ID] = ctrl

			row := container.New(formlayout.NewFixedColumnLayout(columns, theme.Padding()),
				widget.NewLabel(f.Label),
				ctrl.Entry,
			)
			rows.Add(row)
		}
	}

	form.saveButton = widget.NewButton(SaveButtonText, func() {
		if onSave != nil {
			onSave()
		}
	})
	form.saveButton.Importance = widget.HighImportance

	rows.Add(formlayout.NewVerticalGap(theme.Padding() * 4))
	rows.Add(container.NewCenter(form.saveButton))
	rows.Add(formlayout.NewVerticalGap(theme.Padding() * 4))

	form.content = container.NewVScroll(container.NewPadded(rows))
	return form
}

func (f *Form) Content() fyne.CanvasObject {
	return f.content
}

func (f *Form) Controls() Controls {
	return f.controls
}

func (f *Form) SaveButton() *widget.Button {
	return f.saveButton
}

func labelColumnWidth(schema journal.Schema) float32 {
	widest := float32(0)
	for _, f := range schema.Fields() {
		w := fyne.MeasureText(f.Label, theme.TextSize(), fyne.TextStyle{}).Width
		if w > widest {
			widest = w
		}
	}
	return widest + theme.InnerPadding()*2 + theme.Padding()
}

func controlColumnWidth() float32 {
	sample := strings.Repeat("0", ControlWidthChars)
	return fyne.MeasureText(sample, theme.TextSize(), fyne.TextStyle{}).Width +
		theme.InnerPadding()*2 + theme.Padding()
}
