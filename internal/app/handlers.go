package app

import (
	"brew-journal/internal/export"
	"brew-journal/internal/journal"
	"brew-journal/internal/logger"

	"fyne.io/fyne/v2"
)

// DefaultFileName is suggested in the save dialog.
const DefaultFileName = "brew_journal.txt"

// Dialogs is the window surface the save flow talks to.
type Dialogs interface {
	PromptSave(fileName string, onChosen func(fyne.URIWriteCloser, error))
	ShowInfo(title, message string)
	ShowError(title string, err error)
	UpdateStatus(status string)
}

type Handlers struct {
	schema  journal.Schema
	source  export.TextSource
	dialogs Dialogs
	logger  logger.Logger
}

func NewHandlers(schema journal.Schema, source export.TextSource, dialogs Dialogs, log logger.Logger) *Handlers {
	return &Handlers{
		schema:  schema,
		source:  source,
		dialogs: dialogs,
		logger:  log,
	}
}

// HandleSave snapshots the form, asks for a destination and writes the
// journal text there. Cancelling the dialog writes nothing.
func (h *Handlers) HandleSave() {
	text := export.Format(export.Collect(h.schema, h.source))

	h.logger.Info("Handlers", "save requested", map[string]interface{}{
		"fields": h.schema.FieldCount(),
		"bytes":  len(text),
	})

	h.dialogs.PromptSave(DefaultFileName, func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if writer == nil {
			h.logger.Debug("Handlers", "save cancelled", nil)
			return
		}

		path := displayPath(writer.URI())
		n, err := export.Write(writer, text)
		if err != nil {
			h.showError("Journal Save Error", err)
			return
		}

		h.logger.Info("Handlers", "journal saved", map[string]interface{}{
			"path":  path,
			"bytes": n,
		})
		h.dialogs.UpdateStatus("Saved to " + path)
		h.dialogs.ShowInfo("Saved", "Brew journal saved to:\n"+path)
	})
}

func (h *Handlers) showError(title string, err error) {
	h.dialogs.UpdateStatus("Save failed")
	h.dialogs.ShowError(title, err)
}

func displayPath(uri fyne.URI) string {
	if uri == nil {
		return ""
	}
	if uri.Scheme() == "file" {
		return uri.Path()
	}
	return uri.String()
}
