package gui

import (
	"errors"
	"testing"

	"brew-journal/internal/journal"
	"brew-journal/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)

	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	m := NewManager(w, journal.BrewJournal(), logger.NoOp{})
	w.SetContent(m.GetMainContainer())
	return m, w
}

func TestManagerWiresSaveHandler(t *testing.T) {
	m, w := newTestManager(t)

	calls := 0
	m.SetSaveHandler(func() { calls++ })

	test.Tap(m.form.SaveButton())
	assert.Equal(t, 1, calls)

	menu := w.MainMenu()
	require.NotNil(t, menu)
	require.NotEmpty(t, menu.Items)
	saveItem := menu.Items[0].Items[0]
	assert.Equal(t, saveShortcut(), saveItem.Shortcut)
	saveItem.Action()
	assert.Equal(t, 2, calls)
}

func TestManagerWithoutHandlerIgnoresSave(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NotPanics(t, func() { test.Tap(m.form.SaveButton()) })
}

func TestManagerStatusAndDialogs(t *testing.T) {
	m, w := newTestManager(t)

	m.UpdateStatus("Saved to /tmp/out.txt")
	assert.Equal(t, "Saved to /tmp/out.txt", m.statusBar.Status())

	m.ShowError("File Save Error", errors.New("permission denied"))
	assert.Len(t, w.Canvas().Overlays().List(), 1)
}

func TestManagerShutdownIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	m.Shutdown()
	m.Shutdown()
	assert.True(t, m.isShutdown)
}
