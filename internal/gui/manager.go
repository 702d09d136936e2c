package gui

import (
	"brew-journal/internal/gui/components"
	"brew-journal/internal/journal"
	"brew-journal/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

// Manager owns the journal window content: the rendered form, the status bar,
// the main menu and the dialogs shown on top of the window.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	form      *Form
	statusBar *components.StatusBar

	saveHandler func()
}

func NewManager(window fyne.Window, schema journal.Schema, log logger.Logger) *Manager {
	manager := &Manager{
		window:    window,
		logger:    log,
		statusBar: components.NewStatusBar(),
	}

	manager.form = RenderForm(schema, manager.onSave)
	manager.statusBar.SetFieldCount(schema.SectionCount(), schema.FieldCount())
	manager.setupMenus()

	log.Info("GUIManager", "form rendered", map[string]interface{}{
		"sections": schema.SectionCount(),
		"fields":   len(manager.form.Controls()),
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		m.form.Content(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Controls() Controls {
	return m.form.Controls()
}

func (m *Manager) SetSaveHandler(handler func()) {
	m.saveHandler = handler
}

func (m *Manager) onSave() {
	if m.saveHandler == nil {
		return
	}
	m.logger.Debug("GUIManager", "save requested", nil)
	m.saveHandler()
}

func (m *Manager) setupMenus() {
	saveItem := fyne.NewMenuItem(SaveButtonText+"...", m.onSave)
	saveItem.Shortcut = saveShortcut()

	fileMenu := fyne.NewMenu("File", saveItem)
	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func saveShortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
}

// PromptSave shows the save-file dialog restricted to text files. onChosen
// receives a nil writer and nil error when the user cancels.
func (m *Manager) PromptSave(fileName string, onChosen func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(onChosen, m.window)
	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	d.Resize(fyne.NewSize(720, 520))
	d.Show()
}

func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
