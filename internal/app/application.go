package app

import (
	"brew-journal/internal/gui"
	"brew-journal/internal/journal"
	"brew-journal/internal/logger"
	"brew-journal/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Beer Brewing Journal"
	AppID        = "com.homebrew.brewjournal"
	AppVersion   = "1.0.0"
	WindowWidth  = 820
	WindowHeight = 900
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication() (*Application, error) {
	return newApplication(app.NewWithID(AppID), logger.New(logger.ConfigFromEnv()))
}

func newApplication(fyneApp fyne.App, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	schema := journal.BrewJournal()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"sections": schema.SectionCount(),
		"fields":   schema.FieldCount(),
	})

	guiManager := gui.NewManager(window, schema, log)
	handlers := NewHandlers(schema, guiManager.Controls(), guiManager, log)
	guiManager.SetSaveHandler(handlers.HandleSave)

	shutdownManager := shutdown.NewManager(log)
	lifecycle := NewLifecycle(guiManager, log)

	shutdownManager.Register(lifecycle)
	shutdownManager.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	window.SetContent(guiManager.GetMainContainer())

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		handlers:   handlers,
		lifecycle:  lifecycle,
		shutdown:   shutdownManager,
		logger:     log,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks in the fyne event loop until the window is
// closed or a termination signal arrives.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen()
	defer a.shutdown.Stop()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
