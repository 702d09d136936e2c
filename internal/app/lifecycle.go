package app

import (
	"sync"

	"brew-journal/internal/gui"
	"brew-journal/internal/logger"
)

// Lifecycle tears down the window components once, whether the window was
// closed or the process was signalled.
type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.guiManager != nil {
			l.guiManager.Shutdown()
			l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
