package app

import (
	"testing"

	"brew-journal/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationWiresForm(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), logger.NoOp{})
	require.NoError(t, err)
	t.Cleanup(a.window.Close)

	assert.Equal(t, AppName, a.window.Title())
	assert.Len(t, a.guiManager.Controls(), 50)
	assert.NotNil(t, a.window.Content())
	assert.NotNil(t, a.window.MainMenu())
}

func TestLifecycleShutdownOnce(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), logger.NoOp{})
	require.NoError(t, err)
	t.Cleanup(a.window.Close)

	assert.NotPanics(t, func() {
		a.lifecycle.Shutdown()
		a.lifecycle.Shutdown()
	})
}
