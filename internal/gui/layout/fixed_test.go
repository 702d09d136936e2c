package layout

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func TestFixedColumnLayout(t *testing.T) {
	label := canvas.NewRectangle(color.Transparent)
	label.SetMinSize(fyne.NewSize(40, 20))
	entry := canvas.NewRectangle(color.Transparent)
	entry.SetMinSize(fyne.NewSize(60, 90))

	l := NewFixedColumnLayout([]float32{200, 400}, 4)
	objects := []fyne.CanvasObject{label, entry}

	assert.Equal(t, fyne.NewSize(600, 90), l.MinSize(objects))

	l.Layout(objects, fyne.NewSize(600, 90))
	assert.Equal(t, fyne.NewPos(0, 0), label.Position())
	assert.Equal(t, fyne.NewSize(196, 90), label.Size())
	assert.Equal(t, fyne.NewPos(200, 0), entry.Position())
	assert.Equal(t, fyne.NewSize(396, 90), entry.Size())
}

func TestVerticalGap(t *testing.T) {
	gap := NewVerticalGap(15)
	assert.Equal(t, fyne.NewSize(0, 15), gap.MinSize())
}
