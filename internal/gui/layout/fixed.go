package layout

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// FixedColumnLayout places objects side by side at fixed column widths. Every
// object gets the full row height, which is the tallest object's minimum.
type FixedColumnLayout struct {
	columnWidths []float32
	padding      float32
}

func NewFixedColumnLayout(columnWidths []float32, padding float32) *FixedColumnLayout {
	return &FixedColumnLayout{
		columnWidths: columnWidths,
		padding:      padding,
	}
}

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	x := float32(0)
	for i, obj := range objects {
		if i >= len(fcl.columnWidths) {
			break
		}

		width := fcl.columnWidths[i]
		obj.Resize(fyne.NewSize(width-fcl.padding, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for i, width := range fcl.columnWidths {
		totalWidth += width

		if i < len(objects) {
			objMin := objects[i].MinSize()
			if objMin.Height > maxHeight {
				maxHeight = objMin.Height
			}
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}

// NewVerticalGap returns an invisible object that reserves height in a box.
func NewVerticalGap(height float32) fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, height))
	return gap
}
