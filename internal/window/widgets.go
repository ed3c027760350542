package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ============ BUTTON INDICATOR ============

// indicator mirrors one button of the controller
type indicator struct {
	rect    *canvas.Rectangle
	onColor color.Color
	on      bool
}

func newIndicator(onColor fyne.ThemeColorName) *indicator {
	rect := canvas.NewRectangle(theme.Color(theme.ColorNameDisabled))
	rect.CornerRadius = 3
	rect.SetMinSize(fyne.NewSize(22, 14))
	return &indicator{rect: rect, onColor: theme.Color(onColor)}
}

func (i *indicator) set(on bool) {
	if i.on == on {
		return
	}
	i.on = on
	if on {
		i.rect.FillColor = i.onColor
	} else {
		i.rect.FillColor = theme.Color(theme.ColorNameDisabled)
	}
	i.rect.Refresh()
}

// withCaption stacks a small caption under obj
func withCaption(obj fyne.CanvasObject, caption string) fyne.CanvasObject {
	label := widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	label.SizeName = theme.SizeNameCaptionText
	return container.NewVBox(container.NewCenter(obj), label)
}
