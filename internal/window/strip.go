package window

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/gopher-kontrol/internal/nanokontrol"
)

// stripView renders one channel strip
type stripView struct {
	knob   *widget.ProgressBar
	slider *widget.ProgressBar
	solo   *indicator
	mute   *indicator
	record *indicator

	content fyne.CanvasObject
}

func newStripView(index int) *stripView {
	s := &stripView{
		knob:   newValueBar(),
		slider: newValueBar(),
		solo:   newIndicator(theme.ColorNameWarning),
		mute:   newIndicator(theme.ColorNamePrimary),
		record: newIndicator(theme.ColorNameError),
	}

	buttons := container.NewGridWithColumns(3,
		withCaption(s.solo.rect, "S"),
		withCaption(s.mute.rect, "M"),
		withCaption(s.record.rect, "R"),
	)

	controls := container.NewVBox(
		widget.NewLabel("Knob"),
		s.knob,
		widget.NewLabel("Slider"),
		s.slider,
		buttons,
	)

	s.content = container.NewBorder(nil, nil, rotatedLabel(fmt.Sprintf("CH %d", index+1)), nil, controls)
	return s
}

func newValueBar() *widget.ProgressBar {
	bar := widget.NewProgressBar()
	bar.Min = 0
	bar.Max = 127
	bar.TextFormatter = func() string {
		return fmt.Sprintf("%.0f", bar.Value)
	}
	return bar
}

func (s *stripView) render(ch nanokontrol.ChannelState) {
	if s.knob.Value != float64(ch.Knob) {
		s.knob.SetValue(float64(ch.Knob))
	}
	if s.slider.Value != float64(ch.Slider) {
		s.slider.SetValue(float64(ch.Slider))
	}
	s.solo.set(ch.Solo)
	s.mute.set(ch.Mute)
	s.record.set(ch.Record)
}
