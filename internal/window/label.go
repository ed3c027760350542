package window

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

const labelFontSize = 12

// rotatedLabel renders text bottom-to-top so it can sit alongside a strip
func rotatedLabel(text string) *canvas.Image {
	f, err := freetype.ParseFont(theme.DefaultTextFont().Content())
	if err != nil {
		slog.Warn("window: failed to parse font", "err", err)
		return canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	}

	dpi := float64(72)
	face := truetype.NewFace(f, &truetype.Options{Size: labelFontSize, DPI: dpi})
	defer face.Close()

	textWidth := 0
	for _, r := range text {
		if adv, ok := face.GlyphAdvance(r); ok {
			textWidth += adv.Round()
		}
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()

	padding := 2
	w := textWidth + padding*2
	h := (metrics.Ascent+metrics.Descent).Ceil() + padding*2

	src := image.NewRGBA(image.Rect(0, 0, w, h))

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(labelFontSize)
	c.SetDPI(dpi)
	c.SetClip(src.Bounds())
	c.SetDst(src)
	c.SetSrc(image.NewUniform(theme.Color(theme.ColorNameForeground)))
	if _, err := c.DrawString(text, freetype.Pt(padding, padding+ascent)); err != nil {
		slog.Warn("window: failed to draw label", "text", text, "err", err)
	}

	// 90 degrees counter-clockwise: (x, y) -> (y, w-1-x)
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(x, y))
		}
	}

	img := canvas.NewImageFromImage(dst)
	img.SetMinSize(fyne.NewSize(float32(h), float32(w)))
	img.FillMode = canvas.ImageFillOriginal
	return img
}
