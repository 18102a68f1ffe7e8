package card

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// FillVerticalGradient fills img with a two-stop vertical blend, top at row
// zero. Each channel is interpolated independently and rounded, so the blend
// is monotonic with at most integer-rounding banding.
func FillVerticalGradient(img *image.NRGBA, top, bottom color.NRGBA) {
	b := img.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		row := color.NRGBA{
			R: lerpChannel(top.R, bottom.R, t),
			G: lerpChannel(top.G, bottom.G, t),
			B: lerpChannel(top.B, bottom.B, t),
			A: 255,
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, b.Min.Y+y, row)
		}
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Decorative accent circles blended over the gradient at low alpha.
var overlayCircles = []struct {
	cx, cy, r float64
	alpha     int
}{
	{1050, -60, 320, 22},
	{1180, 560, 250, 15},
	{-60, 440, 200, 18},
}

// DrawOverlay alpha-blends the fixed soft circles in the accent color over
// the current canvas. The result stays opaque.
func DrawOverlay(dc *gg.Context, accent color.NRGBA) {
	for _, c := range overlayCircles {
		dc.SetRGBA255(int(accent.R), int(accent.G), int(accent.B), c.alpha)
		dc.DrawCircle(c.cx, c.cy, c.r)
		dc.Fill()
	}
}
