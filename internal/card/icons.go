package card

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Icon glyphs are drawn as vector shapes rather than font glyphs so renders
// do not depend on emoji coverage in the resolved font.

// drawPhoneIcon strokes a handset glyph inside an s-sided box at (x, y).
func drawPhoneIcon(dc *gg.Context, x, y, s float64, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(3)
	w := s * 0.56
	dc.DrawRoundedRectangle(x+(s-w)/2, y, w, s, s*0.12)
	dc.Stroke()
	dc.DrawCircle(x+s/2, y+s*0.85, s*0.05)
	dc.Fill()
}

// drawMailIcon strokes an envelope glyph inside an s-sided box at (x, y).
func drawMailIcon(dc *gg.Context, x, y, s float64, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(3)
	top := y + s*0.2
	h := s * 0.6
	dc.DrawRectangle(x, top, s, h)
	dc.Stroke()
	dc.MoveTo(x, top)
	dc.LineTo(x+s/2, top+h*0.55)
	dc.LineTo(x+s, top)
	dc.Stroke()
}
