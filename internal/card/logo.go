package card

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	// Fraction of the code's side occupied by the embedded logo. Kept well
	// inside level-H's ~30% recovery budget together with the pad.
	qrLogoFrac = 0.22
	// Extra diameter of the white pad behind the logo, in pixels.
	qrLogoPad = 16
	// Side of the circular corner badge on the card body.
	cardLogoSize = 120
)

// decodeLogo opens raw logo bytes. Each call decodes afresh so the same
// slice can back both embedding sites within one render. Nil or undecodable
// input yields (nil, false) and the caller renders without a logo.
func decodeLogo(raw []byte) (image.Image, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false
	}
	return img, true
}

// EmbedInQR erases the center of qrImg with a white circular pad and draws
// the circularly masked logo on top. Without a usable logo the input is
// returned unchanged.
func EmbedInQR(qrImg image.Image, raw []byte) image.Image {
	logo, ok := decodeLogo(raw)
	if !ok {
		return qrImg
	}

	side := qrImg.Bounds().Dx()
	ls := int(float64(side) * qrLogoFrac)
	pad := ls + qrLogoPad
	fitted := imaging.Fill(logo, ls, ls, imaging.Center, imaging.Lanczos)

	dc := gg.NewContextForImage(qrImg)
	cx, cy := float64(side)/2, float64(side)/2
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx, cy, float64(pad)/2)
	dc.Fill()
	dc.DrawCircle(cx, cy, float64(ls)/2)
	dc.Clip()
	dc.DrawImageAnchored(fitted, side/2, side/2, 0.5, 0.5)
	dc.ResetClip()
	return dc.Image()
}

// EmbedOnCard draws the logo as a circular badge of the given size with its
// top-left corner at (x, y). It reports whether a badge was drawn; without a
// usable logo the canvas is left untouched.
func EmbedOnCard(dc *gg.Context, raw []byte, x, y, size int) bool {
	logo, ok := decodeLogo(raw)
	if !ok {
		return false
	}

	fitted := imaging.Fill(logo, size, size, imaging.Center, imaging.Lanczos)
	cx := float64(x) + float64(size)/2
	cy := float64(y) + float64(size)/2
	dc.DrawCircle(cx, cy, float64(size)/2)
	dc.Clip()
	dc.DrawImageAnchored(fitted, x+size/2, y+size/2, 0.5, 0.5)
	dc.ResetClip()
	return true
}
