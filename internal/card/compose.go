package card

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fogleman/gg"
)

// Canvas geometry. All layout is fixed at compile time; there is no dynamic
// layout solver.
const (
	cardW = 1200
	cardH = 660

	leftMargin = 60
	textGutter = 30
	qrMarginR  = 65
	qrPad      = 14

	nameStartSize  = 66
	titleStartSize = 36
	orgStartSize   = 34
	valueStartSize = 32
	captionSize    = 24

	iconSize    = 32
	rowSpacing  = 54
	contactMinY = 335
)

// Render composes the business card for rec and returns it as PNG bytes.
// It is a pure function of the record: safe for unlimited concurrent
// callers, never mutates rec, and decodes rec.Logo independently for each
// placement. On error no image bytes are returned.
func Render(rec ContactRecord) ([]byte, error) {
	theme := ResolveTheme(rec.ThemeID)

	bg := image.NewNRGBA(image.Rect(0, 0, cardW, cardH))
	FillVerticalGradient(bg, theme.Top, theme.Bottom)

	dc := gg.NewContextForImage(bg)
	DrawOverlay(dc, theme.Accent)

	// Scannable code block, right side, on a white pad.
	qrImg, err := EncodeQR(EncodeVCard(rec), theme.Accent)
	if err != nil {
		return nil, err
	}
	qrImg = EmbedInQR(qrImg, rec.Logo)

	qrX := cardW - qrSize - qrMarginR
	qrY := (cardH - qrSize) / 2
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(float64(qrX-qrPad), float64(qrY-qrPad), qrSize+2*qrPad, qrSize+2*qrPad)
	dc.Fill()
	dc.DrawImage(qrImg, qrX, qrY)

	dc.SetFontFace(faceAt(captionSize))
	dc.SetColor(theme.Text)
	dc.DrawStringAnchored("Scan to Save", float64(qrX)+qrSize/2, float64(qrY+qrSize+8), 0.5, 1)

	// Left column. A corner logo shifts the name start and narrows the
	// name's width budget.
	fullCol := float64(qrX - leftMargin - textGutter)
	nameX := float64(leftMargin)
	nameW := fullCol
	if EmbedOnCard(dc, rec.Logo, leftMargin, 60, cardLogoSize) {
		nameX += cardLogoSize + 20
		nameW -= cardLogoSize + 20
	}

	DrawFit(dc, nameX, 65, rec.FullName(), nameW, nameStartSize, theme.Text)

	// Accent separator bar spanning the resolved column.
	dc.SetColor(theme.Accent)
	dc.DrawRectangle(leftMargin, 210, (nameX-leftMargin)+nameW, 3)
	dc.Fill()

	// Title and organization advance the cursor only when present.
	y := 228.0
	if rec.Title != "" {
		DrawFit(dc, leftMargin, y, rec.Title, fullCol, titleStartSize, theme.Accent)
		y += 48
	}
	if rec.Org != "" {
		DrawFit(dc, leftMargin, y, rec.Org, fullCol, orgStartSize, theme.Text)
		y += 50
	}

	// Phone and email stay anchored near the lower third even when the
	// optional rows above are absent.
	y = y + 10
	if y < contactMinY {
		y = contactMinY
	}
	valueW := fullCol - (iconSize + 20)
	drawPhoneIcon(dc, leftMargin, y, iconSize, theme.Accent)
	DrawFit(dc, leftMargin+iconSize+20, y+4, rec.Phone, valueW, valueStartSize, theme.Text)
	y += rowSpacing
	drawMailIcon(dc, leftMargin, y, iconSize, theme.Accent)
	DrawFit(dc, leftMargin+iconSize+20, y+4, rec.Email, valueW, valueStartSize, theme.Text)

	// Bottom accent strip.
	dc.SetColor(theme.Accent)
	dc.DrawRectangle(0, cardH-6, cardW, 6)
	dc.Fill()

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
