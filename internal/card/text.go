package card

import (
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

const (
	// Shrink-to-fit floor and step. At the floor overflow is accepted;
	// text is never wrapped or truncated.
	minFontSize  = 18
	fontSizeStep = 3
)

// Preferred font files, boldest first. The embedded Go Bold face is the
// terminal fallback and always parses, so font resolution never fails.
var fontNames = []string{"arialbd.ttf", "arial.ttf", "DejaVuSans-Bold.ttf", "DejaVuSans.ttf"}

var fontDirs = []string{
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/TTF",
	"/Library/Fonts",
	`C:\Windows\Fonts`,
}

var (
	fontOnce   sync.Once
	parsedFont *opentype.Font
)

func cardFont() *opentype.Font {
	fontOnce.Do(func() {
		for _, name := range fontNames {
			for _, dir := range fontDirs {
				data, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					continue
				}
				if f, err := opentype.Parse(data); err == nil {
					parsedFont = f
					return
				}
			}
		}
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			// Unreachable: the embedded font is known good.
			return
		}
		parsedFont = f
	})
	return parsedFont
}

// faceAt returns a fresh font.Face for the given pixel size. Faces are not
// safe for concurrent use, so they are never cached or shared: each call
// gets its own, keeping concurrent renders independent. Only the parsed
// font is shared, which is read-only.
func faceAt(size int) font.Face {
	f, err := opentype.NewFace(cardFont(), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil || f == nil {
		return basicfont.Face7x13
	}
	return f
}

// fitSize returns the largest size in {start, start-3, ...} at which text
// measures within maxWidth, clamped at the floor.
func fitSize(dc *gg.Context, text string, maxWidth float64, start int) int {
	size := start
	for size > minFontSize {
		dc.SetFontFace(faceAt(size))
		if w, _ := dc.MeasureString(text); w <= maxWidth {
			break
		}
		size -= fontSizeStep
	}
	if size < minFontSize {
		size = minFontSize
	}
	return size
}

// DrawFit draws text with its top-left corner at (x, y), shrinking the font
// in fixed steps until the rendered width fits maxWidth or the floor size is
// reached.
func DrawFit(dc *gg.Context, x, y float64, text string, maxWidth float64, start int, c color.Color) {
	size := fitSize(dc, text, maxWidth, start)
	dc.SetFontFace(faceAt(size))
	dc.SetColor(c)
	dc.DrawStringAnchored(text, x, y, 0, 1)
}
