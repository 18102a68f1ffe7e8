package card

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// Rendered side length of the code block on the card, in pixels.
const qrSize = 400

// EncodeQR renders payload as a square QR bitmap with fg data modules on a
// white background, resampled to qrSize with Lanczos. Error correction is
// level H so the center can later be occluded by a logo and the code stays
// scannable. An oversized payload returns an EncodingError.
func EncodeQR(payload string, fg color.Color) (image.Image, error) {
	q, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	q.ForegroundColor = fg
	q.BackgroundColor = color.White

	// 10px per module including the built-in quiet zone, then resample
	// down to the fixed block size.
	img := q.Image(-10)
	return imaging.Resize(img, qrSize, qrSize, imaging.Lanczos), nil
}
