package pixel

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales img down so it fits inside maxWidth x maxHeight, keeping the
// aspect ratio. A zero limit leaves that dimension unconstrained. Images that
// already fit are returned as is.
func Fit(logger *slog.Logger, img *Image, maxWidth, maxHeight int) *Image {
	if img.Empty() {
		return img
	}

	srcWidth := float64(img.Width)
	srcHeight := float64(img.Height)

	scale := 1.0
	if maxWidth > 0 && srcWidth > float64(maxWidth) {
		scale = float64(maxWidth) / srcWidth
	}
	if maxHeight > 0 && srcHeight*scale > float64(maxHeight) {
		scale = float64(maxHeight) / srcHeight
	}
	if scale >= 1 {
		return img
	}

	destWidth := max(1, int(math.Round(srcWidth*scale)))
	destHeight := max(1, int(math.Round(srcHeight*scale)))

	logger.Info("resizing", "width", destWidth, "height", destHeight)
	dest := New(destWidth, destHeight)
	draw.CatmullRom.Scale(dest.NRGBA(), image.Rect(0, 0, destWidth, destHeight),
		img.NRGBA(), image.Rect(0, 0, img.Width, img.Height), draw.Src, nil)

	return dest
}
