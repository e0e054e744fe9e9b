package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

const (
	// FrameSize is the edge length of one sprite frame in pixels.
	FrameSize = 24
	// SheetFrames is the number of columns on the agent sheet.
	SheetFrames = 10
)

var (
	bodyColor    = colornames.Darkseagreen
	outlineColor = colornames.Darkolivegreen
	eyeColor     = colornames.White
)

// AgentSheet draws the agent sprite sheet, one row of SheetFrames frames.
// Each frame bobs the body and swings the feet so idle and walk cycles can be
// cut from consecutive columns.
func AgentSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize*SheetFrames, FrameSize))
	for f := 0; f < SheetFrames; f++ {
		drawFrame(img, f*FrameSize, f)
	}
	return img
}

// FrameRect is the pixel rectangle of a frame on a sheet.
func FrameRect(row, col int) image.Rectangle {
	x, y := col*FrameSize, row*FrameSize
	return image.Rect(x, y, x+FrameSize, y+FrameSize)
}

func drawFrame(img *image.RGBA, x0, frame int) {
	phase := 2 * math.Pi * float64(frame) / float64(SheetFrames)
	cx := float64(x0) + FrameSize/2
	cy := FrameSize/2 - 1 + math.Round(math.Sin(phase))
	const r = 8.0

	for y := 0; y < FrameSize; y++ {
		for x := x0; x < x0+FrameSize; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			switch {
			case d <= r-1:
				img.Set(x, y, bodyColor)
			case d <= r:
				img.Set(x, y, outlineColor)
			}
		}
	}

	swing := int(math.Round(2 * math.Sin(phase)))
	foot := int(cy + r)
	fill(img, int(cx)-5+swing, foot, 3, 2, outlineColor)
	fill(img, int(cx)+2-swing, foot, 3, 2, outlineColor)
	fill(img, int(cx)+2, int(cy)-3, 2, 2, eyeColor)
}

func fill(img *image.RGBA, x, y, w, h int, c color.Color) {
	b := img.Bounds()
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if image.Pt(i, j).In(b) {
				img.Set(i, j, c)
			}
		}
	}
}
