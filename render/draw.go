package render

import (
	"image"
	"image/color"
	"image/draw"
)

// fillRect paints the rectangle (x0,y0)-(x1,y1), clipped to the canvas.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	rect := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a 1px border around (x0,y0)-(x1,y1).
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+1, c)
	fillRect(img, x0, y1-1, x1, y1, c)
	fillRect(img, x0, y0, x0+1, y1, c)
	fillRect(img, x1-1, y0, x1, y1, c)
}

// hline draws a horizontal line of the given thickness from x0 to x1.
func hline(img *image.RGBA, x0, x1, y, thickness int, c color.RGBA) {
	fillRect(img, x0, y, x1, y+thickness, c)
}
