// Package render draws a parsed chart as a static scrolling playfield:
// beats run bottom-to-top, columns left-to-right, with timing changes
// annotated in the margins.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/stepview/stepview/model"
)

const (
	padding       = 40
	noteSize      = 20
	pixelsPerBeat = 60
	columnWidth   = noteSize + 4
)

type Renderer struct {
	face   font.Face
	colors palette
}

// NewRenderer builds a renderer with the style table and label font
// fixed for its lifetime. fontPath may be empty to use the built-in
// bitmap face.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{
		face:   loadFace(fontPath),
		colors: newPalette(),
	}
}

// Render rasterises one chart. measureLimit caps the canvas at that
// many measures; 0 sizes the canvas from the last note, rounded up to
// whole measures plus one measure of margin. An empty chart still gets
// a one-measure canvas.
func (r *Renderer) Render(chart *model.Chart, measureLimit int) *image.RGBA {
	measures := measureLimit
	if measures <= 0 {
		if len(chart.Notes) == 0 {
			// Nothing to size from; draw a single empty measure.
			measures = 1
		} else {
			// The measure containing the last note plus one of margin.
			measures = int(chart.MaxBeat()/4) + 2
		}
	}

	// Width comes from the layout's column count, never from the notes.
	width := padding*2 + chart.Type.Columns()*columnWidth
	height := padding*2 + measures*4*pixelsPerBeat

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.colors.background), image.Point{}, draw.Src)

	r.drawGrid(img, measures, width, height)
	r.drawAnnotations(img, chart.Meta.Timing, width, height)
	r.drawNotes(img, chart, height)
	r.drawCaption(img, chart.Meta)

	return img
}

// beatY maps musical time to the vertical axis; larger beats sit higher
// on the canvas.
func beatY(height int, beat float64) int {
	return height - padding - int(beat*pixelsPerBeat)
}

func (r *Renderer) drawGrid(img *image.RGBA, measures, width, height int) {
	for m := 0; m <= measures; m++ {
		y := beatY(height, float64(m*4))
		hline(img, padding, width-padding, y, 2, r.colors.measure)
		for beat := 1; beat < 4; beat++ {
			hline(img, padding, width-padding, y-beat*pixelsPerBeat, 1, r.colors.beat)
		}
	}
}

func (r *Renderer) drawAnnotations(img *image.RGBA, td *model.TimingData, width, height int) {
	left := padding - 35
	right := width - padding + 5

	for _, b := range td.BPMs {
		r.text(img, left, beatY(height, b.Beat), fmt.Sprintf("%.0f", b.BPM), r.colors.bpm)
	}
	for _, s := range td.Stops {
		r.text(img, right, beatY(height, s.Beat), fmt.Sprintf("Stop\n%.2fs", s.Seconds), r.colors.stop)
	}
	for _, w := range td.Warps {
		r.text(img, right, beatY(height, w.Beat), fmt.Sprintf("Warp\n%.2fb", w.SkipBeats), r.colors.warp)
	}
	for _, s := range td.Speeds {
		r.text(img, left, beatY(height, s.Beat), fmt.Sprintf("%gx\n%.1f", s.Multiplier, s.Duration), r.colors.speed)
	}
	for _, s := range td.Scrolls {
		r.text(img, left, beatY(height, s.Beat), fmt.Sprintf("Scroll\n%.1f", s.Rate), r.colors.scroll)
	}
}

func (r *Renderer) drawNotes(img *image.RGBA, chart *model.Chart, height int) {
	// Hold and roll bodies first so head glyphs land on top of them.
	for _, n := range chart.Notes {
		if !n.Kind.IsHead() || n.HoldLength <= 0 {
			continue
		}
		x := padding + n.Column*columnWidth
		y := beatY(height, n.Beat)
		endY := beatY(height, n.Beat+n.HoldLength)
		body := r.colors.hold
		if n.Kind == model.KindRollHead {
			body = r.colors.roll
		}
		fillRect(img, x, endY, x+noteSize, y, body)
	}

	for _, n := range chart.Notes {
		x := padding + n.Column*columnWidth
		y := beatY(height, n.Beat)
		fillRect(img, x, y-noteSize, x+noteSize, y, r.colors.glyph(n.Kind))
		strokeRect(img, x, y-noteSize, x+noteSize, y, r.colors.text)
	}
}

func (r *Renderer) drawCaption(img *image.RGBA, meta *model.ChartMeta) {
	caption := fmt.Sprintf("%s - %s\nChart: %s %d\nCredit: %s",
		meta.Title, meta.Artist, meta.Difficulty, meta.Rating, meta.Credit)
	r.text(img, padding, padding, caption, r.colors.text)
}

// text draws a possibly multi-line label with (x, y) as the top-left of
// the first line.
func (r *Renderer) text(img *image.RGBA, x, y int, s string, c color.RGBA) {
	metrics := r.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	baseline := y + metrics.Ascent.Ceil()

	for _, line := range strings.Split(s, "\n") {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: r.face,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(line)
		baseline += lineHeight
	}
}
