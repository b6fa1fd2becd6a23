package render

import (
	"image/color"

	"github.com/stepview/stepview/model"
)

// palette is the fixed drawing style of the playfield. One is built per
// Renderer and never mutated afterwards.
type palette struct {
	background color.RGBA
	measure    color.RGBA
	beat       color.RGBA
	text       color.RGBA

	bpm    color.RGBA
	stop   color.RGBA
	warp   color.RGBA
	speed  color.RGBA
	scroll color.RGBA

	hold color.RGBA
	roll color.RGBA

	// glyph colors per note kind; kinds without an entry use tap.
	glyphs map[model.NoteKind]color.RGBA
}

func newPalette() palette {
	return palette{
		background: color.RGBA{0, 0, 0, 255},
		measure:    color.RGBA{50, 50, 50, 255},
		beat:       color.RGBA{30, 30, 30, 255},
		text:       color.RGBA{255, 255, 255, 255},

		bpm:    color.RGBA{0, 255, 0, 255},
		stop:   color.RGBA{255, 0, 255, 255},
		warp:   color.RGBA{255, 255, 0, 255},
		speed:  color.RGBA{0, 255, 255, 255},
		scroll: color.RGBA{255, 128, 0, 255},

		hold: color.RGBA{0, 255, 255, 255},
		roll: color.RGBA{255, 165, 0, 255},

		glyphs: map[model.NoteKind]color.RGBA{
			model.KindMine: {255, 0, 0, 255},
		},
	}
}

func (p palette) glyph(kind model.NoteKind) color.RGBA {
	if c, ok := p.glyphs[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}
