package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepview/stepview/model"
)

func chartWith(ct model.ChartType, notes []model.Note) *model.Chart {
	return &model.Chart{
		Meta: &model.ChartMeta{
			Title:      "Test Song",
			Artist:     "Someone",
			Difficulty: "Hard",
			Rating:     7,
			Timing:     &model.TimingData{},
		},
		Type:  ct,
		Notes: notes,
	}
}

func TestRenderWidthComesFromChartType(t *testing.T) {
	r := NewRenderer("")
	note := []model.Note{{Beat: 0, Column: 0, Kind: model.KindTap}}

	singles := r.Render(chartWith(model.Singles, note), 1)
	doubles := r.Render(chartWith(model.Doubles, note), 1)

	assert := assert.New(t)
	assert.Equal(padding*2+4*columnWidth, singles.Bounds().Dx())
	assert.Equal(padding*2+8*columnWidth, doubles.Bounds().Dx())
}

func TestRenderEmptyChartGetsOneMeasureCanvas(t *testing.T) {
	r := NewRenderer("")
	img := r.Render(chartWith(model.Singles, nil), 0)

	assert := assert.New(t)
	assert.Equal(padding*2+4*pixelsPerBeat, img.Bounds().Dy())
	assert.Equal(padding*2+4*columnWidth, img.Bounds().Dx())
}

func TestRenderAutoHeightCoversNotePlusMargin(t *testing.T) {
	r := NewRenderer("")
	img := r.Render(chartWith(model.Singles, []model.Note{
		{Beat: 0, Column: 0, Kind: model.KindTap},
	}), 0)

	// A note at beat 0 still gets its own measure plus one of margin.
	assert.Equal(t, padding*2+2*4*pixelsPerBeat, img.Bounds().Dy())
}

func TestRenderMeasureLimitCapsHeight(t *testing.T) {
	r := NewRenderer("")
	img := r.Render(chartWith(model.Singles, []model.Note{
		{Beat: 100, Column: 0, Kind: model.KindTap},
	}), 3)

	assert.Equal(t, padding*2+3*4*pixelsPerBeat, img.Bounds().Dy())
}

func TestRenderPaintsBackgroundAndGlyphs(t *testing.T) {
	r := NewRenderer("")
	chart := chartWith(model.Singles, []model.Note{
		{Beat: 0, Column: 0, Kind: model.KindTap},
		{Beat: 1, Column: 1, Kind: model.KindMine},
	})
	img := r.Render(chart, 1)
	height := img.Bounds().Dy()

	assert := assert.New(t)

	// Corner pixel is background.
	assert.Equal(color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))

	// Center of the tap glyph: column 0, beat 0.
	tapX := padding + noteSize/2
	tapY := height - padding - noteSize/2
	assert.Equal(color.RGBA{255, 255, 255, 255}, img.RGBAAt(tapX, tapY))

	// Center of the mine glyph: column 1, beat 1.
	mineX := padding + columnWidth + noteSize/2
	mineY := height - padding - pixelsPerBeat - noteSize/2
	assert.Equal(color.RGBA{255, 0, 0, 255}, img.RGBAAt(mineX, mineY))
}

func TestRenderDrawsHoldBody(t *testing.T) {
	r := NewRenderer("")
	chart := chartWith(model.Singles, []model.Note{
		{Beat: 0, Column: 0, Kind: model.KindHoldHead, HoldLength: 2},
		{Beat: 2, Column: 0, Kind: model.KindHoldTail},
		{Beat: 0, Column: 2, Kind: model.KindRollHead, HoldLength: 1},
		{Beat: 1, Column: 2, Kind: model.KindRollTail},
	})
	img := r.Render(chart, 1)
	height := img.Bounds().Dy()

	assert := assert.New(t)

	// Midpoint of the hold body, clear of both end glyphs.
	holdX := padding + noteSize/2
	holdY := height - padding - pixelsPerBeat
	assert.Equal(color.RGBA{0, 255, 255, 255}, img.RGBAAt(holdX, holdY))

	// Midpoint of the roll body.
	rollX := padding + 2*columnWidth + noteSize/2
	rollY := height - padding - pixelsPerBeat/2 - noteSize/2 - 4
	assert.Equal(color.RGBA{255, 165, 0, 255}, img.RGBAAt(rollX, rollY))
}

func TestRenderTimingAnnotationsDoNotPanicOnEmptyLists(t *testing.T) {
	r := NewRenderer("")
	chart := chartWith(model.Singles, nil)
	chart.Meta.Timing = &model.TimingData{
		BPMs:    []model.BPMChange{{Beat: 0, BPM: 120}},
		Stops:   []model.Stop{{Beat: 2, Seconds: 0.5}},
		Warps:   []model.Warp{{Beat: 1, SkipBeats: 2}},
		Speeds:  []model.SpeedChange{{Beat: 0, Multiplier: 1.5, Duration: 2}},
		Scrolls: []model.ScrollChange{{Beat: 3, Rate: 0.5}},
	}

	assert.NotNil(t, r.Render(chart, 2))
}
