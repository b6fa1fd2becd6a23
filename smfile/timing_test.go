package smfile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepview/stepview/model"
)

func TestParseTimingListSortsByBeat(t *testing.T) {
	rows, err := parseTimingList("#BPMS:16=180,0=120,8=150;", "BPMS", 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]float64{{0, 120}, {8, 150}, {16, 180}}, rows)
}

func TestParseTimingListStableForEqualBeats(t *testing.T) {
	rows, err := parseTimingList("#STOPS:4=0.3,4=0.1,4=0.2,0=0.5;", "STOPS", 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]float64{{0, 0.5}, {4, 0.3}, {4, 0.1}, {4, 0.2}}, rows)
}

func TestParseTimingListSkipsEntriesWithoutEquals(t *testing.T) {
	rows, err := parseTimingList("#BPMS:garbage,0=120,alsogarbage;", "BPMS", 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]float64{{0, 120}}, rows)
}

func TestParseTimingListBadNumberIsFatal(t *testing.T) {
	_, err := parseTimingList("#BPMS:0=fast;", "BPMS", 1)
	assert.Error(t, err)

	_, err = parseTimingList("#BPMS:zero=120;", "BPMS", 1)
	assert.Error(t, err)
}

func TestParseTimingListAbsentTagIsEmpty(t *testing.T) {
	rows, err := parseTimingList("#TITLE:x;", "BPMS", 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(rows)
}

func TestParseTimingListSpeedsTakeTwoValueFields(t *testing.T) {
	rows, err := parseTimingList("#SPEEDS:8=2.0,0.0,0=1.5,4.0;", "SPEEDS", 2)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]float64{{0, 1.5, 4.0}, {8, 2.0, 0.0}}, rows)
}

func TestParseTimingListSpeedsMissingFieldIsFatal(t *testing.T) {
	_, err := parseTimingList("#SPEEDS:0=1.5;", "SPEEDS", 2)
	assert.Error(t, err)
}

func TestParseTimingBuildsAllSixLists(t *testing.T) {
	content := `#BPMS:0=120,32=140;
#STOPS:16=0.5;
#WARPS:8=2;
#FAKES:12=1;
#SPEEDS:0=1.0,0.0,24=2.5,4.0;
#SCROLLS:0=1,40=0.5;`

	td, err := parseTiming(content)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.BPMChange{{Beat: 0, BPM: 120}, {Beat: 32, BPM: 140}}, td.BPMs)
	assert.Equal([]model.Stop{{Beat: 16, Seconds: 0.5}}, td.Stops)
	assert.Equal([]model.Warp{{Beat: 8, SkipBeats: 2}}, td.Warps)
	assert.Equal([]model.FakeSegment{{Beat: 12, Beats: 1}}, td.Fakes)
	assert.Equal([]model.SpeedChange{
		{Beat: 0, Multiplier: 1.0, Duration: 0.0},
		{Beat: 24, Multiplier: 2.5, Duration: 4.0},
	}, td.Speeds)
	assert.Equal([]model.ScrollChange{{Beat: 0, Rate: 1}, {Beat: 40, Rate: 0.5}}, td.Scrolls)
}
