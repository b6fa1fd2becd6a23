package model

// ChartType is the playfield layout of a chart. Only the two dance
// layouts are supported; sections with any other type tag are dropped
// during parsing.
type ChartType uint8

const (
	Singles ChartType = iota
	Doubles
)

func (t ChartType) Columns() int {
	if t == Doubles {
		return 8
	}
	return 4
}

// Marker is the short tag used in output filenames.
func (t ChartType) Marker() string {
	if t == Doubles {
		return "D"
	}
	return "S"
}

func (t ChartType) String() string {
	if t == Doubles {
		return "dance-double"
	}
	return "dance-single"
}

// ChartMeta carries the song-level tags and timing lists plus the
// difficulty identity of one chart. The Timing pointer is shared by all
// charts of a file.
type ChartMeta struct {
	Title      string
	Subtitle   string
	Artist     string
	Credit     string
	Difficulty string
	Rating     int

	Timing *TimingData
}

// Chart is one playable difficulty: metadata, layout, and its own
// beat-ordered note sequence. Notes are never shared between charts.
type Chart struct {
	Meta  *ChartMeta
	Type  ChartType
	Notes []Note
}

// MaxBeat returns the largest note beat, or 0 for an empty chart.
func (c *Chart) MaxBeat() float64 {
	var max float64
	for _, n := range c.Notes {
		if n.Beat > max {
			max = n.Beat
		}
	}
	return max
}

// Song is everything parsed from one .sm file.
type Song struct {
	Title    string
	Subtitle string
	Artist   string
	Credit   string
	Timing   *TimingData
	Charts   []*Chart
}
