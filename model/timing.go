package model

// The six timed-event lists of an .sm file. They describe the song, not
// a step pattern, so one set is shared by every chart of a file. Each
// list is sorted ascending by beat; equal beats keep input order.

type BPMChange struct {
	Beat float64
	BPM  float64
}

type Stop struct {
	Beat    float64
	Seconds float64
}

type Warp struct {
	Beat      float64
	SkipBeats float64
}

type FakeSegment struct {
	Beat  float64
	Beats float64
}

type SpeedChange struct {
	Beat       float64
	Multiplier float64
	Duration   float64
}

type ScrollChange struct {
	Beat float64
	Rate float64
}

type TimingData struct {
	BPMs    []BPMChange
	Stops   []Stop
	Warps   []Warp
	Fakes   []FakeSegment
	Speeds  []SpeedChange
	Scrolls []ScrollChange
}
