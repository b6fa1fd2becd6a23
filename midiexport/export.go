// Package midiexport turns a chart into a Standard MIDI File preview:
// each column maps to a pitch, taps become short notes, holds and rolls
// sustain for their resolved length.
package midiexport

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/stepview/stepview/model"
)

const (
	baseKey  = 60 // column 0 = middle C
	velocity = 100
	channel  = 0
)

type event struct {
	tick uint32
	off  bool
	key  uint8
}

// Build assembles the SMF for one chart. The song's first tempo change
// becomes the file tempo; 120 is used when the chart has none.
func Build(chart *model.Chart) *smf.SMF {
	clock := smf.MetricTicks(480)
	ticksPerBeat := float64(clock.Resolution())

	bpm := 120.0
	if len(chart.Meta.Timing.BPMs) > 0 {
		bpm = chart.Meta.Timing.BPMs[0].BPM
	}

	var events []event
	for _, n := range chart.Notes {
		var lengthBeats float64
		switch {
		case n.Kind == model.KindTap || n.Kind == model.KindLift:
			lengthBeats = 0.5
		case n.Kind.IsHead() && n.HoldLength > 0:
			lengthBeats = n.HoldLength
		case n.Kind.IsHead():
			lengthBeats = 0.5
		default:
			continue
		}

		key := uint8(baseKey + n.Column)
		on := uint32(n.Beat * ticksPerBeat)
		off := uint32((n.Beat + lengthBeats) * ticksPerBeat)
		events = append(events,
			event{tick: on, key: key},
			event{tick: off, off: true, key: key},
		)
	}

	// Note-offs sort before note-ons on the same tick so retriggered
	// columns never hang.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(chart.Meta.Title))
	tr.Add(0, smf.MetaTempo(bpm))

	var lastTick uint32
	for _, ev := range events {
		delta := ev.tick - lastTick
		lastTick = ev.tick
		if ev.off {
			tr.Add(delta, midi.NoteOff(channel, ev.key))
		} else {
			tr.Add(delta, midi.NoteOn(channel, ev.key, velocity))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// WriteFile renders the chart's MIDI preview to path.
func WriteFile(chart *model.Chart, path string) error {
	return Build(chart).WriteFile(path)
}
