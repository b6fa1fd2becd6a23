package smfile

import (
	"github.com/stepview/stepview/model"
)

// resolveHolds pairs every hold/roll head with the first later note in
// its column that can terminate it, and sets the head's HoldLength to
// the beat distance. The matched tail is reclassified to the head's
// family (hold_tail or roll_tail); unmatched heads keep HoldLength 0.
// Tails are not hard-consumed: a later head in the same column may
// rematch an already-used tail. Charts never interleave two open spans
// in one column, so this stays harmless in practice.
func resolveHolds(notes []model.Note) {
	for i := range notes {
		head := &notes[i]
		if !head.Kind.IsHead() {
			continue
		}

		familyTail := model.KindHoldTail
		if head.Kind == model.KindRollHead {
			familyTail = model.KindRollTail
		}

		for j := i + 1; j < len(notes); j++ {
			tail := &notes[j]
			if tail.Column != head.Column {
				continue
			}
			if tail.Kind == model.KindTail || tail.Kind == familyTail {
				head.HoldLength = tail.Beat - head.Beat
				tail.Kind = familyTail
				break
			}
		}
	}
}
