package model

// NoteKind enumerates every symbol a note grid can produce. The tail
// symbol is shared between holds and rolls in the source notation, so a
// freshly parsed tail is KindTail until pairing decides which family
// closed it.
type NoteKind uint8

const (
	KindTap NoteKind = iota
	KindHoldHead
	KindHoldTail
	KindMine
	KindRollHead
	KindRollTail
	KindFake
	KindLift
	KindTail // unpaired hold/roll terminator
)

func (k NoteKind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindHoldHead:
		return "hold_head"
	case KindHoldTail:
		return "hold_tail"
	case KindMine:
		return "mine"
	case KindRollHead:
		return "roll_head"
	case KindRollTail:
		return "roll_tail"
	case KindFake:
		return "fake"
	case KindLift:
		return "lift"
	case KindTail:
		return "tail"
	}
	return "unknown"
}

// IsHead reports whether the note opens a sustained span.
func (k NoteKind) IsHead() bool {
	return k == KindHoldHead || k == KindRollHead
}

// IsTail reports whether the note can terminate a sustained span.
func (k NoteKind) IsTail() bool {
	return k == KindTail || k == KindHoldTail || k == KindRollTail
}

type Note struct {
	Beat   float64
	Column int
	Kind   NoteKind

	// HoldLength is the span in beats for hold/roll heads; 0 when no
	// tail was found, and always 0 for every other kind.
	HoldLength float64
}
