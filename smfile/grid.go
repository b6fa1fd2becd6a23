package smfile

import (
	"strings"

	"github.com/stepview/stepview/model"
)

// beatsPerMeasure is fixed by the notation: a measure spans 4 beats no
// matter how many subdivision rows it contains.
const beatsPerMeasure = 4.0

// noteKindFor maps one grid character to a note kind. The mapping is a
// switch so each character resolves to exactly one kind; '3' is the
// shared hold/roll terminator and stays KindTail until pairing decides
// its family. The second result is false for the empty symbol and for
// any character the notation does not define.
func noteKindFor(c byte) (model.NoteKind, bool) {
	switch c {
	case '1':
		return model.KindTap, true
	case '2':
		return model.KindHoldHead, true
	case '3':
		return model.KindTail, true
	case '4':
		return model.KindRollHead, true
	case 'M':
		return model.KindMine, true
	case 'F':
		return model.KindFake, true
	case 'L':
		return model.KindLift, true
	default:
		return 0, false
	}
}

// parseNoteGrid flattens a chart's grid body into beat-stamped notes.
// Measures split on ','; rows split on line breaks with blanks dropped;
// a row's beat offset is rowIndex * 4 / rowCount. Rows whose length is
// not exactly columns are dropped. Every call returns a fresh slice so
// sibling charts never share note storage.
func parseNoteGrid(grid string, columns int) []model.Note {
	var notes []model.Note
	currentBeat := 0.0

	for _, measure := range strings.Split(grid, ",") {
		var rows []string
		for _, line := range strings.Split(measure, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				rows = append(rows, line)
			}
		}
		if len(rows) == 0 {
			currentBeat += beatsPerMeasure
			continue
		}

		beatsPerRow := beatsPerMeasure / float64(len(rows))
		for rowIdx, row := range rows {
			if len(row) != columns {
				continue
			}
			beat := currentBeat + float64(rowIdx)*beatsPerRow
			for col := 0; col < columns; col++ {
				kind, ok := noteKindFor(row[col])
				if !ok {
					continue
				}
				notes = append(notes, model.Note{
					Beat:   beat,
					Column: col,
					Kind:   kind,
				})
			}
		}

		currentBeat += beatsPerMeasure
	}

	return notes
}
