package smfile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/stepview/stepview/model"
)

// parseTimingList parses a #<tag>:beat=value,...; list into rows of
// 1+arity floats, beat first. The body splits on ','; an element with
// '=' starts an entry and, for arity>1 lists (#SPEEDS), the following
// '='-less elements are its remaining value fields. Stray elements
// without '=' are skipped silently. Any numeric field that fails to
// parse is a fatal format error. Rows come back sorted ascending by
// beat; the sort is stable so equal beats keep input order.
func parseTimingList(content, tag string, arity int) ([][]float64, error) {
	body := ExtractTag(content, tag)
	if body == "" {
		return nil, nil
	}

	var rows [][]float64
	parts := strings.Split(body, ",")
	for i := 0; i < len(parts); i++ {
		entry := strings.TrimSpace(parts[i])
		eq := strings.Index(entry, "=")
		if eq < 0 {
			continue
		}

		fields := []string{entry[:eq], entry[eq+1:]}
		for len(fields) < arity+1 && i+1 < len(parts) && !strings.Contains(parts[i+1], "=") {
			i++
			fields = append(fields, parts[i])
		}
		if len(fields) != arity+1 {
			return nil, fmt.Errorf("#%s: entry %q: want %d value fields, have %d",
				tag, entry, arity, len(fields)-1)
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := parseNumber(f)
			if err != nil {
				return nil, fmt.Errorf("#%s: %w", tag, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][0] < rows[j][0]
	})
	return rows, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad numeric field %q", s)
	}
	return v, nil
}

// parseTiming reads all six event lists of a file.
func parseTiming(content string) (*model.TimingData, error) {
	td := &model.TimingData{}

	bpms, err := parseTimingList(content, "BPMS", 1)
	if err != nil {
		return nil, err
	}
	for _, r := range bpms {
		td.BPMs = append(td.BPMs, model.BPMChange{Beat: r[0], BPM: r[1]})
	}

	stops, err := parseTimingList(content, "STOPS", 1)
	if err != nil {
		return nil, err
	}
	for _, r := range stops {
		td.Stops = append(td.Stops, model.Stop{Beat: r[0], Seconds: r[1]})
	}

	warps, err := parseTimingList(content, "WARPS", 1)
	if err != nil {
		return nil, err
	}
	for _, r := range warps {
		td.Warps = append(td.Warps, model.Warp{Beat: r[0], SkipBeats: r[1]})
	}

	fakes, err := parseTimingList(content, "FAKES", 1)
	if err != nil {
		return nil, err
	}
	for _, r := range fakes {
		td.Fakes = append(td.Fakes, model.FakeSegment{Beat: r[0], Beats: r[1]})
	}

	speeds, err := parseTimingList(content, "SPEEDS", 2)
	if err != nil {
		return nil, err
	}
	for _, r := range speeds {
		td.Speeds = append(td.Speeds, model.SpeedChange{Beat: r[0], Multiplier: r[1], Duration: r[2]})
	}

	scrolls, err := parseTimingList(content, "SCROLLS", 1)
	if err != nil {
		return nil, err
	}
	for _, r := range scrolls {
		td.Scrolls = append(td.Scrolls, model.ScrollChange{Beat: r[0], Rate: r[1]})
	}

	return td, nil
}
