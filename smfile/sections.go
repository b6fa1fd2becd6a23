package smfile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stepview/stepview/model"
)

// rawSection is one #NOTES: block before its grid has been parsed.
type rawSection struct {
	Type       model.ChartType
	Difficulty string
	Rating     int
	Grid       string
}

// #NOTES: followed by six colon-separated fields: type, two descriptive
// fields, difficulty label, integer rating, grid body. The grid group
// may itself contain colons.
var notesRe = regexp.MustCompile(`#NOTES:\s*([^:]*):([^:]*):([^:]*):([^:]*):([^:]*):([^;]*);`)

// splitChartSections returns the playable chart blocks of a file in file
// order. Sections whose type tag is not a supported layout are dropped.
// A non-integer difficulty rating on a supported section is a fatal
// format error.
func splitChartSections(content string) ([]rawSection, error) {
	var sections []rawSection
	for _, m := range notesRe.FindAllStringSubmatch(content, -1) {
		var ct model.ChartType
		switch strings.TrimSpace(m[1]) {
		case "dance-single":
			ct = model.Singles
		case "dance-double":
			ct = model.Doubles
		default:
			continue
		}

		ratingStr := strings.TrimSpace(m[5])
		rating, err := strconv.Atoi(ratingStr)
		if err != nil {
			return nil, fmt.Errorf("#NOTES: bad difficulty rating %q", ratingStr)
		}

		// The grid group swallows the optional radar-values field and
		// its trailing colon; drop that prefix so row beats start at 0.
		grid := m[6]
		if i := strings.Index(grid, ":"); i >= 0 {
			grid = grid[i+1:]
		}

		sections = append(sections, rawSection{
			Type:       ct,
			Difficulty: strings.TrimSpace(m[4]),
			Rating:     rating,
			Grid:       strings.TrimSpace(grid),
		})
	}
	return sections, nil
}
