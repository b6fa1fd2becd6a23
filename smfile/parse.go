package smfile

import (
	"fmt"
	"os"

	"github.com/stepview/stepview/model"
)

// Parse turns raw .sm text into a Song: the file-level tags and timing
// lists, plus one Chart per supported #NOTES: section. The timing data
// is shared by every chart; note sequences are per-chart.
func Parse(content string) (*model.Song, error) {
	timing, err := parseTiming(content)
	if err != nil {
		return nil, err
	}

	song := &model.Song{
		Title:    ExtractTag(content, "TITLE"),
		Subtitle: ExtractTag(content, "SUBTITLE"),
		Artist:   ExtractTag(content, "ARTIST"),
		Credit:   ExtractTag(content, "CREDIT"),
		Timing:   timing,
	}

	sections, err := splitChartSections(content)
	if err != nil {
		return nil, err
	}

	for _, sec := range sections {
		notes := parseNoteGrid(sec.Grid, sec.Type.Columns())
		resolveHolds(notes)

		song.Charts = append(song.Charts, &model.Chart{
			Meta: &model.ChartMeta{
				Title:      song.Title,
				Subtitle:   song.Subtitle,
				Artist:     song.Artist,
				Credit:     song.Credit,
				Difficulty: sec.Difficulty,
				Rating:     sec.Rating,
				Timing:     timing,
			},
			Type:  sec.Type,
			Notes: notes,
		})
	}

	return song, nil
}

// ParseFile reads and parses one .sm file, adding the path to any parse
// error for batch reporting.
func ParseFile(path string) (*model.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	song, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return song, nil
}
