package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepview/stepview/model"
)

func testChart(difficulty string, rating int) *model.Chart {
	return &model.Chart{
		Meta: &model.ChartMeta{
			Title: "Test Song", Artist: "Someone",
			Difficulty: difficulty, Rating: rating,
			Timing: &model.TimingData{},
		},
		Type: model.Singles,
		Notes: []model.Note{
			{Beat: 0, Column: 0, Kind: model.KindTap},
		},
	}
}

func TestAddAndList(t *testing.T) {
	cat, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	assert := assert.New(t)

	_, err = cat.Add("songs/a.sm", "a_S_easy.png", testChart("Easy", 2))
	assert.NoError(err)
	_, err = cat.Add("songs/a.sm", "a_S_hard.png", testChart("Hard", 9))
	assert.NoError(err)

	records, err := cat.List()
	assert.NoError(err)
	assert.Len(records, 2)
	assert.Equal("Easy", records[0].Difficulty)
	assert.Equal("Hard", records[1].Difficulty)
	assert.Equal(1, records[0].NoteCount)
}

func TestAddUpsertsSameChart(t *testing.T) {
	cat, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	assert := assert.New(t)

	_, err = cat.Add("songs/a.sm", "first.png", testChart("Hard", 9))
	assert.NoError(err)
	_, err = cat.Add("songs/a.sm", "second.png", testChart("Hard", 9))
	assert.NoError(err)

	records, err := cat.List()
	assert.NoError(err)
	assert.Len(records, 1)
	assert.Equal("second.png", records[0].ImagePath)
}
