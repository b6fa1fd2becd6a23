// Package catalog keeps a sqlite record of every chart the tool has
// parsed, so batch runs can be listed and served later.
package catalog

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stepview/stepview/model"
)

type Record struct {
	ID         string    `json:"id"`
	SourceFile string    `json:"source_file"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	ChartType  string    `json:"chart_type"`
	Difficulty string    `json:"difficulty"`
	Rating     int       `json:"rating"`
	NoteCount  int       `json:"note_count"`
	ImagePath  string    `json:"image_path"`
	AddedAt    time.Time `json:"added_at"`
}

type Catalog struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS charts (
	id          TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	title       TEXT NOT NULL,
	artist      TEXT NOT NULL,
	chart_type  TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	rating      INTEGER NOT NULL,
	note_count  INTEGER NOT NULL,
	image_path  TEXT NOT NULL,
	added_at    TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS charts_identity
	ON charts (source_file, chart_type, difficulty);
`

func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add upserts one chart's record, keyed by (file, type, difficulty) so
// re-rendering replaces the old row. Returns the record id.
func (c *Catalog) Add(smPath, imagePath string, chart *model.Chart) (string, error) {
	id := uuid.New().String()
	_, err := c.db.Exec(`
		INSERT INTO charts (id, source_file, title, artist, chart_type,
			difficulty, rating, note_count, image_path, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_file, chart_type, difficulty) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			rating = excluded.rating,
			note_count = excluded.note_count,
			image_path = excluded.image_path,
			added_at = excluded.added_at`,
		id, smPath, chart.Meta.Title, chart.Meta.Artist, chart.Type.String(),
		chart.Meta.Difficulty, chart.Meta.Rating, len(chart.Notes),
		imagePath, time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns every record ordered by source file then rating.
func (c *Catalog) List() ([]Record, error) {
	rows, err := c.db.Query(`
		SELECT id, source_file, title, artist, chart_type, difficulty,
			rating, note_count, image_path, added_at
		FROM charts
		ORDER BY source_file, rating`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.SourceFile, &r.Title, &r.Artist,
			&r.ChartType, &r.Difficulty, &r.Rating, &r.NoteCount,
			&r.ImagePath, &r.AddedAt); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
