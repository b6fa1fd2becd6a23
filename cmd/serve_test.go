package cmd

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepview/stepview/catalog"
	"github.com/stepview/stepview/config"
	"github.com/stepview/stepview/model"
)

const minimalSim = `#TITLE:Test Song;
#BPMS:0=120;
#NOTES:dance-single:::Hard:7::
1000
,
0000
;`

func testConfig(t *testing.T) {
	cfg = &config.Config{
		CatalogPath: filepath.Join(t.TempDir(), "catalog.db"),
	}
}

func TestHandleRenderReturnsImage(t *testing.T) {
	testConfig(t)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(minimalSim))
	w := httptest.NewRecorder()
	HandleRender(w, req)

	resp := w.Result()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	assert.NoError(err)
	assert.True(img.Bounds().Dx() > 0)
}

func TestHandleRenderNoChartsIsUnprocessable(t *testing.T) {
	testConfig(t)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("#TITLE:Empty;"))
	w := httptest.NewRecorder()
	HandleRender(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode)
}

func TestHandleRenderChartIndexOutOfRange(t *testing.T) {
	testConfig(t)

	req := httptest.NewRequest(http.MethodPost, "/render?chart=5", strings.NewReader(minimalSim))
	w := httptest.NewRecorder()
	HandleRender(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleChartsListsCatalog(t *testing.T) {
	testConfig(t)

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		t.Fatal(err)
	}
	chart := &model.Chart{
		Meta: &model.ChartMeta{
			Title: "Test Song", Artist: "Someone",
			Difficulty: "Hard", Rating: 7,
			Timing: &model.TimingData{},
		},
		Type: model.Singles,
	}
	if _, err := cat.Add("songs/test.sm", "out/test_S_hard.png", chart); err != nil {
		t.Fatal(err)
	}
	cat.Close()

	req := httptest.NewRequest(http.MethodGet, "/charts", nil)
	w := httptest.NewRecorder()
	HandleCharts(w, req)

	resp := w.Result()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var records []catalog.Record
	assert.NoError(json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(records, 1)
	assert.Equal("Test Song", records[0].Title)
	assert.Equal("dance-single", records[0].ChartType)
}
