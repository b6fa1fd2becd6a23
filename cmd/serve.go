package cmd

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepview/stepview/catalog"
	"github.com/stepview/stepview/logger"
	"github.com/stepview/stepview/render"
	"github.com/stepview/stepview/smfile"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves rendering over HTTP",
	Long:  `Serves POST /render (raw .sm body in, PNG out) and GET /charts (the catalog as JSON).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/charts", HandleCharts).Methods("GET")
	handler := cors.Default().Handler(router)

	logger.L().Info("listening", zap.String("addr", cfg.ServeAddr))
	return http.ListenAndServe(cfg.ServeAddr, handler)
}

// HandleRender renders one chart of the posted .sm text. Query params:
// chart (section index, default 0) and measures (canvas cap, default
// whole chart).
func HandleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read request body", http.StatusBadRequest)
		return
	}

	song, err := smfile.Parse(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(song.Charts) == 0 {
		http.Error(w, "no playable charts in input", http.StatusUnprocessableEntity)
		return
	}

	chartIdx := queryInt(r, "chart", 0)
	if chartIdx < 0 || chartIdx >= len(song.Charts) {
		http.Error(w, "chart index out of range", http.StatusBadRequest)
		return
	}

	img := render.NewRenderer(cfg.FontPath).Render(song.Charts[chartIdx], queryInt(r, "measures", 0))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		logger.L().Error("encoding response image", zap.Error(err))
	}
}

// HandleCharts lists every catalogued chart.
func HandleCharts(w http.ResponseWriter, r *http.Request) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cat.Close()

	records, err := cat.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []catalog.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
