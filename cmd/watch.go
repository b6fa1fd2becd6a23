package cmd

import (
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepview/stepview/catalog"
	"github.com/stepview/stepview/logger"
	"github.com/stepview/stepview/render"
	"github.com/stepview/stepview/util"
)

func init() {
	watchCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: alongside each input file)")
	watchCmd.Flags().IntVarP(&measures, "measures", "m", 0, "number of measures to show (0 = whole chart)")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Re-renders charts when simfiles change",
	Long:  `Watches a directory and re-renders the images for any .sm file that is written or created, debounced so editors saving in bursts only trigger one render.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(args[0])
	},
}

func watch(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	r := render.NewRenderer(cfg.FontPath)

	var mu sync.Mutex
	pending := make(map[string]bool)

	flush := func() {
		mu.Lock()
		paths := util.GetKeysSorted(pending)
		for k := range pending {
			delete(pending, k)
		}
		mu.Unlock()

		for _, path := range paths {
			if err := renderFile(r, cat, nil, path); err != nil {
				logger.L().Warn("skipping file", zap.String("path", path), zap.Error(err))
			}
		}
	}
	debounced := debounce.New(500 * time.Millisecond)

	logger.L().Info("watching", zap.String("dir", dir))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".sm") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			mu.Lock()
			pending[event.Name] = true
			mu.Unlock()
			debounced(flush)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.L().Warn("watch error", zap.Error(err))
		}
	}
}
