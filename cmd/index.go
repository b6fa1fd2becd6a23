package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepview/stepview/catalog"
	"github.com/stepview/stepview/logger"
	"github.com/stepview/stepview/smfile"
	"github.com/stepview/stepview/util"
)

var indexMax int

func init() {
	indexCmd.Flags().IntVar(&indexMax, "max", 0, "stop after this many files (0 = unlimited)")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <directory>",
	Short: "Catalogues charts without rendering",
	Long:  `Walks a directory recursively, parses every .sm file, and records each playable chart in the sqlite catalog.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndex(args[0])
	},
}

func runIndex(dir string) error {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	paths := util.GatherAllChartPaths(dir, true, indexMax)
	for i, path := range paths {
		logger.L().Info("indexing",
			zap.Int("file", i+1),
			zap.Int("of", len(paths)),
			zap.String("path", path))

		song, err := smfile.ParseFile(path)
		if err != nil {
			logger.L().Warn("skipping file", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, chart := range song.Charts {
			if _, err := cat.Add(path, "", chart); err != nil {
				return err
			}
		}
	}
	return nil
}
