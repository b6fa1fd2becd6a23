package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepview/stepview/bucket"
	"github.com/stepview/stepview/catalog"
	"github.com/stepview/stepview/logger"
	"github.com/stepview/stepview/render"
	"github.com/stepview/stepview/smfile"
	"github.com/stepview/stepview/util"
)

var (
	outputDir string
	measures  int
	recursive bool
	upload    bool
)

func init() {
	renderCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: alongside each input file)")
	renderCmd.Flags().IntVarP(&measures, "measures", "m", 0, "number of measures to show (0 = whole chart)")
	renderCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "search for .sm files recursively")
	renderCmd.Flags().BoolVar(&upload, "upload", false, "upload rendered images to the configured S3 bucket")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file-or-directory>",
	Short: "Renders chart images",
	Long:  `Renders one playfield image per playable chart found in the given .sm file or directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0])
	},
}

func runRender(input string) error {
	paths, err := resolveInputPaths(input)
	if err != nil {
		return err
	}

	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var uploader *bucket.Uploader
	if upload {
		if cfg.S3Bucket == "" {
			return fmt.Errorf("--upload requires STEPVIEW_S3_BUCKET")
		}
		uploader, err = bucket.NewUploader(cfg)
		if err != nil {
			return err
		}
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer cat.Close()

	r := render.NewRenderer(cfg.FontPath)
	for _, path := range paths {
		if err := renderFile(r, cat, uploader, path); err != nil {
			// One bad simfile never aborts the batch.
			logger.L().Warn("skipping file", zap.String("path", path), zap.Error(err))
		}
	}
	return nil
}

func resolveInputPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}
	paths := util.GatherAllChartPaths(input, recursive, 0)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .sm files found under %s", input)
	}
	return paths, nil
}

func renderFile(r *render.Renderer, cat *catalog.Catalog, uploader *bucket.Uploader, path string) error {
	song, err := smfile.ParseFile(path)
	if err != nil {
		return err
	}

	for _, chart := range song.Charts {
		img := r.Render(chart, measures)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encoding image for %s: %w", path, err)
		}

		name := util.OutputName(path, chart.Type.Marker(), chart.Meta.Difficulty)
		outPath := util.OutputPath(path, outputDir, name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		if _, err := cat.Add(path, outPath, chart); err != nil {
			return fmt.Errorf("cataloguing %s: %w", outPath, err)
		}
		if uploader != nil {
			if err := uploader.Upload(name, buf.Bytes()); err != nil {
				return err
			}
		}

		logger.L().Info("generated",
			zap.String("image", outPath),
			zap.String("difficulty", chart.Meta.Difficulty),
			zap.Int("notes", len(chart.Notes)))
	}
	return nil
}
