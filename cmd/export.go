package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepview/stepview/logger"
	"github.com/stepview/stepview/midiexport"
	"github.com/stepview/stepview/smfile"
	"github.com/stepview/stepview/util"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output directory (default: alongside the input file)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.sm>",
	Short: "Exports charts as MIDI previews",
	Long:  `Writes one Standard MIDI File per playable chart, with columns mapped to pitches and holds sustained.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

func runExport(path string) error {
	song, err := smfile.ParseFile(path)
	if err != nil {
		return err
	}
	if len(song.Charts) == 0 {
		return fmt.Errorf("%s has no playable charts", path)
	}

	for _, chart := range song.Charts {
		name := util.OutputName(path, chart.Type.Marker(), chart.Meta.Difficulty)
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".mid"
		outPath := util.OutputPath(path, exportOut, name)

		if err := midiexport.WriteFile(chart, outPath); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		logger.L().Info("exported", zap.String("midi", outPath))
	}
	return nil
}
