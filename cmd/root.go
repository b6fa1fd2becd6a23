package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stepview/stepview/config"
	"github.com/stepview/stepview/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stepview",
	Short: "Render StepMania charts as scrolling-playfield images",
	Long:  `stepview parses .sm simfiles and renders each playable chart as a static playfield image.`,
}

func Execute() {
	cfg = config.Load()
	logger.InitLogger(cfg.LogLevel, cfg.LogPath)
	cobra.CheckErr(rootCmd.Execute())
}
