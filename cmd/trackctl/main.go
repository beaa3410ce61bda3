package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gotrack/internal/config"
	"github.com/philipparndt/gotrack/internal/logging"
	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/philipparndt/gotrack/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	width      float64
	pivot      string

	cfg    config.File
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trackctl",
	Short: "Compute and inspect the track segments between anchors",
	Long: `trackctl connects two to four anchors with a straight segment for every
pair and reports each segment's length, angle and placement. Layouts are
read from text or YAML layout files.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $"+config.EnvPath+")")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.Float64Var(&width, "width", 0, "segment width (overrides layout and config)")
	flags.StringVar(&pivot, "pivot", "", "rotation pivot: midpoint or start")
}

// setup loads the config file and applies flag overrides
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if logFormat != "" {
		loaded.Log.Format = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return nil
}

// trackConfig returns the connector settings for a layout, with the
// layout's own values applied over the config file and flags over both
func trackConfig(layoutCfg func(track.Config) track.Config) (track.Config, error) {
	c := cfg.Track
	if layoutCfg != nil {
		c = layoutCfg(c)
	}
	if width > 0 {
		c.Width = width
	}
	if pivot != "" {
		p, err := track.ParsePivot(pivot)
		if err != nil {
			return track.Config{}, err
		}
		c.Pivot = p
	}
	return c, c.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
