package main

import (
	"github.com/philipparndt/gotrack/pkg/layout"
	"github.com/philipparndt/gotrack/pkg/trackfile"
	"github.com/spf13/cobra"
)

var (
	arrangement     string
	anchorCount     int
	containerWidth  float64
	containerHeight float64
	layoutName      string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Generate a layout file with a default anchor arrangement",
	Long: `Place anchors inside a container and print the result as a YAML layout.
A ring spreads the anchors evenly on a circle around the center, a grid
fills the quadrants of a 2x2 grid row by row.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&arrangement, "arrangement", "a", string(layout.ArrangementRing), "anchor arrangement: ring or grid")
	layoutCmd.Flags().IntVarP(&anchorCount, "count", "n", 4, "number of anchors (2-4)")
	layoutCmd.Flags().Float64Var(&containerWidth, "container-width", 600, "container width")
	layoutCmd.Flags().Float64Var(&containerHeight, "container-height", 600, "container height")
	layoutCmd.Flags().StringVar(&layoutName, "name", "", "layout name")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	a, err := layout.ParseArrangement(arrangement)
	if err != nil {
		return err
	}

	size := layout.Size{Width: containerWidth, Height: containerHeight}
	points, err := layout.Arrange(a, size, anchorCount)
	if err != nil {
		return err
	}

	l := trackfile.NewLayout(layoutName, points)
	if width > 0 {
		l.Width = width
	}
	if pivot != "" {
		tc, err := trackConfig(nil)
		if err != nil {
			return err
		}
		l.Pivot = tc.Pivot
	}
	return trackfile.Write(cmd.OutOrStdout(), l)
}
