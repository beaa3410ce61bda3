package main

import (
	"fmt"

	"github.com/philipparndt/gotrack/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a layout",
	Long:  "Show the anchors of a layout together with segment count, length statistics, covered area and bounds.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	layout, c, segments, err := connectFile(cmd.Context(), filename)
	if err != nil {
		return err
	}
	defer c.Release()

	result := analysis.Analyze(segments)
	conf := c.Config()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Track Layout Information")
	fmt.Fprintln(out, "========================")
	if layout.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", layout.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Anchors:")
	for _, a := range c.Anchors() {
		fmt.Fprintf(out, "  %d: %s\n", a.Index, analysis.FormatPoint(a.Center))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Segments:")
	fmt.Fprintf(out, "  Count: %d\n", result.SegmentCount)
	fmt.Fprintf(out, "  Width: %s\n", analysis.FormatMeasurement(conf.Width, ""))
	fmt.Fprintf(out, "  Pivot: %s\n", conf.Pivot)
	fmt.Fprintf(out, "  Total Length: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
	fmt.Fprintf(out, "  Total Area: %s\n\n", analysis.FormatMeasurement(result.TotalArea, "px²"))

	fmt.Fprintln(out, "Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinLength, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxLength, ""))
	fmt.Fprintf(out, "  Average: %s\n\n", analysis.FormatMeasurement(result.AvgLength, ""))

	if longest := analysis.FindLongest(result, 1); len(longest) == 1 {
		fmt.Fprintf(out, "Longest segment: %s\n", longest[0].Pair())
	}
	if shortest := analysis.FindShortest(result, 1); len(shortest) == 1 {
		fmt.Fprintf(out, "Shortest segment: %s\n\n", shortest[0].Pair())
	}

	fmt.Fprintln(out, "Bounds:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatPoint(result.Bounds.Center()))
	return nil
}
