package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/philipparndt/gotrack/pkg/analysis"
	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	segmentsOutput string
	showFrames     bool
)

var segmentsCmd = &cobra.Command{
	Use:   "segments [file]",
	Short: "List the segment for every anchor pair",
	Long: `Compute the segments of a layout and list each one in canonical pair order
with its length, angle and placement point. With --frames the unrotated
rectangle and its rotation pivot are shown as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)

	segmentsCmd.Flags().StringVarP(&segmentsOutput, "output", "o", "table", "output format: table or yaml")
	segmentsCmd.Flags().BoolVar(&showFrames, "frames", false, "show the rectangle frame of each segment")
}

func runSegments(cmd *cobra.Command, args []string) error {
	_, c, segments, err := connectFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer c.Release()

	switch segmentsOutput {
	case "yaml":
		return writeSegmentsYAML(cmd.OutOrStdout(), segments)
	case "table":
		writeSegmentsTable(cmd.OutOrStdout(), segments, showFrames)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", segmentsOutput)
	}
}

func writeSegmentsTable(out io.Writer, segments []track.Segment, frames bool) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if frames {
		fmt.Fprintln(tw, "PAIR\tLENGTH\tANGLE\tPLACEMENT\tFRAME\tPIVOT")
	} else {
		fmt.Fprintln(tw, "PAIR\tLENGTH\tANGLE\tPLACEMENT")
	}

	for _, s := range segments {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f°\t%s",
			s.Pair(), s.Length, s.Angle, analysis.FormatPoint(s.Placement))
		if frames {
			f := s.Frame()
			fmt.Fprintf(tw, "\t%.2f,%.2f %.2fx%.2f\t%s",
				f.Left, f.Top, f.Width, f.Height, analysis.FormatPoint(f.Pivot()))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

type segmentDoc struct {
	Start     int        `yaml:"start"`
	End       int        `yaml:"end"`
	Length    float64    `yaml:"length"`
	Angle     float64    `yaml:"angle"`
	Width     float64    `yaml:"width"`
	Pivot     string     `yaml:"pivot"`
	Placement [2]float64 `yaml:"placement,flow"`
}

func writeSegmentsYAML(out io.Writer, segments []track.Segment) error {
	docs := make([]segmentDoc, len(segments))
	for i, s := range segments {
		docs[i] = segmentDoc{
			Start:     s.StartIndex,
			End:       s.EndIndex,
			Length:    s.Length,
			Angle:     s.Angle,
			Width:     s.Width,
			Pivot:     s.Pivot.String(),
			Placement: [2]float64{s.Placement.X, s.Placement.Y},
		}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]segmentDoc{"segments": docs}); err != nil {
		return fmt.Errorf("failed to encode segments: %w", err)
	}
	return enc.Close()
}
