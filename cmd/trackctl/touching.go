package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var touchingCmd = &cobra.Command{
	Use:   "touching [file] [anchor]",
	Short: "List the segments that start or end at an anchor",
	Long: `List the segments adjacent to one anchor. Each segment is reported as
forward when the anchor is its start and reversed when it is its end.`,
	Args: cobra.ExactArgs(2),
	RunE: runTouching,
}

func init() {
	rootCmd.AddCommand(touchingCmd)
}

func runTouching(cmd *cobra.Command, args []string) error {
	anchor, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid anchor index %q: %w", args[1], err)
	}

	_, c, _, err := connectFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer c.Release()

	adjacent, err := c.SegmentsTouching(anchor)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Anchor %d touches %d segments:\n", anchor, len(adjacent))
	for _, adj := range adjacent {
		fmt.Fprintf(out, "  %s  %-8s  length %.2f  angle %.2f° (mirror %+.0f)\n",
			adj.Pair(), adj.Orientation, adj.Length, adj.Angle, adj.Orientation.Sign())
	}
	return nil
}
