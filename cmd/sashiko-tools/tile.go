package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sashiko-tools/pkg/pattern"
	"sashiko-tools/pkg/svg"
)

// loadPattern accepts either a pattern bundle (.json) or a bare tile (.svg).
func loadPattern(path string) (pattern.Pattern, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return pattern.LoadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pattern.Pattern{}, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return pattern.FromSVG(name, string(data))
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.svg>",
		Short: "Check a tile against the allowed SVG dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := svg.Validate(string(data)); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}
}

func newSanitizeCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sanitize <file.svg>",
		Short: "Strip disallowed tags and attributes from a tile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cleaned, err := svg.Sanitize(string(data))
			if err != nil {
				return err
			}
			return writeOutput(output, []byte(cleaned))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newTransformCommand() *cobra.Command {
	var (
		output string
		op     string
		gridMM float64
		color  string
		width  float64
		stitch float64
		gap    float64
	)
	cmd := &cobra.Command{
		Use:   "transform <file.svg>",
		Short: "Apply a geometric or styling operation to a tile",
		Long: `Operations:
  mirror-h      mirror around the viewBox right edge
  mirror-v      mirror around the viewBox bottom edge
  rotate        rotate 90 degrees clockwise about the tile center
  snap          snap coordinates to the physical grid (--grid-mm)
  thread        apply running-stitch styling
  reset-thread  remove running-stitch styling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			in := string(data)

			var out string
			switch op {
			case "mirror-h":
				out, err = svg.MirrorHorizontal(in)
			case "mirror-v":
				out, err = svg.MirrorVertical(in)
			case "rotate":
				out, err = svg.Rotate90(in)
			case "snap":
				out, err = svg.SnapToGrid(in, gridMM)
			case "thread":
				out, err = svg.ApplyThreadStyle(in, svg.ThreadStyle{
					Color:       color,
					StrokeWidth: width,
					DashLength:  stitch,
					GapLength:   gap,
				})
			case "reset-thread":
				out, err = svg.ResetThreadStyle(in)
			default:
				return fmt.Errorf("unknown operation %q", op)
			}
			if err != nil {
				return err
			}
			return writeOutput(output, []byte(out))
		},
	}
	cmd.Flags().StringVar(&op, "op", "", "Operation to apply (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().Float64Var(&gridMM, "grid-mm", 5, "Snap grid size in mm (snap)")
	cmd.Flags().StringVar(&color, "color", "#1a2b6d", "Thread color (thread)")
	cmd.Flags().Float64Var(&width, "width", 0.6, "Stroke width in viewBox units (thread)")
	cmd.Flags().Float64Var(&stitch, "stitch", 3, "Stitch length in viewBox units (thread)")
	cmd.Flags().Float64Var(&gap, "gap", 2, "Gap length in viewBox units (thread)")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}
