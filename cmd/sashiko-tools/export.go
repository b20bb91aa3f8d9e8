package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sashiko-tools/pkg/export"
)

func newExportCommand() *cobra.Command {
	var (
		output string
		opts   export.Options
	)
	cmd := &cobra.Command{
		Use:   "export <file.svg|pattern.json>",
		Short: "Export a tiled pattern as a print-scale PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPattern(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := export.ExportPDF(p, opts, f); err != nil {
				return fmt.Errorf("export PDF: %w", err)
			}
			fmt.Printf("Exported %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF path")
	cmd.Flags().Float64Var(&opts.TileSize, "tile-size", 0, "Tile size (tile-size mode)")
	cmd.Flags().Float64Var(&opts.FinalWidth, "final-width", 0, "Overall width (final-size mode)")
	cmd.Flags().Float64Var(&opts.FinalHeight, "final-height", 0, "Overall height (final-size mode)")
	cmd.Flags().IntVar(&opts.Rows, "rows", 1, "Tile rows")
	cmd.Flags().IntVar(&opts.Cols, "cols", 1, "Tile columns")
	cmd.Flags().Float64Var(&opts.RowOffset, "row-offset", 0, "Odd-row stagger, 0..1 of a tile")
	cmd.Flags().StringVar(&opts.PaperSize, "paper", "A4", "Paper size (A4, A3, Letter, Legal)")
	cmd.Flags().StringVar(&opts.Unit, "unit", "mm", "Size unit (mm or in)")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 10, "Page margin")
	cmd.Flags().StringVar(&opts.BackgroundColor, "background", "#ffffff", "Background color")
	cmd.Flags().StringVar(&opts.ThreadColor, "thread-color", "#1a2b6d", "Thread color")
	cmd.Flags().Float64Var(&opts.StrokeWidthMM, "stroke-width", 0, "Thread width in mm (0 = pattern default)")
	cmd.Flags().Float64Var(&opts.StitchLengthMM, "stitch-length", 0, "Stitch length in mm (0 = pattern default)")
	cmd.Flags().Float64Var(&opts.GapLengthMM, "gap-length", 0, "Stitch gap in mm (0 = pattern default)")
	cmd.Flags().StringVar(&opts.PatternName, "name", "", "Pattern name for the summary block")
	cmd.Flags().BoolVar(&opts.IncludeCalibration, "calibration", true, "Draw the 50mm calibration square")
	cmd.Flags().BoolVar(&opts.IncludeCropMarks, "crop-marks", true, "Draw corner crop marks")
	cmd.Flags().BoolVar(&opts.IncludeSettingsSummary, "summary", true, "Draw the settings summary block")
	return cmd
}

func newPreviewCommand() *cobra.Command {
	var (
		output string
		opts   export.PreviewOptions
	)
	cmd := &cobra.Command{
		Use:   "preview <file.svg|pattern.json>",
		Short: "Write the tiled preview as a standalone SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPattern(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".preview.svg"
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := export.ExportPreviewSVG(p, opts, f); err != nil {
				return fmt.Errorf("export preview: %w", err)
			}
			fmt.Printf("Exported %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SVG path")
	cmd.Flags().IntVar(&opts.Rows, "rows", 3, "Tile rows")
	cmd.Flags().IntVar(&opts.Cols, "cols", 3, "Tile columns")
	cmd.Flags().Float64Var(&opts.RowOffset, "row-offset", 0, "Odd-row stagger, 0..1 of a tile")
	cmd.Flags().StringVar(&opts.ThreadColor, "thread-color", "", "Thread color")
	cmd.Flags().Float64Var(&opts.StrokeWidthMM, "stroke-width", 0, "Thread width in mm (0 = pattern default)")
	cmd.Flags().Float64Var(&opts.StitchLengthMM, "stitch-length", 0, "Stitch length in mm (0 = pattern default)")
	cmd.Flags().Float64Var(&opts.GapLengthMM, "gap-length", 0, "Stitch gap in mm (0 = pattern default)")
	return cmd
}
