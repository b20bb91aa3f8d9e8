package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sashiko-tools",
		Short: "Design-tool pipeline for sashiko stitch tile patterns",
		Long: `sashiko-tools works on tile SVGs in the restricted sashiko dialect:
validate or sanitize untrusted tiles, apply geometric edits (mirror,
rotate, snap to grid, thread styling), and export tiled output as a
print-scale PDF or an SVG preview.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newValidateCommand(),
		newSanitizeCommand(),
		newTransformCommand(),
		newExportCommand(),
		newPreviewCommand(),
	)
	return root
}

// writeOutput writes to the named file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
