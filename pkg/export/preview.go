package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"sashiko-tools/pkg/pattern"
	"sashiko-tools/pkg/svg"
)

// PreviewOptions control the tiled SVG preview. Stitch lengths are in
// millimeters and are converted to viewBox units with the same 100mm
// reference square the editor's snap grid assumes.
type PreviewOptions struct {
	Rows      int
	Cols      int
	RowOffset float64 // 0..1 fraction of a tile

	ThreadColor    string
	StrokeWidthMM  float64
	StitchLengthMM float64
	GapLengthMM    float64
}

// ExportPreviewSVG writes the live tiled preview as a standalone SVG
// document: rows x cols stamps of the styled tile, odd rows staggered by
// the row offset.
func ExportPreviewSVG(p pattern.Pattern, opts PreviewOptions, w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	vb, err := p.ViewBox()
	if err != nil {
		return err
	}
	if opts.Rows < 1 || opts.Cols < 1 {
		return fmt.Errorf("export: preview grid must be at least 1x1, got %dx%d", opts.Rows, opts.Cols)
	}

	if opts.ThreadColor == "" {
		opts.ThreadColor = "#1a2b6d"
	}
	if opts.StrokeWidthMM <= 0 {
		opts.StrokeWidthMM = p.Defaults.StrokeWidthMM
	}
	if opts.StitchLengthMM <= 0 {
		opts.StitchLengthMM = p.Defaults.StitchLengthMM
	}
	if opts.GapLengthMM <= 0 {
		opts.GapLengthMM = p.Defaults.GapLengthMM
	}

	unitsPerMM := vb.Width / 100
	styled, err := svg.ApplyThreadStyle(p.Tile.SVG, svg.ThreadStyle{
		Color:       opts.ThreadColor,
		StrokeWidth: opts.StrokeWidthMM * unitsPerMM,
		DashLength:  opts.StitchLengthMM * unitsPerMM,
		GapLength:   opts.GapLengthMM * unitsPerMM,
	})
	if err != nil {
		return err
	}
	doc, err := svg.Parse(styled)
	if err != nil {
		return err
	}
	inner := doc.Root.InnerXML()

	offsetUnits := opts.RowOffset * vb.Width
	totalW := float64(opts.Cols)*vb.Width + offsetUnits
	totalH := float64(opts.Rows) * vb.Height

	canvas := svgo.New(w)
	canvas.Startview(
		int(math.Ceil(totalW)), int(math.Ceil(totalH)),
		0, 0, int(math.Ceil(totalW)), int(math.Ceil(totalH)))

	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Cols; col++ {
			x := float64(col) * vb.Width
			if row%2 == 1 {
				x += offsetUnits
			}
			y := float64(row) * vb.Height
			canvas.Gtransform("translate(" + fmtUnit(x-vb.MinX) + "," + fmtUnit(y-vb.MinY) + ")")
			if _, err := io.WriteString(canvas.Writer, inner); err != nil {
				return err
			}
			canvas.Gend()
		}
	}

	canvas.End()
	return nil
}

func fmtUnit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
