package export

import (
	"fmt"
	"io"

	"sashiko-tools/pkg/pattern"
)

// Options is the full export parameter surface accepted from the UI layer.
// Physical sizes (tile, final size, margin) are interpreted in Unit;
// stitch geometry is always millimeters.
type Options struct {
	// Sizing: TileSize sets one tile's physical size; alternatively
	// FinalWidth/FinalHeight set the overall output size and the tile size
	// is derived. FinalWidth+FinalHeight win when both are positive.
	TileSize    float64
	FinalWidth  float64
	FinalHeight float64

	Rows      int
	Cols      int
	RowOffset float64 // 0..1 fraction of a tile, staggers odd rows

	PaperSize string // A4, A3, Letter, Legal
	Unit      string // "mm" (default) or "in"
	Margin    float64

	BackgroundColor string
	ThreadColor     string
	StrokeWidthMM   float64
	StitchLengthMM  float64
	GapLengthMM     float64

	PatternName            string
	IncludeCalibration     bool
	IncludeCropMarks       bool
	IncludeSettingsSummary bool
}

const (
	calibrationSideMM = 50
	cropMarkLengthMM  = 5
	cropMarkGapMM     = 2
)

// layout is the resolved tiling geometry in millimeters.
type layout struct {
	tileMM      float64
	rowOffsetMM float64
	patternWMM  float64
	patternHMM  float64
	rows, cols  int
}

// computeLayout resolves the sizing mode. In final-size mode the tile is
// min(width/cols, height/rows) so it always fits uniformly; tiles are never
// stretched non-uniformly to cover an aspect mismatch.
func computeLayout(opts Options) (layout, error) {
	if opts.Rows < 1 || opts.Cols < 1 {
		return layout{}, fmt.Errorf("export: grid must be at least 1x1, got %dx%d", opts.Rows, opts.Cols)
	}
	if opts.RowOffset < 0 || opts.RowOffset > 1 {
		return layout{}, fmt.Errorf("export: row offset %g outside 0..1", opts.RowOffset)
	}

	var tile float64
	switch {
	case opts.FinalWidth > 0 && opts.FinalHeight > 0:
		tile = min(opts.FinalWidth/float64(opts.Cols), opts.FinalHeight/float64(opts.Rows))
	case opts.TileSize > 0:
		tile = opts.TileSize
	default:
		return layout{}, fmt.Errorf("export: either a tile size or a final size is required")
	}

	l := layout{
		tileMM: tile,
		rows:   opts.Rows,
		cols:   opts.Cols,
	}
	if opts.RowOffset > 0 {
		l.rowOffsetMM = opts.RowOffset * tile
	}
	l.patternWMM = float64(opts.Cols)*tile + l.rowOffsetMM
	l.patternHMM = float64(opts.Rows) * tile
	return l, nil
}

// tileOffsetMM returns a tile's lower-left corner relative to the pattern
// block's lower-left corner, in millimeters. Rows are numbered top to
// bottom while the block's Y grows upward, and odd rows are staggered by
// the row offset.
func (l layout) tileOffsetMM(row, col int) (x, y float64) {
	x = float64(col) * l.tileMM
	if row%2 == 1 {
		x += l.rowOffsetMM
	}
	y = float64(l.rows-1-row) * l.tileMM
	return x, y
}

// normalize converts inch-denominated sizes to millimeters and fills
// stitch defaults from the pattern bundle.
func (o Options) normalize(p pattern.Pattern) Options {
	if o.Unit == "in" {
		o.TileSize = InchesToMM(o.TileSize)
		o.FinalWidth = InchesToMM(o.FinalWidth)
		o.FinalHeight = InchesToMM(o.FinalHeight)
		o.Margin = InchesToMM(o.Margin)
		o.Unit = "mm"
	}
	if o.PaperSize == "" {
		o.PaperSize = "A4"
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = "#ffffff"
	}
	if o.ThreadColor == "" {
		o.ThreadColor = "#1a2b6d"
	}
	if o.StrokeWidthMM <= 0 {
		o.StrokeWidthMM = p.Defaults.StrokeWidthMM
	}
	if o.StitchLengthMM <= 0 {
		o.StitchLengthMM = p.Defaults.StitchLengthMM
	}
	if o.GapLengthMM <= 0 {
		o.GapLengthMM = p.Defaults.GapLengthMM
	}
	if o.PatternName == "" {
		o.PatternName = p.Name
	}
	return o
}

// ExportPDF renders the tiled pattern to a single-page PDF. The pipeline is
// linear: page, background, tiles, then the optional calibration square,
// settings summary, and crop marks. It either completes fully or returns an
// error; there is no partial output.
func ExportPDF(p pattern.Pattern, opts Options, w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	vb, err := p.ViewBox()
	if err != nil {
		return err
	}

	opts = opts.normalize(p)
	paper, ok := PaperSizes[opts.PaperSize]
	if !ok {
		return fmt.Errorf("export: unknown paper size %q", opts.PaperSize)
	}
	l, err := computeLayout(opts)
	if err != nil {
		return err
	}

	page := NewPage(paper)
	marginPt := MMToPoints(opts.Margin)
	originX := marginPt
	// Pattern block hangs from the top margin; page coordinates are Y-up.
	originY := page.Height() - marginPt - MMToPoints(l.patternHMM)

	br, bg, bb := parseColor(opts.BackgroundColor)
	page.FillRect(originX, originY, MMToPoints(l.patternWMM), MMToPoints(l.patternHMM), br, bg, bb)

	scale := l.tileMM / vb.Width
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			offX, offY := l.tileOffsetMM(row, col)

			err := DrawTile(page, p.Tile.SVG, TileOptions{
				ViewBox:       vb,
				ScaleMM:       scale,
				OffsetX:       originX + MMToPoints(offX),
				OffsetY:       originY + MMToPoints(offY),
				StrokeColor:   opts.ThreadColor,
				StrokeWidthMM: opts.StrokeWidthMM,
				DashMM:        opts.StitchLengthMM,
				GapMM:         opts.GapLengthMM,
			})
			if err != nil {
				return fmt.Errorf("export: tile %d,%d: %w", row, col, err)
			}
		}
	}

	if opts.IncludeCalibration {
		drawCalibration(page, marginPt)
	}
	if opts.IncludeSettingsSummary {
		drawSummary(page, marginPt, opts, l)
	}
	if opts.IncludeCropMarks {
		drawCropMarks(page, originX, originY, MMToPoints(l.patternWMM), MMToPoints(l.patternHMM))
	}

	return page.Output(w)
}

// drawCalibration draws a 50mm square anchored at the bottom-left margin
// with an instruction line, a real-world check that the print scale is 1:1.
func drawCalibration(page *Page, marginPt float64) {
	side := MMToPoints(calibrationSideMM)
	page.SetStroke(0, 0, 0, 1, 0, 0)
	x, y := marginPt, marginPt
	page.Line(x, y, x+side, y)
	page.Line(x+side, y, x+side, y+side)
	page.Line(x+side, y+side, x, y+side)
	page.Line(x, y+side, x, y)
	page.Text(x+side+MMToPoints(4), y+side/2, 9,
		fmt.Sprintf("This square should measure %dmm x %dmm when printed.",
			calibrationSideMM, calibrationSideMM))
}

// drawSummary writes the settings block used to reproduce the print.
func drawSummary(page *Page, marginPt float64, opts Options, l layout) {
	lines := []string{
		fmt.Sprintf("Pattern: %s", opts.PatternName),
		fmt.Sprintf("Tile: %.1fmm, grid %d x %d", l.tileMM, l.rows, l.cols),
		fmt.Sprintf("Final size: %.1fmm x %.1fmm", l.patternWMM, l.patternHMM),
		fmt.Sprintf("Stitch %.1fmm / gap %.1fmm, thread width %.2fmm",
			opts.StitchLengthMM, opts.GapLengthMM, opts.StrokeWidthMM),
		fmt.Sprintf("Paper: %s", opts.PaperSize),
	}

	x := page.Width() / 2
	y := marginPt + MMToPoints(calibrationSideMM)
	for _, line := range lines {
		page.Text(x, y, 8, line)
		y -= 12
	}
}

// drawCropMarks places short line pairs just outside the four corners of
// the pattern bounding box for trimming after printing on oversized paper.
func drawCropMarks(page *Page, x, y, w, h float64) {
	length := MMToPoints(cropMarkLengthMM)
	gap := MMToPoints(cropMarkGapMM)
	page.SetStroke(0, 0, 0, 0.5, 0, 0)

	corners := [4][4]float64{
		{x, y, -1, -1},       // bottom-left
		{x + w, y, 1, -1},    // bottom-right
		{x, y + h, -1, 1},    // top-left
		{x + w, y + h, 1, 1}, // top-right
	}
	for _, c := range corners {
		cx, cy, dx, dy := c[0], c[1], c[2], c[3]
		// Horizontal tick extends away from the box along X.
		page.Line(cx+dx*gap, cy, cx+dx*(gap+length), cy)
		// Vertical tick extends away from the box along Y.
		page.Line(cx, cy+dy*gap, cx, cy+dy*(gap+length))
	}
}
