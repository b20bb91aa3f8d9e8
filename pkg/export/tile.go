package export

import (
	"fmt"
	"strconv"
	"strings"

	"sashiko-tools/pkg/svg"
)

// circleSegments is the fixed polygon resolution used to approximate
// circles; there is no native dashed-circle primitive in the drawing API.
const circleSegments = 24

// TileOptions fully determines the output of one tile stamp.
type TileOptions struct {
	ViewBox svg.ViewBox
	// ScaleMM is the physical tile size per viewBox unit, in mm.
	ScaleMM float64
	// OffsetX/OffsetY locate the tile's lower-left corner on the page, in
	// Y-up points.
	OffsetX float64
	OffsetY float64

	StrokeColor   string
	StrokeWidthMM float64
	DashMM        float64
	GapMM         float64
}

// pagePoint converts a tile-local coordinate to Y-up page points. SVG's Y
// axis grows downward and the page's grows upward, so local Y is measured
// from the bottom of the viewBox. Every primitive goes through this same
// conversion.
func (o TileOptions) pagePoint(x, y float64) (float64, float64) {
	px := o.OffsetX + MMToPoints(x*o.ScaleMM)
	py := o.OffsetY + MMToPoints((o.ViewBox.Height-y)*o.ScaleMM)
	return px, py
}

// DrawTile parses the tile SVG and stamps every drawable leaf onto the page
// in document order, later elements on top. Stroke color, width, and dash
// always come from the options, never from the element, so patterns print
// in one ink color regardless of on-screen styling. Fill colors are the one
// exception and are read from the element when present.
func DrawTile(page *Page, svgContent string, opts TileOptions) error {
	doc, err := svg.Parse(svgContent)
	if err != nil {
		return fmt.Errorf("export: tile: %w", err)
	}

	r, g, b := parseColor(opts.StrokeColor)
	page.SetStroke(r, g, b,
		MMToPoints(opts.StrokeWidthMM),
		MMToPoints(opts.DashMM),
		MMToPoints(opts.GapMM))

	return drawChildren(page, doc.Root, svg.Identity(), opts)
}

func drawChildren(page *Page, parent *svg.Element, base svg.Transform, opts TileOptions) error {
	for _, el := range parent.Elements() {
		t := base
		if raw, ok := el.Attr("transform"); ok && raw != "" {
			parsed, err := svg.ParseTransformList(raw)
			if err != nil {
				return fmt.Errorf("export: tile: %w", err)
			}
			t = base.Mul(parsed)
		}
		if el.Tag == "g" {
			if err := drawChildren(page, el, t, opts); err != nil {
				return err
			}
			continue
		}
		if err := drawElement(page, el, t, opts); err != nil {
			return err
		}
	}
	return nil
}

func drawElement(page *Page, el *svg.Element, t svg.Transform, opts TileOptions) error {
	switch el.Tag {
	case "line":
		drawLine(page, el, t, opts)
	case "rect":
		drawRect(page, el, t, opts)
	case "polyline":
		drawPoly(page, el, t, opts, false)
	case "polygon":
		drawPoly(page, el, t, opts, true)
	case "path":
		drawPath(page, el, t, opts)
	case "circle":
		drawCircle(page, el, t, opts)
	}
	// Unknown leaves are skipped; sanitization upstream keeps them rare.
	return nil
}

func numAttr(el *svg.Element, name string) float64 {
	raw, ok := el.Attr(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func segment(page *Page, t svg.Transform, opts TileOptions, x1, y1, x2, y2 float64) {
	ax, ay := t.Apply(x1, y1)
	bx, by := t.Apply(x2, y2)
	px1, py1 := opts.pagePoint(ax, ay)
	px2, py2 := opts.pagePoint(bx, by)
	page.Line(px1, py1, px2, py2)
}

func drawLine(page *Page, el *svg.Element, t svg.Transform, opts TileOptions) {
	segment(page, t, opts,
		numAttr(el, "x1"), numAttr(el, "y1"),
		numAttr(el, "x2"), numAttr(el, "y2"))
}

// drawRect fills and strokes in two separate draw calls: a filled polygon
// with no border, then a dashed outline, because fill plus dashed stroke is
// not a single primitive in the page API.
func drawRect(page *Page, el *svg.Element, t svg.Transform, opts TileOptions) {
	x := numAttr(el, "x")
	y := numAttr(el, "y")
	w := numAttr(el, "width")
	h := numAttr(el, "height")
	if w <= 0 || h <= 0 {
		return
	}

	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	var pagePts [][2]float64
	for _, c := range corners {
		tx, ty := t.Apply(c[0], c[1])
		px, py := opts.pagePoint(tx, ty)
		pagePts = append(pagePts, [2]float64{px, py})
	}

	if fill, ok := el.Attr("fill"); ok && !isNoFill(fill) {
		fr, fg, fb := parseColor(fill)
		page.FillPolygon(pagePts, fr, fg, fb)
	}

	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		segment(page, t, opts, a[0], a[1], b[0], b[1])
	}
}

func drawPoly(page *Page, el *svg.Element, t svg.Transform, opts TileOptions, closed bool) {
	raw, ok := el.Attr("points")
	if !ok {
		return
	}
	pts := parsePoints(raw)
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		segment(page, t, opts, pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1])
	}
	if closed {
		last := pts[len(pts)-1]
		segment(page, t, opts, last[0], last[1], pts[0][0], pts[0][1])
	}
}

func parsePoints(raw string) [][2]float64 {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	var pts [][2]float64
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

// drawPath renders only M/L/H/V/Z segments. Curve and arc commands advance
// the running cursor but emit no stroke; flattening them is a deliberate
// future upgrade, and partial output beats aborting the export.
func drawPath(page *Page, el *svg.Element, t svg.Transform, opts TileOptions) {
	d, ok := el.Attr("d")
	if !ok {
		return
	}
	cmds := svg.ToAbsolute(svg.ParsePath(d))

	var curX, curY float64
	var startX, startY float64
	for _, c := range cmds {
		switch c.Cmd {
		case 'M':
			curX, curY = c.X, c.Y
			startX, startY = c.X, c.Y
		case 'L', 'H', 'V':
			segment(page, t, opts, curX, curY, c.X, c.Y)
			curX, curY = c.X, c.Y
		case 'Z':
			segment(page, t, opts, curX, curY, startX, startY)
			curX, curY = startX, startY
		default:
			// C/S/Q/T/A: no stroke, cursor still moves.
			curX, curY = c.X, c.Y
		}
	}
}

func drawCircle(page *Page, el *svg.Element, t svg.Transform, opts TileOptions) {
	cx := numAttr(el, "cx")
	cy := numAttr(el, "cy")
	r := numAttr(el, "r")
	if r <= 0 {
		return
	}

	pts := circlePolygon(cx, cy, r, circleSegments)

	if fill, ok := el.Attr("fill"); ok && !isNoFill(fill) {
		fr, fg, fb := parseColor(fill)
		var pagePts [][2]float64
		for _, p := range pts {
			tx, ty := t.Apply(p[0], p[1])
			px, py := opts.pagePoint(tx, ty)
			pagePts = append(pagePts, [2]float64{px, py})
		}
		page.FillPolygon(pagePts, fr, fg, fb)
	}

	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		segment(page, t, opts, a[0], a[1], b[0], b[1])
	}
}
