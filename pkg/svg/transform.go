package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// drawableTags are the elements the geometric operations touch. A transform
// set on a g covers its subtree, so the operations rewrite the root's
// direct drawable children only and never descend into groups.
var drawableTags = map[string]bool{
	"path": true, "line": true, "polyline": true, "polygon": true,
	"circle": true, "rect": true, "g": true,
}

// leafTags are the drawable elements that carry stroke styling themselves.
var leafTags = map[string]bool{
	"path": true, "line": true, "polyline": true, "polygon": true,
	"circle": true, "rect": true,
}

// MirrorHorizontal mirrors the tile around the right edge of its viewBox by
// prepending scale(-1,1) translate(-width,0) to each drawable element's
// transform, composing with (not replacing) any prior transform.
func MirrorHorizontal(svgText string) (string, error) {
	return prependToDrawables(svgText, func(vb ViewBox) string {
		return fmt.Sprintf("scale(-1,1) translate(%s,0)", formatNumber(-vb.Width))
	})
}

// MirrorVertical mirrors the tile around the bottom edge of its viewBox.
func MirrorVertical(svgText string) (string, error) {
	return prependToDrawables(svgText, func(vb ViewBox) string {
		return fmt.Sprintf("scale(1,-1) translate(0,%s)", formatNumber(-vb.Height))
	})
}

// Rotate90 rotates the tile 90 degrees clockwise about the viewBox center,
// so repeated rotation keeps content within bounds.
func Rotate90(svgText string) (string, error) {
	return prependToDrawables(svgText, func(vb ViewBox) string {
		cx := vb.MinX + vb.Width/2
		cy := vb.MinY + vb.Height/2
		return fmt.Sprintf("translate(%s,%s) rotate(90) translate(%s,%s)",
			formatNumber(cx), formatNumber(cy), formatNumber(-cx), formatNumber(-cy))
	})
}

func prependToDrawables(svgText string, transformFor func(ViewBox) string) (string, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	if doc.ViewBox == nil {
		return "", fmt.Errorf("svg: transform requires a viewBox")
	}
	prefix := transformFor(*doc.ViewBox)

	for _, el := range doc.Root.Elements() {
		if !drawableTags[el.Tag] {
			continue
		}
		if existing, ok := el.Attr("transform"); ok && existing != "" {
			el.SetAttr("transform", prefix+" "+existing)
		} else {
			el.SetAttr("transform", prefix)
		}
	}
	return doc.String(), nil
}

// snappedAttrs are the coordinate-bearing attributes SnapToGrid rewrites.
var snappedAttrs = []string{"x", "y", "cx", "cy", "r", "width", "height", "x1", "y1", "x2", "y2"}

// SnapToGrid rounds every coordinate to the nearest multiple of the snap
// interval. The interval is derived from the physical grid size assuming
// the viewBox spans a 100mm reference square (interval = gridSizeMm /
// (viewBoxWidth / 100)). A non-positive interval is a no-op and returns the
// input string unchanged.
//
// Path data is snapped through the structured command parser, and only
// M/L/H/V endpoints move; curve and arc commands are left untouched.
func SnapToGrid(svgText string, gridSizeMm float64) (string, error) {
	if gridSizeMm <= 0 {
		return svgText, nil
	}
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	if doc.ViewBox == nil {
		return svgText, nil
	}
	scale := doc.ViewBox.Width / 100
	interval := gridSizeMm / scale
	if interval <= 0 || math.IsInf(interval, 0) || math.IsNaN(interval) {
		return svgText, nil
	}

	doc.Root.Walk(func(el *Element) bool {
		if !leafTags[el.Tag] {
			return true
		}
		for _, name := range snappedAttrs {
			if raw, ok := el.Attr(name); ok {
				if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
					el.SetAttr(name, formatNumber(snap(v, interval)))
				}
			}
		}
		switch el.Tag {
		case "path":
			if d, ok := el.Attr("d"); ok {
				el.SetAttr("d", snapPathData(d, interval))
			}
		case "polyline", "polygon":
			if points, ok := el.Attr("points"); ok {
				el.SetAttr("points", snapPoints(points, interval))
			}
		}
		return true
	})
	return doc.String(), nil
}

func snap(v, interval float64) float64 {
	return math.Round(v/interval) * interval
}

func snapPathData(d string, interval float64) string {
	cmds := ParsePath(d)
	for i := range cmds {
		switch cmds[i].Cmd {
		case 'M', 'L':
			cmds[i].X = snap(cmds[i].X, interval)
			cmds[i].Y = snap(cmds[i].Y, interval)
		case 'H':
			cmds[i].X = snap(cmds[i].X, interval)
		case 'V':
			cmds[i].Y = snap(cmds[i].Y, interval)
		}
	}
	return SerializePath(cmds)
}

func snapPoints(points string, interval float64) string {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			out = append(out, f)
			continue
		}
		out = append(out, formatNumber(snap(v, interval)))
	}
	return strings.Join(out, " ")
}

// ThreadStyle is the running-stitch appearance applied to drawable leaves.
// Lengths are in viewBox units.
type ThreadStyle struct {
	Color       string
	StrokeWidth float64
	DashLength  float64
	GapLength   float64
}

// ApplyThreadStyle styles every drawable leaf to look like running
// stitches: stroke color and width, a dash/gap dasharray, and round caps.
// An existing fill is preserved unless it is unset or none, in which case
// the fill is pinned to none so stroked outlines stay outlines.
func ApplyThreadStyle(svgText string, style ThreadStyle) (string, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	doc.Root.Walk(func(el *Element) bool {
		if !leafTags[el.Tag] {
			return true
		}
		el.SetAttr("stroke", style.Color)
		el.SetAttr("stroke-width", formatNumber(style.StrokeWidth))
		el.SetAttr("stroke-dasharray",
			formatNumber(style.DashLength)+" "+formatNumber(style.GapLength))
		el.SetAttr("stroke-linecap", "round")
		if fill, ok := el.Attr("fill"); !ok || fill == "" || fill == "none" {
			el.SetAttr("fill", "none")
		}
		return true
	})
	return doc.String(), nil
}

// ResetThreadStyle strips only the stitch simulation (dasharray and
// linecap) from drawable leaves, leaving stroke color and width intact.
func ResetThreadStyle(svgText string) (string, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	doc.Root.Walk(func(el *Element) bool {
		if !leafTags[el.Tag] {
			return true
		}
		el.RemoveAttr("stroke-dasharray")
		el.RemoveAttr("stroke-linecap")
		return true
	})
	return doc.String(), nil
}

// SetViewBox replaces the root viewBox attribute, used after crop/resize.
func SetViewBox(svgText string, vb ViewBox) (string, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	doc.Root.SetAttr("viewBox", vb.String())
	return doc.String(), nil
}
