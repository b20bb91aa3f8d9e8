package svg

import (
	"strconv"
	"strings"
)

// ViewBox is the rectangular coordinate frame of a tile, as carried by the
// SVG viewBox attribute ("minX minY width height"). It is a value type; a
// new ViewBox is produced whenever the frame changes.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// ParseViewBox parses the canonical 4-token viewBox form. It returns false
// for anything else: wrong token count, non-numeric tokens, or a
// non-positive width/height.
func ParseViewBox(text string) (ViewBox, bool) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return ViewBox{}, false
	}

	var nums [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, false
		}
		nums[i] = v
	}

	vb := ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}
	if vb.Width <= 0 || vb.Height <= 0 {
		return ViewBox{}, false
	}
	return vb, true
}

// String renders the 4-token form with plain decimal tokens, so that
// ParseViewBox(vb.String()) round-trips.
func (vb ViewBox) String() string {
	return formatNumber(vb.MinX) + " " + formatNumber(vb.MinY) + " " +
		formatNumber(vb.Width) + " " + formatNumber(vb.Height)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
