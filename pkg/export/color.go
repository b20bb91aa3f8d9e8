package export

import "strconv"

// namedColors covers the color keywords patterns commonly carry. Anything
// unrecognized falls back to black, which keeps output visible on paper.
var namedColors = map[string][3]int{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"blue":  {0, 0, 255},
	"navy":  {0, 0, 128},
	"gray":  {128, 128, 128},
	"grey":  {128, 128, 128},
}

// parseColor resolves a #rgb/#rrggbb hex value or a color keyword to RGB.
func parseColor(s string) (r, g, b int) {
	if c, ok := namedColors[s]; ok {
		return c[0], c[1], c[2]
	}
	if len(s) == 4 && s[0] == '#' {
		// #rgb shorthand doubles each digit.
		rv := hexNibble(s[1])
		gv := hexNibble(s[2])
		bv := hexNibble(s[3])
		return rv*16 + rv, gv*16 + gv, bv*16 + bv
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
		}
	}
	return 0, 0, 0
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// isNoFill reports whether a fill attribute value means "do not fill".
func isNoFill(fill string) bool {
	return fill == "" || fill == "none" || fill == "transparent"
}
