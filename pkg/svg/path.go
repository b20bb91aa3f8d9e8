package svg

import (
	"strconv"
	"strings"
)

// PathCommand is one typed drawing command from a path d string. Cmd holds
// the canonical uppercase letter; Relative marks the lowercase variant,
// whose numeric fields are offsets until ToAbsolute resolves them.
//
// Field usage by command:
//
//	M, L, T    X, Y
//	H          X
//	V          Y
//	C          X1, Y1, X2, Y2, X, Y
//	S          X2, Y2, X, Y
//	Q          X1, Y1, X, Y
//	A          RX, RY, Rotation, LargeArc, Sweep, X, Y
//	Z          (none)
type PathCommand struct {
	Cmd      byte
	Relative bool

	X, Y     float64
	X1, Y1   float64
	X2, Y2   float64
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// commandArity is the number of numeric arguments each command consumes.
var commandArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// ParsePath tokenizes a path d string into typed commands. Repeated
// argument groups without a letter reuse the previous command (a repeated M
// continues as L, per the SVG grammar). A truncated trailing argument list
// is dropped rather than reported: the parser stops at the incomplete
// command and returns what it has.
func ParsePath(d string) []PathCommand {
	var cmds []PathCommand
	data := []byte(d)
	i := 0

	var cmd byte
	haveCmd := false

	for i < len(data) {
		i = skipPathSeparators(data, i)
		if i >= len(data) {
			break
		}

		c := data[i]
		if isPathLetter(c) {
			cmd = c
			haveCmd = true
			i++
		} else if haveCmd {
			// Implicit repetition. A moveto continues as lineto. A
			// zero-arity command cannot repeat, so trailing numbers
			// after Z end the parse instead of consuming nothing.
			if upper(cmd) == 'M' {
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			}
			if commandArity[upper(cmd)] == 0 {
				break
			}
		} else {
			// Numbers before any command letter: nothing to attach them to.
			break
		}

		upperCmd := upper(cmd)
		arity, ok := commandArity[upperCmd]
		if !ok {
			// Unknown letter: stop rather than guess at its arguments.
			break
		}

		args := make([]float64, 0, arity)
		complete := true
		for a := 0; a < arity; a++ {
			v, n := parsePathNumber(data, i)
			if n == i {
				complete = false
				break
			}
			args = append(args, v)
			i = n
		}
		if !complete {
			break
		}

		pc := PathCommand{Cmd: upperCmd, Relative: cmd >= 'a'}
		switch upperCmd {
		case 'M', 'L', 'T':
			pc.X, pc.Y = args[0], args[1]
		case 'H':
			pc.X = args[0]
		case 'V':
			pc.Y = args[0]
		case 'C':
			pc.X1, pc.Y1 = args[0], args[1]
			pc.X2, pc.Y2 = args[2], args[3]
			pc.X, pc.Y = args[4], args[5]
		case 'S':
			pc.X2, pc.Y2 = args[0], args[1]
			pc.X, pc.Y = args[2], args[3]
		case 'Q':
			pc.X1, pc.Y1 = args[0], args[1]
			pc.X, pc.Y = args[2], args[3]
		case 'A':
			pc.RX, pc.RY = args[0], args[1]
			pc.Rotation = args[2]
			pc.LargeArc = args[3] != 0
			pc.Sweep = args[4] != 0
			pc.X, pc.Y = args[5], args[6]
		}
		cmds = append(cmds, pc)
	}
	return cmds
}

// ToAbsolute resolves relative commands against a running cursor starting
// at (0, 0). H moves only the cursor X, V only the cursor Y, and Z snaps
// the cursor back to the start of the current subpath.
func ToAbsolute(cmds []PathCommand) []PathCommand {
	out := make([]PathCommand, len(cmds))
	var curX, curY float64
	var startX, startY float64

	for i, c := range cmds {
		if c.Relative {
			switch c.Cmd {
			case 'H':
				c.X += curX
			case 'V':
				c.Y += curY
			case 'C':
				c.X1 += curX
				c.Y1 += curY
				c.X2 += curX
				c.Y2 += curY
				c.X += curX
				c.Y += curY
			case 'S':
				c.X2 += curX
				c.Y2 += curY
				c.X += curX
				c.Y += curY
			case 'Q':
				c.X1 += curX
				c.Y1 += curY
				c.X += curX
				c.Y += curY
			case 'M', 'L', 'T', 'A':
				c.X += curX
				c.Y += curY
			}
			c.Relative = false
		}

		switch c.Cmd {
		case 'M':
			curX, curY = c.X, c.Y
			startX, startY = c.X, c.Y
		case 'H':
			curX = c.X
			c.Y = curY
		case 'V':
			curY = c.Y
			c.X = curX
		case 'Z':
			curX, curY = startX, startY
		default:
			curX, curY = c.X, c.Y
		}
		out[i] = c
	}
	return out
}

// SerializePath is the inverse of ParsePath for the supported command set:
// one letter per command followed by its space-separated arguments.
func SerializePath(cmds []PathCommand) string {
	var b strings.Builder
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		letter := c.Cmd
		if c.Relative {
			letter = letter - 'A' + 'a'
		}
		b.WriteByte(letter)

		var args []float64
		switch c.Cmd {
		case 'M', 'L', 'T':
			args = []float64{c.X, c.Y}
		case 'H':
			args = []float64{c.X}
		case 'V':
			args = []float64{c.Y}
		case 'C':
			args = []float64{c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y}
		case 'S':
			args = []float64{c.X2, c.Y2, c.X, c.Y}
		case 'Q':
			args = []float64{c.X1, c.Y1, c.X, c.Y}
		case 'A':
			args = []float64{c.RX, c.RY, c.Rotation, boolFlag(c.LargeArc), boolFlag(c.Sweep), c.X, c.Y}
		}
		for _, a := range args {
			b.WriteByte(' ')
			b.WriteString(formatNumber(a))
		}
	}
	return b.String()
}

func boolFlag(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func isPathLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func skipPathSeparators(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// parsePathNumber scans one signed decimal literal (with optional exponent)
// starting at or after pos. It returns the value and the index past the
// literal; a return index equal to pos means no number was found.
func parsePathNumber(data []byte, pos int) (float64, int) {
	i := skipPathSeparators(data, pos)
	start := i

	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	digits := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
		digits++
	}
	if i < len(data) && data[i] == '.' {
		i++
		for i < len(data) && data[i] >= '0' && data[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, pos
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(data) && data[j] >= '0' && data[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	v, err := strconv.ParseFloat(string(data[start:i]), 64)
	if err != nil {
		return 0, pos
	}
	return v, i
}
