package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transform is a 2D affine transform, the 2x3 matrix [ A C E ; B D F ].
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale by (sx, sy).
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotate returns a rotation by deg degrees about the origin.
func Rotate(deg float64) Transform {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Mul composes transforms: the result applies u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// ParseTransformList parses an SVG transform attribute value: a sequence of
// translate/scale/rotate/matrix function calls. Per the SVG list semantics,
// the leftmost function is applied last, so the list folds left to right
// with Mul.
func ParseTransformList(s string) (Transform, error) {
	result := Identity()
	s = strings.TrimSpace(s)
	for s != "" {
		open := strings.IndexByte(s, '(')
		close := strings.IndexByte(s, ')')
		if open < 0 || close < open {
			return Identity(), fmt.Errorf("svg: malformed transform %q", s)
		}
		name := strings.TrimSpace(s[:open])
		args, err := parseTransformArgs(s[open+1 : close])
		if err != nil {
			return Identity(), err
		}

		var t Transform
		switch name {
		case "translate":
			switch len(args) {
			case 1:
				t = Translate(args[0], 0)
			case 2:
				t = Translate(args[0], args[1])
			default:
				return Identity(), fmt.Errorf("svg: translate wants 1 or 2 args, got %d", len(args))
			}
		case "scale":
			switch len(args) {
			case 1:
				t = Scale(args[0], args[0])
			case 2:
				t = Scale(args[0], args[1])
			default:
				return Identity(), fmt.Errorf("svg: scale wants 1 or 2 args, got %d", len(args))
			}
		case "rotate":
			switch len(args) {
			case 1:
				t = Rotate(args[0])
			case 3:
				// rotate(a, cx, cy) pivots about (cx, cy).
				t = Translate(args[1], args[2]).Mul(Rotate(args[0])).Mul(Translate(-args[1], -args[2]))
			default:
				return Identity(), fmt.Errorf("svg: rotate wants 1 or 3 args, got %d", len(args))
			}
		case "matrix":
			if len(args) != 6 {
				return Identity(), fmt.Errorf("svg: matrix wants 6 args, got %d", len(args))
			}
			t = Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}
		default:
			return Identity(), fmt.Errorf("svg: unsupported transform %q", name)
		}

		result = result.Mul(t)
		s = strings.TrimLeft(s[close+1:], " \t\r\n,")
	}
	return result, nil
}

func parseTransformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("svg: bad transform argument %q: %w", f, err)
		}
		args = append(args, v)
	}
	return args, nil
}
