package export

import "math"

// circlePolygon returns n evenly spaced points on the circle, starting at
// angle zero. Segment count trades visual smoothness against draw cost.
func circlePolygon(cx, cy, r float64, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}
