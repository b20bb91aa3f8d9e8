package export

// Exact conversion constants. The calibration square depends on these being
// dimensionally correct, so they are never approximated.
const (
	MMPerInch     = 25.4
	PointsPerInch = 72.0
)

// MMToPoints converts millimeters to PDF points.
func MMToPoints(mm float64) float64 {
	return mm / MMPerInch * PointsPerInch
}

// PointsToMM converts PDF points to millimeters.
func PointsToMM(pt float64) float64 {
	return pt / PointsPerInch * MMPerInch
}

// InchesToMM converts inches to millimeters.
func InchesToMM(in float64) float64 {
	return in * MMPerInch
}

// PaperSize is a page format in millimeters.
type PaperSize struct {
	WidthMM  float64
	HeightMM float64
}

// PaperSizes maps the supported paper size names to their dimensions.
var PaperSizes = map[string]PaperSize{
	"A4":     {WidthMM: 210, HeightMM: 297},
	"A3":     {WidthMM: 297, HeightMM: 420},
	"Letter": {WidthMM: 215.9, HeightMM: 279.4},
	"Legal":  {WidthMM: 215.9, HeightMM: 355.6},
}
