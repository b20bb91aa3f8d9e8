package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Page is a single PDF page with a Y-up point-unit coordinate system, the
// native PDF convention the tile renderer draws in. fpdf's user space is
// top-left Y-down, so the one flip between the two conventions lives here
// and nowhere else.
type Page struct {
	pdf    *fpdf.Fpdf
	width  float64 // pt
	height float64 // pt
}

// NewPage creates a one-page document sized to the given paper format.
func NewPage(paper PaperSize) *Page {
	w := MMToPoints(paper.WidthMM)
	h := MMToPoints(paper.HeightMM)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "Custom",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	return &Page{pdf: pdf, width: w, height: h}
}

// Width returns the page width in points.
func (p *Page) Width() float64 { return p.width }

// Height returns the page height in points.
func (p *Page) Height() float64 { return p.height }

func (p *Page) flipY(y float64) float64 { return p.height - y }

// SetStroke sets the pen for subsequent line work. A non-positive dash
// length draws solid lines.
func (p *Page) SetStroke(r, g, b int, widthPt, dashPt, gapPt float64) {
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetLineWidth(widthPt)
	p.pdf.SetLineCapStyle("round")
	if dashPt > 0 {
		p.pdf.SetDashPattern([]float64{dashPt, gapPt}, 0)
	} else {
		p.pdf.SetDashPattern([]float64{}, 0)
	}
}

// Line draws a segment between two Y-up points using the current pen.
func (p *Page) Line(x1, y1, x2, y2 float64) {
	p.pdf.Line(x1, p.flipY(y1), x2, p.flipY(y2))
}

// FillRect fills an axis-aligned rectangle whose lower-left corner is
// (x, y) in Y-up space. No border is drawn.
func (p *Page) FillRect(x, y, w, h float64, r, g, b int) {
	p.pdf.SetFillColor(r, g, b)
	p.pdf.Rect(x, p.flipY(y+h), w, h, "F")
}

// FillPolygon fills a polygon given as Y-up points. No border is drawn.
func (p *Page) FillPolygon(pts [][2]float64, r, g, b int) {
	if len(pts) < 3 {
		return
	}
	p.pdf.SetFillColor(r, g, b)
	fp := make([]fpdf.PointType, len(pts))
	for i, pt := range pts {
		fp[i] = fpdf.PointType{X: pt[0], Y: p.flipY(pt[1])}
	}
	p.pdf.Polygon(fp, "F")
}

// Text draws a string whose baseline starts at (x, y) in Y-up space.
func (p *Page) Text(x, y, sizePt float64, s string) {
	p.pdf.SetFontSize(sizePt)
	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.Text(x, p.flipY(y), s)
}

// Output serializes the document. The export either fully succeeds or
// fails; there is no partial PDF.
func (p *Page) Output(w io.Writer) error {
	return p.pdf.Output(w)
}
