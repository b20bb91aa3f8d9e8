package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sashiko-tools/pkg/svg"
)

func testTileOptions() TileOptions {
	return TileOptions{
		ViewBox:       svg.ViewBox{Width: 10, Height: 10},
		ScaleMM:       1,
		StrokeColor:   "#1a2b6d",
		StrokeWidthMM: 0.6,
		DashMM:        3,
		GapMM:         2,
	}
}

func TestPagePointFlipsY(t *testing.T) {
	opts := testTileOptions()

	// SVG Y grows downward, page Y grows upward: the top of the viewBox
	// must land above its bottom on the page.
	_, topPy := opts.pagePoint(0, 0)
	_, botPy := opts.pagePoint(0, 10)
	assert.Greater(t, topPy, botPy)
	assert.InDelta(t, MMToPoints(10), topPy, 1e-12)
	assert.InDelta(t, 0, botPy, 1e-12)
}

func TestPagePointScaleAndOffset(t *testing.T) {
	opts := testTileOptions()
	opts.ScaleMM = 2
	opts.OffsetX = 100
	opts.OffsetY = 50

	px, py := opts.pagePoint(5, 10)
	assert.InDelta(t, 100+MMToPoints(10), px, 1e-12)
	assert.InDelta(t, 50, py, 1e-12)

	px, py = opts.pagePoint(0, 0)
	assert.InDelta(t, 100, px, 1e-12)
	assert.InDelta(t, 50+MMToPoints(20), py, 1e-12)
}

func TestDrawTileAllElements(t *testing.T) {
	const tile = `<svg viewBox="0 0 10 10">
		<line x1="0" y1="0" x2="10" y2="10"/>
		<rect x="1" y="1" width="3" height="3" fill="#ff0000"/>
		<polyline points="0,5 5,5 5,0"/>
		<polygon points="6,6 8,6 8,8"/>
		<path d="M0 0 L5 5 H8 V2 Z"/>
		<circle cx="5" cy="5" r="2"/>
		<g transform="translate(1,1)"><line x1="0" y1="0" x2="1" y2="1"/></g>
	</svg>`

	page := NewPage(PaperSizes["A4"])
	err := DrawTile(page, tile, testTileOptions())
	require.NoError(t, err)
}

func TestDrawTileRejectsMalformedSVG(t *testing.T) {
	page := NewPage(PaperSizes["A4"])
	err := DrawTile(page, "<svg><line", testTileOptions())
	assert.Error(t, err)
}

func TestDrawTileRejectsBadTransform(t *testing.T) {
	page := NewPage(PaperSizes["A4"])
	tile := `<svg viewBox="0 0 10 10"><line x1="0" y1="0" x2="1" y2="1" transform="spin(8)"/></svg>`
	err := DrawTile(page, tile, testTileOptions())
	assert.Error(t, err)
}

func TestDrawTileSkipsDegenerateShapes(t *testing.T) {
	tile := `<svg viewBox="0 0 10 10">
		<rect x="1" y="1" width="0" height="3"/>
		<circle cx="5" cy="5" r="0"/>
		<polyline points="1,1"/>
	</svg>`
	page := NewPage(PaperSizes["A4"])
	err := DrawTile(page, tile, testTileOptions())
	require.NoError(t, err)
}

func TestParsePoints(t *testing.T) {
	pts := parsePoints("0,5 5.5,5 5,0")
	require.Len(t, pts, 3)
	assert.Equal(t, [2]float64{5.5, 5}, pts[1])

	// Commas and whitespace are interchangeable separators.
	pts = parsePoints("1 2,3 4")
	require.Len(t, pts, 2)
	assert.Equal(t, [2]float64{1, 2}, pts[0])
	assert.Equal(t, [2]float64{3, 4}, pts[1])

	assert.Empty(t, parsePoints(""))
}

func TestCirclePolygonOnCircle(t *testing.T) {
	pts := circlePolygon(5, 5, 2, circleSegments)
	require.Len(t, pts, circleSegments)
	for _, p := range pts {
		dx, dy := p[0]-5, p[1]-5
		assert.InDelta(t, 4, dx*dx+dy*dy, 1e-9)
	}
}
