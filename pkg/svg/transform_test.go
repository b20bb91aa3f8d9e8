package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileLine = `<svg viewBox="0 0 10 10"><line x1="2" y1="2" x2="8" y2="8"/></svg>`

// elementTransform parses the first drawable child's composed transform.
func elementTransform(t *testing.T, svgText string) Transform {
	t.Helper()
	doc, err := Parse(svgText)
	require.NoError(t, err)
	els := doc.Root.Elements()
	require.NotEmpty(t, els)
	raw, ok := els[0].Attr("transform")
	require.True(t, ok, "expected a transform attribute")
	tr, err := ParseTransformList(raw)
	require.NoError(t, err)
	return tr
}

func TestMirrorHorizontalTransform(t *testing.T) {
	out, err := MirrorHorizontal(tileLine)
	require.NoError(t, err)
	assert.Contains(t, out, `transform="scale(-1,1) translate(-10,0)"`)

	// A point at x stays within [0, width]: x=2 maps to 8.
	tr := elementTransform(t, out)
	x, y := tr.Apply(2, 2)
	assert.InDelta(t, 8, x, 1e-12)
	assert.InDelta(t, 2, y, 1e-12)
}

func TestMirrorHorizontalComposesExistingTransform(t *testing.T) {
	in := `<svg viewBox="0 0 10 10"><line x1="0" y1="0" x2="1" y2="1" transform="translate(2,0)"/></svg>`
	out, err := MirrorHorizontal(in)
	require.NoError(t, err)
	assert.Contains(t, out, `transform="scale(-1,1) translate(-10,0) translate(2,0)"`)
}

func TestMirrorInvolution(t *testing.T) {
	once, err := MirrorHorizontal(tileLine)
	require.NoError(t, err)
	twice, err := MirrorHorizontal(once)
	require.NoError(t, err)

	// The attribute text differs from the original, but the composed
	// transform is the identity: rendered coordinates are unchanged.
	tr := elementTransform(t, twice)
	for _, p := range [][2]float64{{2, 2}, {8, 8}, {0, 10}} {
		x, y := tr.Apply(p[0], p[1])
		assert.InDelta(t, p[0], x, 1e-9)
		assert.InDelta(t, p[1], y, 1e-9)
	}
}

func TestMirrorVerticalTransform(t *testing.T) {
	out, err := MirrorVertical(tileLine)
	require.NoError(t, err)
	assert.Contains(t, out, `transform="scale(1,-1) translate(0,-10)"`)

	tr := elementTransform(t, out)
	x, y := tr.Apply(2, 2)
	assert.InDelta(t, 2, x, 1e-12)
	assert.InDelta(t, 8, y, 1e-12)
}

func TestRotate90PivotsOnCenter(t *testing.T) {
	out, err := Rotate90(tileLine)
	require.NoError(t, err)
	assert.Contains(t, out, "translate(5,5) rotate(90) translate(-5,-5)")

	// The center is fixed; a corner moves to the next corner.
	tr := elementTransform(t, out)
	x, y := tr.Apply(5, 5)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
	x, y = tr.Apply(0, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestRotationCycle(t *testing.T) {
	svgText := tileLine
	var err error
	for i := 0; i < 4; i++ {
		svgText, err = Rotate90(svgText)
		require.NoError(t, err)
	}

	tr := elementTransform(t, svgText)
	for _, p := range [][2]float64{{2, 2}, {8, 8}, {0, 10}} {
		x, y := tr.Apply(p[0], p[1])
		assert.InDelta(t, p[0], x, 1e-9)
		assert.InDelta(t, p[1], y, 1e-9)
	}
}

func TestTransformRequiresViewBox(t *testing.T) {
	_, err := MirrorHorizontal(`<svg><line x1="0" y1="0" x2="1" y2="1"/></svg>`)
	assert.Error(t, err)
}

func TestTransformDoesNotDescendIntoGroups(t *testing.T) {
	in := `<svg viewBox="0 0 10 10"><g><line x1="0" y1="0" x2="1" y2="1"/></g></svg>`
	out, err := MirrorHorizontal(in)
	require.NoError(t, err)
	// The group gets the transform; the nested line must not, or the
	// mirror would apply twice.
	assert.Equal(t, 1, strings.Count(out, "transform="))
	assert.Contains(t, out, `<g transform=`)
}

func TestSnapToGridZeroIsExactNoOp(t *testing.T) {
	out, err := SnapToGrid(tileLine, 0)
	require.NoError(t, err)
	assert.Equal(t, tileLine, out, "zero grid must return the input unchanged")

	out, err = SnapToGrid(tileLine, -3)
	require.NoError(t, err)
	assert.Equal(t, tileLine, out)
}

func TestSnapToGridAttributes(t *testing.T) {
	in := `<svg viewBox="0 0 100 100"><line x1="2" y1="3" x2="8" y2="12"/><circle cx="4" cy="6" r="2"/></svg>`
	// viewBox width 100 over the 100mm reference square: 5mm grid snaps to
	// multiples of 5 viewBox units.
	out, err := SnapToGrid(in, 5)
	require.NoError(t, err)
	assert.Contains(t, out, `x1="0"`)
	assert.Contains(t, out, `y1="5"`)
	assert.Contains(t, out, `x2="10"`)
	assert.Contains(t, out, `y2="10"`)
	assert.Contains(t, out, `cx="5"`)
	assert.Contains(t, out, `cy="5"`)
	assert.Contains(t, out, `r="0"`)
}

func TestSnapToGridScalesWithViewBox(t *testing.T) {
	// Width 200 gives interval = 5 / (200/100) = 2.5 units.
	in := `<svg viewBox="0 0 200 200"><line x1="3.4" y1="0" x2="10" y2="6"/></svg>`
	out, err := SnapToGrid(in, 5)
	require.NoError(t, err)
	assert.Contains(t, out, `x1="2.5"`)
	assert.Contains(t, out, `x2="10"`)
	assert.Contains(t, out, `y2="5"`)
}

func TestSnapToGridPathOnlyStraightCommands(t *testing.T) {
	in := `<svg viewBox="0 0 100 100"><path d="M2 3L8 12H7V9C1 2 3 4 5 6"/></svg>`
	out, err := SnapToGrid(in, 5)
	require.NoError(t, err)

	doc, err := Parse(out)
	require.NoError(t, err)
	d, ok := doc.Root.Elements()[0].Attr("d")
	require.True(t, ok)

	cmds := ParsePath(d)
	require.Len(t, cmds, 5)
	assert.Equal(t, [2]float64{0, 5}, [2]float64{cmds[0].X, cmds[0].Y})
	assert.Equal(t, [2]float64{10, 10}, [2]float64{cmds[1].X, cmds[1].Y})
	assert.Equal(t, 5.0, cmds[2].X)
	assert.Equal(t, 10.0, cmds[3].Y)
	// The cubic is untouched.
	c := cmds[4]
	assert.Equal(t, [6]float64{1, 2, 3, 4, 5, 6}, [6]float64{c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y})
}

func TestSnapToGridPoints(t *testing.T) {
	in := `<svg viewBox="0 0 100 100"><polyline points="2,3 8,12 14,14"/></svg>`
	out, err := SnapToGrid(in, 5)
	require.NoError(t, err)
	assert.Contains(t, out, `points="0 5 10 10 15 15"`)
}

func TestApplyThreadStyle(t *testing.T) {
	out, err := ApplyThreadStyle(tileLine, ThreadStyle{
		Color:       "#1a2b6d",
		StrokeWidth: 0.5,
		DashLength:  3,
		GapLength:   2,
	})
	require.NoError(t, err)
	assert.Contains(t, out, `stroke="#1a2b6d"`)
	assert.Contains(t, out, `stroke-width="0.5"`)
	assert.Contains(t, out, `stroke-dasharray="3 2"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	assert.Contains(t, out, `fill="none"`)
}

func TestApplyThreadStylePreservesFill(t *testing.T) {
	in := `<svg viewBox="0 0 10 10"><rect width="4" height="4" fill="#ff0000"/></svg>`
	out, err := ApplyThreadStyle(in, ThreadStyle{Color: "black", StrokeWidth: 1, DashLength: 2, GapLength: 1})
	require.NoError(t, err)
	assert.Contains(t, out, `fill="#ff0000"`)
}

func TestResetThreadStyle(t *testing.T) {
	styled, err := ApplyThreadStyle(tileLine, ThreadStyle{Color: "navy", StrokeWidth: 1, DashLength: 3, GapLength: 2})
	require.NoError(t, err)

	out, err := ResetThreadStyle(styled)
	require.NoError(t, err)
	assert.NotContains(t, out, "stroke-dasharray")
	assert.NotContains(t, out, "stroke-linecap")
	// Color and width stay.
	assert.Contains(t, out, `stroke="navy"`)
	assert.Contains(t, out, `stroke-width="1"`)
}

func TestSetViewBox(t *testing.T) {
	out, err := SetViewBox(tileLine, ViewBox{MinX: 0, MinY: 0, Width: 20, Height: 20})
	require.NoError(t, err)
	assert.Contains(t, out, `viewBox="0 0 20 20"`)
	assert.NotContains(t, out, `viewBox="0 0 10 10"`)
}
