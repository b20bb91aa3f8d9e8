package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPreviewSVG(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPreviewSVG(testPattern(t), PreviewOptions{Rows: 2, Cols: 3}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, `viewBox="0 0 30 20"`)

	// One translated group per stamp.
	assert.Equal(t, 6, strings.Count(out, `<g transform="translate(`))
	// The thread style made it onto the stamped content.
	assert.Contains(t, out, "stroke-dasharray")
	assert.Contains(t, out, `stroke="#1a2b6d"`)
}

func TestExportPreviewSVGRowOffset(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPreviewSVG(testPattern(t), PreviewOptions{Rows: 2, Cols: 2, RowOffset: 0.5}, &buf)
	require.NoError(t, err)

	out := buf.String()
	// Offset widens the canvas by half a tile and staggers the second row.
	assert.Contains(t, out, `viewBox="0 0 25 20"`)
	assert.Contains(t, out, `translate(5,10)`)
	assert.Contains(t, out, `translate(15,10)`)
}

func TestExportPreviewSVGBadGrid(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPreviewSVG(testPattern(t), PreviewOptions{Rows: 0, Cols: 2}, &buf)
	assert.Error(t, err)
}
