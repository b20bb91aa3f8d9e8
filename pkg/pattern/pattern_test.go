package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleJSON = `{
	"id": "jp-asanoha",
	"name": "Asanoha",
	"author": "traditional",
	"tile": {
		"svg": "<svg viewBox=\"0 0 10 10\"><line x1=\"0\" y1=\"0\" x2=\"10\" y2=\"10\"/></svg>",
		"viewBox": "0 0 10 10"
	},
	"defaults": {
		"stitchLengthMm": 3,
		"gapLengthMm": 2,
		"strokeWidthMm": 0.6,
		"snapGridMm": 5
	}
}`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(bundleJSON))
	require.NoError(t, err)
	assert.Equal(t, "Asanoha", p.Name)
	assert.Equal(t, 3.0, p.Defaults.StitchLengthMM)

	vb, err := p.ViewBox()
	require.NoError(t, err)
	assert.Equal(t, 10.0, vb.Width)
}

func TestLoadRejectsInvalidBundle(t *testing.T) {
	_, err := Load(strings.NewReader(`{"name":"x"}`))
	assert.Error(t, err, "empty tile")

	bad := strings.Replace(bundleJSON, "<line", "<image", 1)
	_, err = Load(strings.NewReader(bad))
	assert.Error(t, err, "disallowed tag")

	_, err = Load(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestValidateViewBoxMismatch(t *testing.T) {
	p, err := Load(strings.NewReader(bundleJSON))
	require.NoError(t, err)
	p.Tile.ViewBox = "bogus"
	assert.Error(t, p.Validate())
}

func TestFromSVG(t *testing.T) {
	p, err := FromSVG("plain", `<svg viewBox="0 0 20 20"><line x1="0" y1="0" x2="20" y2="20"/></svg>`)
	require.NoError(t, err)
	assert.Equal(t, "plain", p.Name)
	assert.Equal(t, "0 0 20 20", p.Tile.ViewBox)
	assert.Equal(t, 5.0, p.Defaults.SnapGridMM)
	require.NoError(t, p.Validate())
}

func TestFromSVGRequiresViewBox(t *testing.T) {
	_, err := FromSVG("plain", `<svg><line x1="0" y1="0" x2="1" y2="1"/></svg>`)
	assert.Error(t, err)
}
