package document

import (
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/vecpath"
)

const sampleJSON = `{
  "paths": [
    {
      "x": 1, "y": 2,
      "fill": "#ff8000",
      "stroke": "none",
      "strokeWidth": 1.5,
      "strokeDash": [2, 1],
      "fillRule": "evenodd",
      "anchors": [
        {"cmd": "move", "pts": [0, 0]},
        {"cmd": "line", "pts": [10, 0]},
        {"cmd": "curve", "pts": [10, 5, 5, 10, 0, 10]},
        {"cmd": "close"}
      ]
    },
    {
      "anchors": [{"cmd": "line", "pts": [3, 4]}]
    }
  ]
}`

const sampleYAML = `
paths:
  - x: 1
    y: 2
    fill: "#ff8000"
    stroke: none
    strokeWidth: 1.5
    strokeDash: [2, 1]
    fillRule: evenodd
    anchors:
      - {cmd: move, pts: [0, 0]}
      - {cmd: line, pts: [10, 0]}
      - {cmd: curve, pts: [10, 5, 5, 10, 0, 10]}
      - {cmd: close}
  - anchors:
      - {cmd: line, pts: [3, 4]}
`

func checkSample(t *testing.T, paths []*vecpath.Path) {
	t.Helper()
	require.Len(t, paths, 2)

	p := paths[0]
	assert.Equal(t, vecpath.Position{X: 1, Y: 2}, p.Position)
	assert.Equal(t, vecpath.Solid(color.NRGBA{R: 255, G: 128, A: 255}), p.Fill)
	assert.False(t, p.Stroke.Set)
	assert.Equal(t, 1.5, p.StrokeWidth)
	assert.Equal(t, []float64{2, 1}, p.StrokeDash)
	assert.Equal(t, vecpath.EvenOdd, p.FillRule)
	assert.Equal(t, []vecpath.Anchor{
		vecpath.MoveTo(vecpath.Vec(0, 0)),
		vecpath.LineTo(vecpath.Vec(10, 0)),
		vecpath.CurveTo(vecpath.Vec(10, 5), vecpath.Vec(5, 10), vecpath.Vec(0, 10)),
		vecpath.ClosePath(),
	}, slices.Collect(p.Anchors()))

	// A leading line gets an implicit move.
	assert.Equal(t, []vecpath.Anchor{
		vecpath.MoveTo(vecpath.Vec(0, 0)),
		vecpath.LineTo(vecpath.Vec(3, 4)),
	}, slices.Collect(paths[1].Anchors()))
	assert.Equal(t, 5.0, paths[1].Length())
}

func TestDecodeJSON(t *testing.T) {
	paths, err := Decode([]byte(sampleJSON), JSON)
	require.NoError(t, err)
	checkSample(t, paths)
}

func TestDecodeYAML(t *testing.T) {
	paths, err := Decode([]byte(sampleYAML), YAML)
	require.NoError(t, err)
	checkSample(t, paths)
}

func TestDecodeInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":          `{"paths": [`,
		"missing paths":   `{}`,
		"unknown command": `{"paths": [{"anchors": [{"cmd": "arc", "pts": [0, 0]}]}]}`,
		"short curve":     `{"paths": [{"anchors": [{"cmd": "curve", "pts": [1, 2, 3, 4]}]}]}`,
		"close with pts":  `{"paths": [{"anchors": [{"cmd": "close", "pts": [1, 2]}]}]}`,
		"bad colour":      `{"paths": [{"fill": "red", "anchors": []}]}`,
		"bad fill rule":   `{"paths": [{"fillRule": "winding", "anchors": []}]}`,
		"unknown field":   `{"paths": [{"anchors": [], "opacity": 1}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc), JSON)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Decode([]byte("paths: [\n"), YAML)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = Decode([]byte(sampleJSON), Format("xml"))
	assert.Error(t, err)
}

func TestShortHexColour(t *testing.T) {
	paths, err := Decode([]byte(`{"paths": [{"stroke": "#0f0", "anchors": []}]}`), JSON)
	require.NoError(t, err)
	assert.Equal(t, vecpath.Solid(color.NRGBA{G: 255, A: 255}), paths[0].Stroke)
}

func TestEncodeRoundTrip(t *testing.T) {
	paths, err := Decode([]byte(sampleJSON), JSON)
	require.NoError(t, err)

	data, err := Encode(paths)
	require.NoError(t, err)
	again, err := Decode(data, JSON)
	require.NoError(t, err)
	checkSample(t, again)
}

func TestEncodeOmitsDefaults(t *testing.T) {
	data, err := Encode([]*vecpath.Path{vecpath.NewPath(0, 0).MoveTo(1, 2).ClosePath()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"paths": [{"anchors": [{"cmd": "move", "pts": [1, 2]}, {"cmd": "close"}]}]}`, string(data))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, YAML, FormatFor("a/b.YML"))
	assert.Equal(t, YAML, FormatFor("doc.yaml"))
	assert.Equal(t, JSON, FormatFor("doc.json"))
	assert.Equal(t, JSON, FormatFor("doc"))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#0a14ff", HexColor(color.NRGBA{R: 10, G: 20, B: 255, A: 255}))
}
