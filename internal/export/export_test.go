package export

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/vecpath"
)

var red = color.NRGBA{R: 255, A: 255}

func square() *vecpath.Polygon {
	p := vecpath.NewPolygon(0, 0).LineTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10)
	p.Fill = vecpath.Solid(red)
	return p
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "gif", nil, Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPageLayout(t *testing.T) {
	a := vecpath.NewPolygon(0, 0).LineTo(-5, 0).LineTo(5, 10)
	b := vecpath.NewPolygon(100, 100).LineTo(0, 0).LineTo(1, 2)
	empty := vecpath.NewPolygon(-1000, -1000)

	pg := newPage([]*vecpath.Polygon{a, empty, b}, Options{Margin: 1, Scale: 2})
	assert.Equal(t, vecpath.Rect{X0: -5, Y0: 0, X1: 101, Y1: 102}, pg.box)
	assert.Equal(t, vecpath.Sz(214, 206), pg.size())
	assert.Equal(t, vecpath.Vec(1, 1), pg.point(a, vecpath.Vec(-5, 0)))
	assert.Equal(t, vecpath.Vec(211, 201), pg.point(b, vecpath.Vec(0, 0)))

	pg = newPage(nil, Options{})
	assert.Equal(t, 1.0, pg.scale)
	w, h, err := pg.pixels()
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestWriteSVG(t *testing.T) {
	p := square()
	p.Stroke = vecpath.Solid(color.NRGBA{B: 255, A: 255})
	p.StrokeWidth = 0.5
	p.StrokeDash = []float64{2, 1}
	p.FillRule = vecpath.EvenOdd
	unfilled := vecpath.NewPolygon(5, 5).LineTo(1.23456, 0).LineTo(2, 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "svg", []*vecpath.Polygon{p, unfilled, vecpath.NewPolygon(0, 0)}, Options{Margin: 2, MaxPrecision: 2}))
	out := buf.String()

	assert.Contains(t, out, `width="14" height="14" viewBox="0 0 14 14"`)
	assert.Contains(t, out, `<g transform="translate(2 2) scale(1) translate(0 0)">`)
	assert.Contains(t, out, `<polygon transform="translate(0 0)" fill="#ff0000" fill-rule="evenodd" stroke="#0000ff" stroke-width="0.5" stroke-dasharray="2 1" points="0,0 10,0 10,10 0,10"/>`)
	assert.Contains(t, out, `<polygon transform="translate(5 5)" fill="none" points="1.23,0 2,2"/>`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("<polygon")))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "png", []*vecpath.Polygon{square()}, Options{Margin: 5}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, red, color.NRGBAModel.Convert(img.At(10, 10)))
	assert.Equal(t, color.NRGBA{}, color.NRGBAModel.Convert(img.At(1, 1)))
}

func TestWritePNGPageSize(t *testing.T) {
	huge := vecpath.NewPolygon(0, 0).LineTo(0, 0).LineTo(1e10, 0).LineTo(1e10, 1e10)
	huge.Fill = vecpath.Solid(red)
	overflow := vecpath.NewPolygon(0, 0).LineTo(-1e308, 0).LineTo(1e308, 0).LineTo(0, 1)
	overflow.Fill = vecpath.Solid(red)
	nan := vecpath.NewPolygon(0, 0).LineTo(math.NaN(), 0).LineTo(1, 1)

	for _, poly := range []*vecpath.Polygon{huge, overflow, nan} {
		err := Write(&bytes.Buffer{}, "png", []*vecpath.Polygon{poly}, Options{})
		assert.ErrorIs(t, err, ErrPageSize)
	}

	edge := vecpath.NewPolygon(0, 0).LineTo(0, 0).LineTo(MaxPixels, 1)
	assert.NoError(t, Write(&bytes.Buffer{}, "png", []*vecpath.Polygon{edge}, Options{}))
}

func TestWritePDF(t *testing.T) {
	outline := vecpath.NewPolygon(0, 0).LineTo(0, 0).LineTo(20, 0).LineTo(20, 20)
	outline.Stroke = vecpath.Solid(color.NRGBA{A: 255})
	outline.StrokeWidth = 1

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "pdf", []*vecpath.Polygon{square(), outline}, Options{Margin: 10}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteJSON(t *testing.T) {
	p := vecpath.NewPolygon(3, 4).LineTo(1.0/3, 2)
	p.Stroke = vecpath.Solid(red)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", []*vecpath.Polygon{p}, Options{MaxPrecision: 3}))

	var got struct {
		Polygons []struct {
			X, Y   float64
			Fill   string
			Stroke string
			Points [][2]float64
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Polygons, 1)
	pj := got.Polygons[0]
	assert.Equal(t, 3.0, pj.X)
	assert.Equal(t, 4.0, pj.Y)
	assert.Empty(t, pj.Fill)
	assert.Equal(t, "#ff0000", pj.Stroke)
	assert.Equal(t, [][2]float64{{0.333, 2}}, pj.Points)
}
