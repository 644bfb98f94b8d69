package vecpath

import (
	"errors"
	"testing"
)

func TestPathSVG(t *testing.T) {
	p := NewPath(0, 0).
		MoveTo(0, 0).
		LineTo(10.5, 0).
		CurveTo(1, 2, 3, 4, 5, 6).
		ClosePath()
	want := "M0,0 L10.5,0 C1,2 3,4 5,6 Z"
	if got := p.SVG(SVGOptions{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathSVGPrecision(t *testing.T) {
	p := NewPath(0, 0).MoveTo(1.0/3, 2).LineTo(0.5, 10)
	want := "M0.333,2 L0.5,10"
	if got := p.SVG(SVGOptions{MaxPrecision: 3}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPolygonSVGPoints(t *testing.T) {
	p := NewPolygon(0, 0).LineTo(0, 0).LineTo(1.25, 2).LineTo(-3, 4)
	want := "0,0 1.25,2 -3,4"
	if got := p.SVGPoints(SVGOptions{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	p := NewPath(0, 0).MoveTo(0, 0).LineTo(1, 1)
	if err := p.WriteSVG(failingWriter{}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
	poly := NewPolygon(0, 0).LineTo(1, 1)
	if err := poly.WriteSVGPoints(failingWriter{}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}
