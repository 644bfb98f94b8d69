// Package document reads and writes path documents, the JSON or YAML files
// the vecpath command operates on.
package document

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"honnef.co/go/vecpath"
)

//go:embed schema.json
var schemaJSON []byte

var schema = gojsonschema.NewBytesLoader(schemaJSON)

// ErrInvalid is wrapped by errors about malformed documents.
var ErrInvalid = errors.New("invalid document")

// Format is the serialization of a document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks a format from a file name's extension. Anything that isn't
// YAML is treated as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

type document struct {
	Paths []pathDoc `json:"paths" yaml:"paths"`
}

type pathDoc struct {
	X           float64     `json:"x,omitempty" yaml:"x,omitempty"`
	Y           float64     `json:"y,omitempty" yaml:"y,omitempty"`
	Fill        string      `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke      string      `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth float64     `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	StrokeDash  []float64   `json:"strokeDash,omitempty" yaml:"strokeDash,omitempty"`
	FillRule    string      `json:"fillRule,omitempty" yaml:"fillRule,omitempty"`
	Anchors     []anchorDoc `json:"anchors" yaml:"anchors"`
}

type anchorDoc struct {
	Cmd string    `json:"cmd" yaml:"cmd"`
	Pts []float64 `json:"pts,omitempty" yaml:"pts,omitempty"`
}

// Decode validates data against the document schema and builds its paths.
func Decode(data []byte, format Format) ([]*vecpath.Path, error) {
	var (
		doc    document
		loader gojsonschema.JSONLoader
	)
	switch format {
	case JSON:
		loader = gojsonschema.NewBytesLoader(data)
	case YAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
		}
		loader = gojsonschema.NewGoLoader(v)
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	res, err := gojsonschema.Validate(schema, loader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	if format == YAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	paths := make([]*vecpath.Path, 0, len(doc.Paths))
	for i, pd := range doc.Paths {
		p, err := pd.build()
		if err != nil {
			return nil, fmt.Errorf("%w: path %d: %s", ErrInvalid, i, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (pd pathDoc) build() (*vecpath.Path, error) {
	p := vecpath.NewPath(pd.X, pd.Y)
	var err error
	if p.Fill, err = parsePaint(pd.Fill); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if p.Stroke, err = parsePaint(pd.Stroke); err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}
	if p.FillRule, err = vecpath.ParseFillRule(pd.FillRule); err != nil {
		return nil, err
	}
	p.StrokeWidth = pd.StrokeWidth
	p.StrokeDash = pd.StrokeDash

	for _, a := range pd.Anchors {
		pts := a.Pts
		switch a.Cmd {
		case "move":
			p.MoveTo(pts[0], pts[1])
		case "line":
			p.LineTo(pts[0], pts[1])
		case "curve":
			p.CurveTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case "close":
			p.ClosePath()
		default:
			return nil, fmt.Errorf("unknown command %q", a.Cmd)
		}
	}
	return p, nil
}

func parsePaint(s string) (vecpath.Paint, error) {
	if s == "" || s == "none" {
		return vecpath.Paint{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return vecpath.Paint{}, err
	}
	r, g, b := c.RGB255()
	return vecpath.Solid(color.NRGBA{R: r, G: g, B: b, A: 255}), nil
}

func formatPaint(p vecpath.Paint) string {
	if !p.Set {
		return ""
	}
	return HexColor(p.Color)
}

// HexColor formats c as #rrggbb, dropping alpha.
func HexColor(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Encode serializes paths as an indented JSON document. Anchors are written
// as stored, including any implicit leading move.
func Encode(paths []*vecpath.Path) ([]byte, error) {
	doc := document{Paths: make([]pathDoc, 0, len(paths))}
	for _, p := range paths {
		pd := pathDoc{
			X:           p.X,
			Y:           p.Y,
			Fill:        formatPaint(p.Fill),
			Stroke:      formatPaint(p.Stroke),
			StrokeWidth: p.StrokeWidth,
			StrokeDash:  p.StrokeDash,
			Anchors:     make([]anchorDoc, 0, p.Len()),
		}
		if p.FillRule != vecpath.NonZero {
			pd.FillRule = p.FillRule.String()
		}
		for a := range p.Anchors() {
			ad := anchorDoc{Cmd: a.Command.String()}
			switch a.Command {
			case vecpath.MoveCommand, vecpath.LineCommand:
				ad.Pts = []float64{a.Vec1.X, a.Vec1.Y}
			case vecpath.CurveCommand:
				ad.Pts = []float64{a.Vec1.X, a.Vec1.Y, a.Vec2.X, a.Vec2.Y, a.Vec3.X, a.Vec3.Y}
			}
			pd.Anchors = append(pd.Anchors, ad)
		}
		doc.Paths = append(doc.Paths, pd)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return out, nil
}
