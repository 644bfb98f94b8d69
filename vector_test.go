package vecpath

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	diff(t, Vec(-10, 0), Vec(0, 0).Add(Vec(-10, 0)))
	diff(t, Vec(1, 2), Vec(4, 6).Sub(Vec(3, 4)))
	diff(t, Vec(3, -6), Vec(1, -2).Mul(3))
	diff(t, Vec(2, 5), Vec(4, 6).VectorAt(0.5).Add(Vec(0, 2)))
}

func TestVectorLength(t *testing.T) {
	if l := Vec(3, 4).Length(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	if l := Vec(3, 4).Length2(); l != 25 {
		t.Errorf("got squared length %v, want 25", l)
	}

	p3 := Vec(-11, 1)
	p4 := Vec(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVectorLerp(t *testing.T) {
	a := Vec(0, 0)
	b := Vec(10, 20)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Vec(2.5, 5), a.Lerp(b, 0.25))
}

func TestVectorString(t *testing.T) {
	if s := Vec(1.5, -2).String(); s != "(1.5, -2)" {
		t.Errorf("got %q", s)
	}
}

func TestVectorNaN(t *testing.T) {
	if !Vec(math.NaN(), 0).IsNaN() {
		t.Error("expected NaN vector")
	}
	if Vec(1, 2).IsNaN() {
		t.Error("unexpected NaN vector")
	}
	if !Vec(0, math.Inf(-1)).IsInf() {
		t.Error("expected infinite vector")
	}
}
