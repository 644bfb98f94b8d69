package vecpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a tolerance suitable for accumulated lengths.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Vector, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Length(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
