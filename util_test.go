package boundary

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxFloat(tol float64) cmp.Option {
	return cmp.Comparer(func(x, y float64) bool {
		return math.Abs(x-y) <= tol
	})
}

func approxComplex(tol float64) cmp.Option {
	return cmp.Comparer(func(x, y complex128) bool {
		return cmplx.Abs(x-y) <= tol
	})
}
