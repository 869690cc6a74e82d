package domain

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	m "github.com/aberke/fractals/internal/model"
)

const approx = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()

	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func diffApprox(t *testing.T, want, got any) {
	t.Helper()
	diff(t, want, got, cmpopts.EquateApprox(0, approx))
}

// endpointMultiset renders every LineTo endpoint rounded to 6 decimals
// and sorted, so two paths can be compared ignoring emission order.
func endpointMultiset(p m.Path) []string {
	out := make([]string, 0, len(p))

	for _, e := range p {
		if e.Kind == m.LineToKind {
			out = append(out, fmt.Sprintf("%.6f,%.6f", e.P0.X, e.P0.Y))
		}
	}

	sort.Strings(out)

	return out
}
