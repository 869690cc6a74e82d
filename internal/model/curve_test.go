package model

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestElementEval(t *testing.T) {
	start := Pt(0, 0)

	line := LineTo(Pt(10, 0))
	diff(t, Pt(5, 0), line.Eval(start, 0.5))

	quad := QuadTo(Pt(5, 10), Pt(10, 0))
	diff(t, start, quad.Eval(start, 0), cmpopts.EquateApprox(0, approx))
	diff(t, Pt(10, 0), quad.Eval(start, 1), cmpopts.EquateApprox(0, approx))
	diff(t, Pt(5, 5), quad.Eval(start, 0.5), cmpopts.EquateApprox(0, approx))

	cubic := CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	diff(t, start, cubic.Eval(start, 0), cmpopts.EquateApprox(0, approx))
	diff(t, Pt(10, 0), cubic.Eval(start, 1), cmpopts.EquateApprox(0, approx))
	diff(t, Pt(5, 7.5), cubic.Eval(start, 0.5), cmpopts.EquateApprox(0, approx))
}

func TestElementLength(t *testing.T) {
	start := Pt(0, 0)

	diff(t, 0.0, MoveTo(Pt(100, 100)).Length(start))
	diff(t, 5.0, LineTo(Pt(3, 4)).Length(start))

	// A degenerate curve along a straight chord measures the chord.
	flat := QuadTo(Pt(5, 0), Pt(10, 0))
	diff(t, 10.0, flat.Length(start), cmpopts.EquateApprox(0, 1e-6))

	// A bulged curve is strictly longer than its chord.
	bulged := QuadTo(Pt(5, 10), Pt(10, 0))
	if got := bulged.Length(start); got <= 10 {
		t.Errorf("Length() = %v, want > chord length 10", got)
	}
}

func TestElementTruncate(t *testing.T) {
	start := Pt(0, 0)

	line := LineTo(Pt(10, 0))
	diff(t, LineTo(Pt(4, 0)), line.Truncate(start, 0.4))
	diff(t, line, line.Truncate(start, 1))
	diff(t, LineTo(start), line.Truncate(start, 0))

	// The truncated piece must end exactly where the original
	// evaluates at t, for every curve kind.
	for name, e := range map[string]Element{
		"quad":  QuadTo(Pt(5, 10), Pt(10, 0)),
		"cubic": CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
	} {
		t.Run(name, func(t *testing.T) {
			for _, tt := range []float64{0.25, 0.5, 0.75} {
				cut := e.Truncate(start, tt)
				diff(t, e.Eval(start, tt), cut.End(), cmpopts.EquateApprox(0, approx))
			}
		})
	}
}

func TestElementFlatten(t *testing.T) {
	start := Pt(0, 0)

	pts := LineTo(Pt(10, 0)).Flatten(start, 16)
	diff(t, []Point{Pt(10, 0)}, pts)

	curve := QuadTo(Pt(5, 10), Pt(10, 0)).Flatten(start, 8)
	if len(curve) != 8 {
		t.Fatalf("Flatten() yielded %d points, want 8", len(curve))
	}

	diff(t, Pt(10, 0), curve[len(curve)-1], cmpopts.EquateApprox(0, approx))
}

func TestPathLength(t *testing.T) {
	p := Path{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		MoveTo(Pt(0, 5)), // pen jump contributes no length
		LineTo(Pt(0, 8)),
	}

	diff(t, 13.0, p.Length(), cmpopts.EquateApprox(0, approx))
	diff(t, 10.0, p.LengthTo(2), cmpopts.EquateApprox(0, approx))
	diff(t, 0.0, p.LengthTo(1))
	diff(t, p.Length(), p.LengthTo(100))
}
