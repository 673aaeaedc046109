// Package tmin computes the two minimum-thickness criteria for a resolved
// pipe and selects the governing one.
package tmin

import (
	"math"

	"Pipecheck/internal/pipe"
)

// Criterion labels which minimum governs.
type Criterion string

const (
	Pressure   Criterion = "pressure"
	Structural Criterion = "structural"
)

// Result holds both minimums and the governing selection.
type Result struct {
	Pressure      float64   `json:"tmin_pressure_in"`
	Structural    float64   `json:"tmin_structural_in"`
	Governing     float64   `json:"governing_thickness_in"`
	GoverningType Criterion `json:"governing_type"`
	FloorApplied  bool      `json:"retirement_limit_applied"`
}

// PressureMin computes the pressure-design minimum wall thickness per
// ASME B31.1 104.1.2a, t = P*D / (2*(S*E*W + P*Y)). Elbow configurations
// divide S*E*W by the B31.3 304.2.1 intrados or extrados factor with the
// centerline bend radius.
func PressureMin(p *pipe.Pipe) (float64, error) {
	sew := p.Allowable * p.E * p.W
	switch p.Config {
	case pipe.ConfigElbowInner:
		i := (4*(p.ElbowRadius/p.OD) - 1) / (4*(p.ElbowRadius/p.OD) - 2)
		sew = sew / i
	case pipe.ConfigElbowOuter:
		i := (4*(p.ElbowRadius/p.OD) + 1) / (4*(p.ElbowRadius/p.OD) + 2)
		sew = sew / i
	}

	den := 2 * (sew + p.Pressure*p.Y)
	if den <= 0 {
		return 0, &pipe.ComputationError{Quantity: "pressure minimum thickness", Detail: "non-positive denominator in the pressure-design formula"}
	}
	t := p.Pressure * p.OD / den
	if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, &pipe.ComputationError{Quantity: "pressure minimum thickness", Detail: "formula produced a non-positive thickness"}
	}
	if t >= p.OD/2 {
		return 0, &pipe.ComputationError{Quantity: "pressure minimum thickness", Detail: "required thickness exceeds the pipe radius; pressure is too high for the material"}
	}
	return t, nil
}

// StructuralMin returns the structural retirement limit: the resolved API
// 574 table value, floored by the company default retirement limit when one
// is set. The second return reports whether the floor is the binding value.
func StructuralMin(p *pipe.Pipe) (float64, bool) {
	if p.RetirementLimit > p.StructuralBase {
		return p.RetirementLimit, true
	}
	return p.StructuralBase, false
}

// Minimums computes both criteria and the governing selection. On an exact
// tie pressure governs, unless the structural side is a binding company
// floor override, which is reported as structural.
func Minimums(p *pipe.Pipe) (Result, error) {
	tp, err := PressureMin(p)
	if err != nil {
		return Result{}, err
	}
	ts, floored := StructuralMin(p)

	r := Result{Pressure: tp, Structural: ts, FloorApplied: floored}
	if tp >= ts && !(floored && tp == ts) {
		r.Governing = tp
		r.GoverningType = Pressure
	} else {
		r.Governing = ts
		r.GoverningType = Structural
	}
	return r, nil
}
