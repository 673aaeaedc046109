package tmin

import (
	"errors"
	"math"
	"testing"

	"Pipecheck/internal/pipe"
)

func carbonPipe(t *testing.T) *pipe.Pipe {
	t.Helper()
	p, err := pipe.Resolve(pipe.Spec{
		NPS:           2,
		Schedule:      40,
		Pressure:      300,
		PressureClass: 150,
		Metallurgy:    string(pipe.MetCarbonSteel),
		YieldStress:   33000,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return p
}

func TestPressureMinStraight(t *testing.T) {
	p := carbonPipe(t)
	got, err := PressureMin(p)
	if err != nil {
		t.Fatalf("PressureMin: %v", err)
	}
	// t = P*D / (2*(S*E*W + P*Y)) = 300*2.375 / (2*(22000 + 120))
	want := 300 * 2.375 / (2 * (22000 + 300*0.4))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PressureMin = %.6f, want %.6f", got, want)
	}
}

func TestPressureMinElbowTighterAtIntrados(t *testing.T) {
	straight := carbonPipe(t)
	ts, err := PressureMin(straight)
	if err != nil {
		t.Fatalf("straight: %v", err)
	}

	inner := *straight
	inner.Config = pipe.ConfigElbowInner
	inner.ElbowRadius = 3.0
	ti, err := PressureMin(&inner)
	if err != nil {
		t.Fatalf("inner elbow: %v", err)
	}

	outer := *straight
	outer.Config = pipe.ConfigElbowOuter
	outer.ElbowRadius = 3.0
	to, err := PressureMin(&outer)
	if err != nil {
		t.Fatalf("outer elbow: %v", err)
	}

	// The intrados needs more wall, the extrados less.
	if !(ti > ts) {
		t.Errorf("intrados %.6f should exceed straight %.6f", ti, ts)
	}
	if !(to < ts) {
		t.Errorf("extrados %.6f should be below straight %.6f", to, ts)
	}
}

func TestPressureMinNonphysical(t *testing.T) {
	p := carbonPipe(t)
	hot := *p
	hot.Allowable = 50 // pressure overwhelms the material
	hot.Pressure = 30000
	_, err := PressureMin(&hot)
	var cerr *pipe.ComputationError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ComputationError, got %v", err)
	}
}

func TestGoverningIsMax(t *testing.T) {
	p := carbonPipe(t)
	for _, pressure := range []float64{50, 300, 1200, 3000, 6000} {
		q := *p
		q.Pressure = pressure
		r, err := Minimums(&q)
		if err != nil {
			t.Fatalf("Minimums(P=%g): %v", pressure, err)
		}
		if r.Governing < r.Pressure || r.Governing < r.Structural {
			t.Errorf("P=%g: governing %.4f below a computed minimum %.4f/%.4f", pressure, r.Governing, r.Pressure, r.Structural)
		}
		if r.Governing != math.Max(r.Pressure, r.Structural) {
			t.Errorf("P=%g: governing %.4f is not the max", pressure, r.Governing)
		}
	}
}

func TestGoverningLabels(t *testing.T) {
	p := carbonPipe(t)

	low := *p
	low.Pressure = 50
	r, err := Minimums(&low)
	if err != nil {
		t.Fatal(err)
	}
	if r.GoverningType != Structural {
		t.Errorf("low pressure should be structurally governed, got %s", r.GoverningType)
	}

	high := *p
	high.Pressure = 4000
	r, err = Minimums(&high)
	if err != nil {
		t.Fatal(err)
	}
	if r.GoverningType != Pressure {
		t.Errorf("high pressure should be pressure governed, got %s", r.GoverningType)
	}
}

func TestGoverningTieGoesToPressure(t *testing.T) {
	p := carbonPipe(t)
	q := *p
	// Force an exact tie by aligning the structural table value with the
	// computed pressure minimum.
	tp, err := PressureMin(&q)
	if err != nil {
		t.Fatal(err)
	}
	q.StructuralBase = tp
	r, err := Minimums(&q)
	if err != nil {
		t.Fatal(err)
	}
	if r.GoverningType != Pressure {
		t.Errorf("exact tie should report pressure, got %s", r.GoverningType)
	}
}

func TestGoverningTieWithFloorReportsStructural(t *testing.T) {
	p := carbonPipe(t)
	q := *p
	tp, err := PressureMin(&q)
	if err != nil {
		t.Fatal(err)
	}
	q.StructuralBase = tp / 2
	q.RetirementLimit = tp // binding company floor, exactly at the tie
	r, err := Minimums(&q)
	if err != nil {
		t.Fatal(err)
	}
	if !r.FloorApplied {
		t.Fatal("floor should be applied")
	}
	if r.GoverningType != Structural {
		t.Errorf("binding floor tie should report structural, got %s", r.GoverningType)
	}
}

func TestStructuralFloorOverride(t *testing.T) {
	p := carbonPipe(t)
	q := *p
	q.RetirementLimit = 0.090
	ts, floored := StructuralMin(&q)
	if !floored || ts != 0.090 {
		t.Errorf("StructuralMin = %g (floored %v), want 0.090 with the floor applied", ts, floored)
	}

	q.RetirementLimit = 0
	ts, floored = StructuralMin(&q)
	if floored || ts != q.StructuralBase {
		t.Errorf("StructuralMin = %g (floored %v), want the table value %g", ts, floored, q.StructuralBase)
	}
}

func TestMinimumsDeterministic(t *testing.T) {
	p := carbonPipe(t)
	a, err := Minimums(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Minimums(p)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("repeated runs differ: %+v vs %+v", a, b)
	}
}
