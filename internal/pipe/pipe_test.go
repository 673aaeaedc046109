package pipe

import (
	"errors"
	"testing"
)

func validSpec() Spec {
	return Spec{
		NPS:           2,
		Schedule:      40,
		Pressure:      300,
		PressureClass: 150,
		Metallurgy:    string(MetCarbonSteel),
		YieldStress:   33000,
	}
}

func TestResolveDefaults(t *testing.T) {
	p, err := Resolve(validSpec())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.OD != 2.375 || p.NominalWall != 0.154 {
		t.Errorf("geometry = %g/%g, want 2.375/0.154", p.OD, p.NominalWall)
	}
	if p.DesignTempF != 900 || p.TempBandF != 900 {
		t.Errorf("default design temp = %g (band %g), want 900", p.DesignTempF, p.TempBandF)
	}
	if p.Y != 0.4 {
		t.Errorf("Y = %g, want 0.4 for carbon steel at 900F", p.Y)
	}
	if p.E != 1.0 || p.W != 1.0 {
		t.Errorf("E/W = %g/%g, want 1.0/1.0 for the seamless default", p.E, p.W)
	}
	if p.Allowable != 33000*2.0/3.0 {
		t.Errorf("allowable = %g, want two thirds of yield", p.Allowable)
	}
	if p.Config != ConfigStraight || p.Joint != "seamless" || p.TableVersion != "2025" {
		t.Errorf("defaults = %s/%s/%s, want straight/seamless/2025", p.Config, p.Joint, p.TableVersion)
	}
	if p.StructuralBase != 0.053 {
		t.Errorf("structural table value = %g, want 0.053 for CS NPS 2 class 150", p.StructuralBase)
	}
	if p.AlertThickness != 0 {
		t.Errorf("alert thickness = %g, want 0 under the 2025 tables", p.AlertThickness)
	}
}

func TestResolveUnsupportedSchedule(t *testing.T) {
	s := validSpec()
	s.NPS = 3.5
	s.Schedule = 160
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("want *ResolutionError, got %v", err)
	}
	if rerr.Kind != KindGeometry || rerr.Field != "schedule" {
		t.Errorf("got kind %q field %q, want %q/%q", rerr.Kind, rerr.Field, KindGeometry, "schedule")
	}
}

func TestResolveUnknownNPS(t *testing.T) {
	s := validSpec()
	s.NPS = 7
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Field != "nps" {
		t.Fatalf("want resolution error on field nps, got %v", err)
	}
}

func TestResolveUnsupportedClass(t *testing.T) {
	s := validSpec()
	s.PressureClass = 450
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("want *ResolutionError, got %v", err)
	}
	if rerr.Kind != KindPressureClass || rerr.Field != "pressure_class" {
		t.Errorf("got kind %q field %q", rerr.Kind, rerr.Field)
	}
}

func TestResolveInvalidNumbers(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Spec)
		field string
	}{
		{"zero pressure", func(s *Spec) { s.Pressure = 0 }, "design_pressure_psi"},
		{"negative pressure", func(s *Spec) { s.Pressure = -10 }, "design_pressure_psi"},
		{"zero yield", func(s *Spec) { s.YieldStress = 0 }, "yield_stress_psi"},
		{"negative retirement limit", func(s *Spec) { s.RetirementLimit = -0.1 }, "default_retirement_limit_in"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := validSpec()
			c.edit(&s)
			_, err := Resolve(s)
			var rerr *ResolutionError
			if !errors.As(err, &rerr) {
				t.Fatalf("want *ResolutionError, got %v", err)
			}
			if rerr.Kind != KindNumeric || rerr.Field != c.field {
				t.Errorf("got kind %q field %q, want %q/%q", rerr.Kind, rerr.Field, KindNumeric, c.field)
			}
		})
	}
}

func TestResolveUnknownMetallurgy(t *testing.T) {
	s := validSpec()
	s.Metallurgy = "Unobtainium"
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Kind != KindMaterial || rerr.Field != "metallurgy" {
		t.Fatalf("want material error on metallurgy, got %v", err)
	}
}

func TestResolveUnknownJoint(t *testing.T) {
	s := validSpec()
	s.JointType = "spiral"
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Kind != KindJoint {
		t.Fatalf("want joint error, got %v", err)
	}
}

func TestResolveUnknownTableVersion(t *testing.T) {
	s := validSpec()
	s.TableVersion = "2017"
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Field != "api_table" {
		t.Fatalf("want error on api_table, got %v", err)
	}
}

func TestResolve2009Table(t *testing.T) {
	s := validSpec()
	s.TableVersion = "2009"
	p, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.StructuralBase != 0.07 || p.AlertThickness != 0.10 {
		t.Errorf("2009 values = %g/%g, want 0.07/0.10", p.StructuralBase, p.AlertThickness)
	}

	// NPS 1.25 is not published in the 2009 edition; no silent fallback.
	s.NPS = 1.25
	_, err = Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Field != "nps" {
		t.Fatalf("want resolution error on nps under 2009 tables, got %v", err)
	}
}

func TestResolveRetirementLimitBelowTable(t *testing.T) {
	s := validSpec()
	s.RetirementLimit = 0.040 // below the 0.053 table value
	_, err := Resolve(s)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) || rerr.Field != "default_retirement_limit_in" {
		t.Fatalf("want error on default_retirement_limit_in, got %v", err)
	}
}

func TestResolveElbow(t *testing.T) {
	s := validSpec()
	s.PipeConfig = string(ConfigElbowInner)
	p, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.ElbowRadius != 3.0 {
		t.Errorf("elbow radius = %g, want 3.0 for NPS 2", p.ElbowRadius)
	}

	s.PipeConfig = "tee"
	if _, err := Resolve(s); err == nil {
		t.Error("unknown pipe configuration should not resolve")
	}
}

func TestResolveStainlessUsesSSTable(t *testing.T) {
	s := validSpec()
	s.Metallurgy = string(MetSS316)
	p, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.StructuralBase != 0.046 {
		t.Errorf("SS structural value = %g, want 0.046 for NPS 2 class 150", p.StructuralBase)
	}
}

func TestResolveWeldedJointFactors(t *testing.T) {
	s := validSpec()
	s.JointType = "erw"
	s.DesignTempF = 1000
	p, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.E != 0.85 {
		t.Errorf("E = %g, want 0.85 for ERW", p.E)
	}
	if p.W != 0.95 {
		t.Errorf("W = %g, want 0.95 for a welded joint at 1000F", p.W)
	}
}

func TestMetallurgies(t *testing.T) {
	if got := Metallurgies("2025"); len(got) == 0 {
		t.Error("no metallurgies listed for 2025")
	}
	if got := Metallurgies("1997"); got != nil {
		t.Errorf("unknown version listed %v", got)
	}
}
