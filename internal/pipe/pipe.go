// Package pipe resolves raw user-level pipe parameters against the
// specification tables into an immutable descriptor the thickness engine
// computes from. Resolution validates eagerly and fails with a structured
// error; it never computes a minimum thickness itself.
package pipe

import (
	"math"

	"Pipecheck/internal/tables"
)

// Metallurgy is the material category of the pipe.
type Metallurgy string

const (
	MetCarbonSteel Metallurgy = "Intermediate/Low CS"
	MetSS316       Metallurgy = "SS 316/316L"
	MetSS304       Metallurgy = "SS 304/304L"
	MetInconel625  Metallurgy = "Inconel 625"
	MetCastIron    Metallurgy = "Cast Iron"
	MetOther       Metallurgy = "Other"
)

// Config is the geometric configuration of the pipe segment.
type Config string

const (
	ConfigStraight   Config = "straight"
	ConfigElbowInner Config = "90LR-inner-elbow"
	ConfigElbowOuter Config = "90LR-outer-elbow"
)

// Spec carries the raw user-level fields before resolution. Zero values on
// optional fields select the documented defaults.
type Spec struct {
	NPS             float64 `toml:"nps" json:"nps"`
	Schedule        int     `toml:"schedule" json:"schedule"`
	Pressure        float64 `toml:"design_pressure_psi" json:"design_pressure_psi"`
	PressureClass   int     `toml:"pressure_class" json:"pressure_class"`
	Metallurgy      string  `toml:"metallurgy" json:"metallurgy"`
	YieldStress     float64 `toml:"yield_stress_psi" json:"yield_stress_psi"`
	DesignTempF     float64 `toml:"design_temp_f" json:"design_temp_f"`
	PipeConfig      string  `toml:"pipe_config" json:"pipe_config"`
	JointType       string  `toml:"joint_type" json:"joint_type"`
	TableVersion    string  `toml:"api_table" json:"api_table"`
	RetirementLimit float64 `toml:"default_retirement_limit_in" json:"default_retirement_limit_in"`
}

// Pipe is the fully resolved descriptor. Treat it as read-only.
type Pipe struct {
	NPS          float64    `json:"nps"`
	Schedule     int        `json:"schedule"`
	OD           float64    `json:"outside_diameter_in"`
	NominalWall  float64    `json:"nominal_wall_in"`
	Class        int        `json:"pressure_class"`
	Pressure     float64    `json:"design_pressure_psi"`
	DesignTempF  float64    `json:"design_temp_f"`
	TempBandF    float64    `json:"temp_band_f"`
	Metallurgy   Metallurgy `json:"metallurgy"`
	YieldStress  float64    `json:"yield_stress_psi"`
	Allowable    float64    `json:"allowable_stress_psi"`
	Y            float64    `json:"y_coefficient"`
	E            float64    `json:"joint_factor"`
	W            float64    `json:"weld_strength_reduction"`
	Config       Config     `json:"pipe_config"`
	Joint        string     `json:"joint_type"`
	TableVersion string     `json:"api_table"`

	// Structural side resolved from the API 574 tables.
	StructuralBase  float64 `json:"structural_table_in"`
	AlertThickness  float64 `json:"alert_thickness_in"` // 2009 tables only, else 0
	RetirementLimit float64 `json:"default_retirement_limit_in"`

	// Centerline bend radius for elbow configurations, 0 for straight runs.
	ElbowRadius float64 `json:"elbow_radius_in"`
}

const defaultDesignTempF = 900

// yFamily maps a metallurgy onto its Y-coefficient table family.
func yFamily(m Metallurgy) (string, bool) {
	switch m {
	case MetCarbonSteel:
		return tables.YFerritic, true
	case MetSS316, MetSS304:
		return tables.YAustenitic, true
	case MetInconel625:
		return tables.YNickelGroup, true
	case MetCastIron:
		return tables.YCastIron, true
	case MetOther:
		return tables.YOtherDuctile, true
	}
	return "", false
}

// structuralFamily maps a metallurgy onto an API 574 (2025) table. Grades
// without a dedicated table fall to the carbon-steel table, which is the
// conservative published default.
func structuralFamily(m Metallurgy) string {
	switch m {
	case MetSS316, MetSS304:
		return tables.FamilySS
	default:
		return tables.FamilyCS
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Resolve validates a Spec against the specification tables and returns the
// populated descriptor. Every failure is a *ResolutionError naming the
// offending field; nothing is defaulted silently except the documented
// optional fields.
func Resolve(s Spec) (*Pipe, error) {
	schedOK := false
	for _, sched := range tables.Schedules() {
		if sched == s.Schedule {
			schedOK = true
			break
		}
	}
	if !schedOK {
		return nil, resolveErr(KindGeometry, "schedule", "schedule %d is not a supported schedule", s.Schedule)
	}
	if _, ok := tables.OutsideDiameter(s.NPS); !ok {
		return nil, resolveErr(KindGeometry, "nps", "NPS %g is not a supported size", s.NPS)
	}
	od, wall, ok := tables.Geometry(s.NPS, s.Schedule)
	if !ok {
		return nil, resolveErr(KindGeometry, "schedule", "schedule %d is not published for NPS %g", s.Schedule, s.NPS)
	}

	classOK := false
	for _, c := range tables.PressureClasses() {
		if c == s.PressureClass {
			classOK = true
			break
		}
	}
	if !classOK {
		return nil, resolveErr(KindPressureClass, "pressure_class", "class %d is not one of the supported flange classes", s.PressureClass)
	}

	if !positiveFinite(s.Pressure) {
		return nil, resolveErr(KindNumeric, "design_pressure_psi", "design pressure must be a positive finite value, got %g", s.Pressure)
	}
	if !positiveFinite(s.YieldStress) {
		return nil, resolveErr(KindNumeric, "yield_stress_psi", "yield stress must be a positive finite value, got %g", s.YieldStress)
	}

	tempF := s.DesignTempF
	if tempF == 0 {
		tempF = defaultDesignTempF
	}
	if math.IsInf(tempF, 0) || math.IsNaN(tempF) {
		return nil, resolveErr(KindNumeric, "design_temp_f", "design temperature must be finite, got %g", tempF)
	}

	met := Metallurgy(s.Metallurgy)
	family, ok := yFamily(met)
	if !ok {
		return nil, resolveErr(KindMaterial, "metallurgy", "unknown metallurgy %q", s.Metallurgy)
	}
	y, ok := tables.YCoefficient(family, tempF)
	if !ok {
		return nil, resolveErr(KindMaterial, "metallurgy", "no Y coefficient for metallurgy %q", s.Metallurgy)
	}

	cfg := Config(s.PipeConfig)
	if s.PipeConfig == "" {
		cfg = ConfigStraight
	}
	switch cfg {
	case ConfigStraight, ConfigElbowInner, ConfigElbowOuter:
	default:
		return nil, resolveErr(KindMaterial, "pipe_config", "unknown pipe configuration %q", s.PipeConfig)
	}

	joint := s.JointType
	if joint == "" {
		joint = tables.JointSeamless
	}
	e, ok := tables.JointFactor(joint)
	if !ok {
		return nil, resolveErr(KindJoint, "joint_type", "unknown joint type %q", s.JointType)
	}
	w := tables.WeldStrengthReduction(joint, tempF)

	version := s.TableVersion
	if version == "" {
		version = tables.Version2025
	}

	var structural, alert float64
	switch version {
	case tables.Version2025:
		structural, ok = tables.StructuralMin2025(structuralFamily(met), s.NPS, s.PressureClass)
		if !ok {
			return nil, resolveErr(KindMaterial, "metallurgy", "no %s structural thickness for metallurgy %q, NPS %g, class %d", version, s.Metallurgy, s.NPS, s.PressureClass)
		}
	case tables.Version2009:
		row, ok2 := tables.StructuralMin2009(s.NPS)
		if !ok2 {
			return nil, resolveErr(KindMaterial, "nps", "NPS %g is not listed in the 2009 Table 6", s.NPS)
		}
		structural, alert = row.MinStructural, row.Alert
	default:
		return nil, resolveErr(KindMaterial, "api_table", "unknown table version %q", s.TableVersion)
	}

	if s.RetirementLimit < 0 || math.IsInf(s.RetirementLimit, 0) || math.IsNaN(s.RetirementLimit) {
		return nil, resolveErr(KindNumeric, "default_retirement_limit_in", "retirement limit must be non-negative and finite, got %g", s.RetirementLimit)
	}
	if s.RetirementLimit > 0 && s.RetirementLimit < structural {
		return nil, resolveErr(KindNumeric, "default_retirement_limit_in", "company retirement limit %.3f in is below the API %s structural requirement %.3f in", s.RetirementLimit, version, structural)
	}

	var radius float64
	if cfg != ConfigStraight {
		radius, ok = tables.ElbowRadius(s.NPS)
		if !ok {
			return nil, resolveErr(KindGeometry, "pipe_config", "no elbow radius published for NPS %g", s.NPS)
		}
	}

	return &Pipe{
		NPS:             s.NPS,
		Schedule:        s.Schedule,
		OD:              od,
		NominalWall:     wall,
		Class:           s.PressureClass,
		Pressure:        s.Pressure,
		DesignTempF:     tempF,
		TempBandF:       tables.YBand(tempF),
		Metallurgy:      met,
		YieldStress:     s.YieldStress,
		Allowable:       s.YieldStress * 2 / 3,
		Y:               y,
		E:               e,
		W:               w,
		Config:          cfg,
		Joint:           joint,
		TableVersion:    version,
		StructuralBase:  structural,
		AlertThickness:  alert,
		RetirementLimit: s.RetirementLimit,
		ElbowRadius:     radius,
	}, nil
}

// Metallurgies lists the metallurgy categories resolvable under a table
// version. The set is the same for both published editions today.
func Metallurgies(version string) []Metallurgy {
	switch version {
	case tables.Version2025, tables.Version2009:
		return []Metallurgy{MetCarbonSteel, MetSS316, MetSS304, MetInconel625, MetCastIron, MetOther}
	}
	return nil
}
