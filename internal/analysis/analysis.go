// Package analysis runs one complete thickness evaluation: resolve inputs,
// compute both minimums, project the wall forward and classify. Each call
// returns a fresh Result; nothing is shared or mutated between calls.
package analysis

import (
	"fmt"
	"math"
	"time"

	"Pipecheck/internal/calc/life"
	"Pipecheck/internal/calc/tmin"
	"Pipecheck/internal/pipe"
)

// Result is the flat record the report and chart writers consume.
type Result struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Pipe pipe.Pipe `json:"pipe"`

	MeasuredThickness  float64 `json:"measured_thickness_in"`
	EffectiveThickness float64 `json:"effective_thickness_in"`
	CorrosionRate      float64 `json:"corrosion_rate_mpy"`
	InspectionYear     int     `json:"inspection_year,omitempty"`
	InspectionMonth    int     `json:"inspection_month,omitempty"`

	PressureMin   float64        `json:"tmin_pressure_in"`
	StructuralMin float64        `json:"tmin_structural_in"`
	Governing     float64        `json:"governing_thickness_in"`
	GoverningType tmin.Criterion `json:"governing_type"`
	FloorApplied  bool           `json:"retirement_limit_applied"`

	CorrosionAllowance float64  `json:"corrosion_allowance_in"`
	RemainingLifeYears *float64 `json:"remaining_life_years"` // null when indeterminate

	Flag    life.Flag   `json:"flag"`
	Status  life.Status `json:"status"`
	Message string      `json:"message"`
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// Run evaluates one inspection reading against a resolved pipe.
func Run(p *pipe.Pipe, r life.Reading, th life.Thresholds) (*Result, error) {
	if !(r.MeasuredThickness > 0) || math.IsInf(r.MeasuredThickness, 0) || math.IsNaN(r.MeasuredThickness) {
		return nil, &pipe.ResolutionError{Kind: pipe.KindNumeric, Field: "measured_thickness_in",
			Detail: fmt.Sprintf("measured thickness must be a positive finite value, got %g", r.MeasuredThickness)}
	}
	// OD minus ID spans both walls; anything thicker is a unit mistake.
	if r.MeasuredThickness > 2*p.NominalWall {
		return nil, &pipe.ResolutionError{Kind: pipe.KindNumeric, Field: "measured_thickness_in",
			Detail: fmt.Sprintf("measured thickness %.3f in exceeds OD minus ID %.3f in; check the units", r.MeasuredThickness, 2*p.NominalWall)}
	}
	if r.CorrosionRate < 0 || math.IsInf(r.CorrosionRate, 0) || math.IsNaN(r.CorrosionRate) {
		return nil, &pipe.ResolutionError{Kind: pipe.KindNumeric, Field: "corrosion_rate_mpy",
			Detail: fmt.Sprintf("corrosion rate must be non-negative and finite, got %g", r.CorrosionRate)}
	}

	mins, err := tmin.Minimums(p)
	if err != nil {
		return nil, err
	}

	effective, err := life.EffectiveThickness(r)
	if err != nil {
		return nil, &pipe.ResolutionError{Kind: pipe.KindDate, Field: "inspection_year", Detail: err.Error()}
	}

	allowance := effective - mins.Governing
	remaining := life.RemainingLife(allowance, r.CorrosionRate)
	flag, status, message := life.Classify(allowance, remaining, effective, p.AlertThickness, th)

	now := timeNow()
	return &Result{
		ID:          fmt.Sprintf("TML-%s", now.Format("20060102-150405")),
		GeneratedAt: now,

		Pipe: *p,

		MeasuredThickness:  r.MeasuredThickness,
		EffectiveThickness: effective,
		CorrosionRate:      r.CorrosionRate,
		InspectionYear:     r.InspectionYear,
		InspectionMonth:    r.InspectionMonth,

		PressureMin:   mins.Pressure,
		StructuralMin: mins.Structural,
		Governing:     mins.Governing,
		GoverningType: mins.GoverningType,
		FloorApplied:  mins.FloorApplied,

		CorrosionAllowance: allowance,
		RemainingLifeYears: remaining,

		Flag:    flag,
		Status:  status,
		Message: message,
	}, nil
}
