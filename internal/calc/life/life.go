// Package life projects a measured thickness forward in time, estimates the
// remaining service life and classifies the pipe into a compliance flag.
package life

import (
	"fmt"
	"time"
)

// Flag is the three-level compliance severity.
type Flag string

const (
	Green  Flag = "GREEN"
	Yellow Flag = "YELLOW"
	Red    Flag = "RED"
)

// Status is the operator-facing disposition matching a Flag.
type Status string

const (
	SafeToContinue    Status = "SAFE_TO_CONTINUE"
	Monitor           Status = "MONITOR"
	RetireImmediately Status = "RETIRE_IMMEDIATELY"
)

// Reading is one field inspection of the pipe wall.
type Reading struct {
	MeasuredThickness float64 `toml:"measured_thickness_in" json:"measured_thickness_in"`
	CorrosionRate     float64 `toml:"corrosion_rate_mpy" json:"corrosion_rate_mpy"` // mils/year, 0 when unknown
	InspectionYear    int     `toml:"inspection_year" json:"inspection_year"`       // 0 when unknown
	InspectionMonth   int     `toml:"inspection_month" json:"inspection_month"`     // 1-12, 0 means January
}

// Thresholds tune the classification boundaries.
type Thresholds struct {
	MonitorYears  float64 `toml:"monitor_years" json:"monitor_years"`   // remaining life below this is YELLOW
	MonitorMargin float64 `toml:"monitor_margin" json:"monitor_margin"` // allowance at or below this is YELLOW, inches
}

// DefaultThresholds are the documented classification defaults: monitor
// when fewer than 5 years remain or when the allowance is 10 mils or less.
func DefaultThresholds() Thresholds {
	return Thresholds{MonitorYears: 5.0, MonitorMargin: 0.010}
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// ElapsedYears computes fractional years from an inspection date to now.
// A zero month means January, the most conservative assumption.
func ElapsedYears(year, month int) (float64, error) {
	if month < 0 || month > 12 {
		return 0, fmt.Errorf("inspection month must be 1-12, got %d", month)
	}
	if year < 1900 {
		return 0, fmt.Errorf("inspection year must be 1900 or later, got %d", year)
	}
	if month == 0 {
		month = 1
	}
	now := timeNow()
	elapsed := float64(now.Year()-year) + float64(int(now.Month())-month)/12
	if elapsed < 0 {
		return 0, fmt.Errorf("inspection date %d-%02d is in the future", year, month)
	}
	return elapsed, nil
}

// EffectiveThickness projects the measured wall forward from the inspection
// date to today at the given corrosion rate. Without a date or a positive
// rate the measurement is used as-is.
func EffectiveThickness(r Reading) (float64, error) {
	if r.InspectionYear == 0 || r.CorrosionRate <= 0 {
		return r.MeasuredThickness, nil
	}
	elapsed, err := ElapsedYears(r.InspectionYear, r.InspectionMonth)
	if err != nil {
		return 0, err
	}
	loss := r.CorrosionRate * 0.001 * elapsed // mpy to inches
	return r.MeasuredThickness - loss, nil
}

// RemainingLife estimates the years until the allowance is consumed. The
// result may be negative when retirement is overdue. A nil return marks the
// estimate as indeterminate (no usable corrosion rate) and is distinct from
// both zero and infinity.
func RemainingLife(allowance, ratempy float64) *float64 {
	if ratempy <= 0 {
		return nil
	}
	years := allowance * 1000 / ratempy
	return &years
}

// Classify maps (allowance, remaining life, effective thickness) onto a
// flag. alert is the 2009-table minimum alert thickness, 0 when not in play.
// Pure and deterministic: identical inputs always produce the same flag.
func Classify(allowance float64, remaining *float64, effective, alert float64, th Thresholds) (Flag, Status, string) {
	if allowance <= 0 {
		return Red, RetireImmediately,
			"effective thickness is at or below the governing minimum; retire immediately or perform a rigorous fitness-for-service assessment"
	}
	if remaining != nil && *remaining < th.MonitorYears {
		return Yellow, Monitor,
			fmt.Sprintf("remaining life %.1f years is inside the %.1f-year monitoring window; plan retirement or re-rate", *remaining, th.MonitorYears)
	}
	if allowance <= th.MonitorMargin {
		return Yellow, Monitor,
			fmt.Sprintf("corrosion allowance %.3f in is within the %.3f in monitoring margin", allowance, th.MonitorMargin)
	}
	if alert > 0 && effective <= alert {
		return Yellow, Monitor,
			fmt.Sprintf("effective thickness %.3f in is at or below the table alert thickness %.3f in", effective, alert)
	}
	return Green, SafeToContinue, "all criteria satisfied; the pipe can safely remain in service"
}
