// Package tables holds the static reference data the resolver and the
// thickness engine look values up in: ASME B36.10M pipe geometry, ASME B31.1
// Y coefficients and weld factors, API 574 structural minimums and ANSI B16.9
// elbow radii. Everything here is read-only after process start.
package tables

import "sort"

// Outside diameter per NPS, inches (ASME B36.10M). OD does not depend on
// the schedule.
var outsideDiameter = map[float64]float64{
	0.5:  0.840,
	0.75: 1.050,
	1:    1.315,
	1.25: 1.660,
	1.5:  1.900,
	2:    2.375,
	2.5:  2.875,
	3:    3.500,
	3.5:  4.000,
	4:    4.500,
	5:    5.563,
	6:    6.625,
	8:    8.625,
	10:   10.750,
	12:   12.750,
	14:   14.000,
	16:   16.000,
	18:   18.000,
	20:   20.000,
	24:   24.000,
}

// Nominal wall thickness per schedule and NPS, inches (ASME B36.10M).
// A missing entry means the combination is not published, not that the
// wall is zero.
var nominalWall = map[int]map[float64]float64{
	10: {
		0.5: 0.083, 0.75: 0.083, 1: 0.109, 1.25: 0.109, 1.5: 0.109,
		2: 0.109, 2.5: 0.120, 3: 0.120, 3.5: 0.120, 4: 0.120,
		5: 0.134, 6: 0.134, 8: 0.148, 10: 0.165, 12: 0.180,
		14: 0.250, 16: 0.250, 18: 0.250, 20: 0.250, 24: 0.250,
	},
	40: {
		0.5: 0.109, 0.75: 0.113, 1: 0.133, 1.25: 0.140, 1.5: 0.145,
		2: 0.154, 2.5: 0.203, 3: 0.216, 3.5: 0.226, 4: 0.237,
		5: 0.258, 6: 0.280, 8: 0.322, 10: 0.365, 12: 0.406,
		14: 0.438, 16: 0.500, 18: 0.562, 20: 0.594, 24: 0.688,
	},
	80: {
		0.5: 0.147, 0.75: 0.154, 1: 0.179, 1.25: 0.191, 1.5: 0.200,
		2: 0.218, 2.5: 0.276, 3: 0.300, 3.5: 0.318, 4: 0.337,
		5: 0.375, 6: 0.432, 8: 0.500, 10: 0.594, 12: 0.688,
		14: 0.750, 16: 0.844, 18: 0.938, 20: 1.031, 24: 1.219,
	},
	// Schedule 120 is not published below NPS 4.
	120: {
		4: 0.438, 5: 0.500, 6: 0.562, 8: 0.719, 10: 0.844,
		12: 1.000, 14: 1.094, 16: 1.219, 18: 1.375, 20: 1.500, 24: 1.812,
	},
	// Schedule 160 is not published for NPS 3.5.
	160: {
		0.5: 0.188, 0.75: 0.219, 1: 0.250, 1.25: 0.250, 1.5: 0.281,
		2: 0.344, 2.5: 0.375, 3: 0.438, 4: 0.531, 5: 0.625,
		6: 0.719, 8: 0.906, 10: 1.125, 12: 1.312, 14: 1.406,
		16: 1.594, 18: 1.781, 20: 1.969, 24: 2.344,
	},
}

// OutsideDiameter returns the outside diameter for an NPS.
func OutsideDiameter(nps float64) (float64, bool) {
	od, ok := outsideDiameter[nps]
	return od, ok
}

// Geometry returns the outside diameter and the nominal wall thickness for
// an (NPS, schedule) pair. ok is false when the pair is not published.
func Geometry(nps float64, schedule int) (od, wall float64, ok bool) {
	walls, ok := nominalWall[schedule]
	if !ok {
		return 0, 0, false
	}
	wall, ok = walls[nps]
	if !ok {
		return 0, 0, false
	}
	od, ok = outsideDiameter[nps]
	if !ok {
		return 0, 0, false
	}
	return od, wall, true
}

// Schedules lists the supported schedules in ascending order.
func Schedules() []int {
	out := make([]int, 0, len(nominalWall))
	for s := range nominalWall {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Sizes lists the NPS values published for a schedule, ascending.
func Sizes(schedule int) []float64 {
	walls, ok := nominalWall[schedule]
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(walls))
	for nps := range walls {
		out = append(out, nps)
	}
	sort.Float64s(out)
	return out
}
