package tables

// Centerline bend radius, inches, of a long-radius 90 elbow per NPS
// (ANSI B16.9 dimension A). Nominally 1.5 x NPS; NPS 0.5 and 0.75 deviate.
var elbowRadius = map[float64]float64{
	0.5:  1.500,
	0.75: 1.125,
	1:    1.500,
	1.25: 1.875,
	1.5:  2.250,
	2:    3.000,
	2.5:  3.750,
	3:    4.500,
	3.5:  5.250,
	4:    6.000,
	5:    7.500,
	6:    9.000,
	8:    12.000,
	10:   15.000,
	12:   18.000,
	14:   21.000,
	16:   24.000,
	18:   27.000,
	20:   30.000,
	24:   36.000,
}

// ElbowRadius returns the long-radius elbow centerline radius for an NPS.
func ElbowRadius(nps float64) (float64, bool) {
	r, ok := elbowRadius[nps]
	return r, ok
}
