package tables

// Metallurgy families used by the Y-coefficient table
// (ASME B31.1 Table 104.1.2-1).
const (
	YFerritic     = "ferritic"
	YAustenitic   = "austenitic"
	YNickelN06690 = "nickel-n06690"
	YNickelGroup  = "nickel-n06617-n08800-n08810-n08825"
	YOtherDuctile = "other-ductile"
	YCastIron     = "cast-iron"
)

// Temperature bands, degrees F. Column k covers temperatures up to
// yBands[k]; the first column also covers everything below 900 and the
// last everything above 1250.
var yBands = [8]float64{900, 950, 1000, 1050, 1100, 1150, 1200, 1250}

var yCoefficient = map[string][8]float64{
	YFerritic:     {0.4, 0.5, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7},
	YAustenitic:   {0.4, 0.4, 0.4, 0.4, 0.5, 0.7, 0.7, 0.7},
	YNickelN06690: {0.4, 0.4, 0.4, 0.4, 0.5, 0.7, 0.7, 0.7},
	YNickelGroup:  {0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.5, 0.7},
	YOtherDuctile: {0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4},
	YCastIron:     {0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
}

// yBandIndex snaps a design temperature onto a table column. Below 900 the
// 900 column applies, above 1250 the 1250 column; in between the value
// rounds up to the next defined band. No interpolation.
func yBandIndex(tempF float64) int {
	for i, band := range yBands {
		if tempF <= band {
			return i
		}
	}
	return len(yBands) - 1
}

// YCoefficient returns the pressure-design Y coefficient for a metallurgy
// family at a design temperature. ok is false for an unknown family.
func YCoefficient(family string, tempF float64) (float64, bool) {
	row, ok := yCoefficient[family]
	if !ok {
		return 0, false
	}
	return row[yBandIndex(tempF)], true
}

// YBand reports the table band, degrees F, a design temperature resolves to.
func YBand(tempF float64) float64 {
	return yBands[yBandIndex(tempF)]
}

// Longitudinal joint quality factor E per joint type
// (ASME B31.3 Table A-1B).
const (
	JointSeamless        = "seamless"
	JointERW             = "erw"
	JointFurnaceButtWeld = "furnace-butt-weld"
)

var jointFactor = map[string]float64{
	JointSeamless:        1.00,
	JointERW:             0.85,
	JointFurnaceButtWeld: 0.60,
}

// JointFactor returns the joint quality factor E for a joint type.
func JointFactor(joint string) (float64, bool) {
	e, ok := jointFactor[joint]
	return e, ok
}

// Weld strength reduction factor W per temperature band for welded joints.
// Seamless pipe always carries W = 1.
var wsrf = [8]float64{1.00, 1.00, 0.95, 0.91, 0.86, 0.82, 0.77, 0.73}

// WeldStrengthReduction returns W for a joint type at a design temperature.
func WeldStrengthReduction(joint string, tempF float64) float64 {
	if joint == JointSeamless {
		return 1.0
	}
	return wsrf[yBandIndex(tempF)]
}

// JointTypes lists the supported joint types.
func JointTypes() []string {
	return []string{JointSeamless, JointERW, JointFurnaceButtWeld}
}
