package tables

// Structural table families. Stainless grades resolve against the SS table,
// everything else against the carbon/low-alloy table.
const (
	FamilyCS = "cs"
	FamilySS = "ss"
)

// Table versions (API 574 edition years).
const (
	Version2025 = "2025"
	Version2009 = "2009"
)

var pressureClasses = []int{150, 300, 600, 900, 1500, 2500}

// PressureClasses lists the supported ASME flange classes.
func PressureClasses() []int {
	out := make([]int, len(pressureClasses))
	copy(out, pressureClasses)
	return out
}

// Versions lists the supported API 574 editions.
func Versions() []string {
	return []string{Version2025, Version2009}
}

// API 574 (2025) Table D.2 minimum structural thickness, inches, for
// carbon and low-alloy steel at up to 400 F, keyed NPS then flange class.
var api574CS2025 = map[float64]map[int]float64{
	0.5:  {150: 0.045, 300: 0.045, 600: 0.051, 900: 0.055, 1500: 0.061, 2500: 0.070},
	0.75: {150: 0.045, 300: 0.045, 600: 0.051, 900: 0.057, 1500: 0.064, 2500: 0.075},
	1:    {150: 0.045, 300: 0.047, 600: 0.053, 900: 0.059, 1500: 0.067, 2500: 0.079},
	1.25: {150: 0.049, 300: 0.051, 600: 0.057, 900: 0.063, 1500: 0.071, 2500: 0.084},
	1.5:  {150: 0.049, 300: 0.051, 600: 0.057, 900: 0.065, 1500: 0.074, 2500: 0.088},
	2:    {150: 0.053, 300: 0.055, 600: 0.061, 900: 0.069, 1500: 0.080, 2500: 0.095},
	2.5:  {150: 0.058, 300: 0.060, 600: 0.066, 900: 0.074, 1500: 0.086, 2500: 0.103},
	3:    {150: 0.058, 300: 0.060, 600: 0.068, 900: 0.077, 1500: 0.090, 2500: 0.109},
	3.5:  {150: 0.061, 300: 0.063, 600: 0.071, 900: 0.081, 1500: 0.095, 2500: 0.115},
	4:    {150: 0.064, 300: 0.066, 600: 0.074, 900: 0.085, 1500: 0.100, 2500: 0.122},
	5:    {150: 0.069, 300: 0.072, 600: 0.080, 900: 0.092, 1500: 0.109, 2500: 0.134},
	6:    {150: 0.074, 300: 0.077, 600: 0.086, 900: 0.099, 1500: 0.118, 2500: 0.146},
	8:    {150: 0.084, 300: 0.088, 600: 0.098, 900: 0.113, 1500: 0.136, 2500: 0.169},
	10:   {150: 0.094, 300: 0.098, 600: 0.110, 900: 0.127, 1500: 0.154, 2500: 0.192},
	12:   {150: 0.104, 300: 0.109, 600: 0.122, 900: 0.141, 1500: 0.172, 2500: 0.215},
	14:   {150: 0.112, 300: 0.117, 600: 0.131, 900: 0.152, 1500: 0.186, 2500: 0.233},
	16:   {150: 0.118, 300: 0.124, 600: 0.139, 900: 0.162, 1500: 0.198, 2500: 0.249},
	18:   {150: 0.124, 300: 0.131, 600: 0.147, 900: 0.171, 1500: 0.210, 2500: 0.265},
	20:   {150: 0.130, 300: 0.137, 600: 0.154, 900: 0.180, 1500: 0.222, 2500: 0.280},
	24:   {150: 0.140, 300: 0.148, 600: 0.167, 900: 0.196, 1500: 0.242, 2500: 0.307},
}

// API 574 (2025) Table D.2 minimum structural thickness, inches, for
// austenitic stainless steel at up to 400 F.
var api574SS2025 = map[float64]map[int]float64{
	0.5:  {150: 0.039, 300: 0.039, 600: 0.044, 900: 0.048, 1500: 0.053, 2500: 0.061},
	0.75: {150: 0.039, 300: 0.039, 600: 0.044, 900: 0.050, 1500: 0.056, 2500: 0.065},
	1:    {150: 0.039, 300: 0.041, 600: 0.046, 900: 0.051, 1500: 0.058, 2500: 0.069},
	1.25: {150: 0.043, 300: 0.044, 600: 0.050, 900: 0.055, 1500: 0.062, 2500: 0.073},
	1.5:  {150: 0.043, 300: 0.044, 600: 0.050, 900: 0.057, 1500: 0.064, 2500: 0.077},
	2:    {150: 0.046, 300: 0.048, 600: 0.053, 900: 0.060, 1500: 0.070, 2500: 0.083},
	2.5:  {150: 0.050, 300: 0.052, 600: 0.057, 900: 0.064, 1500: 0.075, 2500: 0.090},
	3:    {150: 0.050, 300: 0.052, 600: 0.059, 900: 0.067, 1500: 0.078, 2500: 0.095},
	3.5:  {150: 0.053, 300: 0.055, 600: 0.062, 900: 0.070, 1500: 0.083, 2500: 0.100},
	4:    {150: 0.056, 300: 0.057, 600: 0.064, 900: 0.074, 1500: 0.087, 2500: 0.106},
	5:    {150: 0.060, 300: 0.063, 600: 0.070, 900: 0.080, 1500: 0.095, 2500: 0.117},
	6:    {150: 0.064, 300: 0.067, 600: 0.075, 900: 0.086, 1500: 0.103, 2500: 0.127},
	8:    {150: 0.073, 300: 0.077, 600: 0.085, 900: 0.098, 1500: 0.118, 2500: 0.147},
	10:   {150: 0.082, 300: 0.085, 600: 0.096, 900: 0.110, 1500: 0.134, 2500: 0.167},
	12:   {150: 0.090, 300: 0.095, 600: 0.106, 900: 0.123, 1500: 0.150, 2500: 0.187},
	14:   {150: 0.097, 300: 0.102, 600: 0.114, 900: 0.132, 1500: 0.162, 2500: 0.203},
	16:   {150: 0.103, 300: 0.108, 600: 0.121, 900: 0.141, 1500: 0.172, 2500: 0.217},
	18:   {150: 0.108, 300: 0.114, 600: 0.128, 900: 0.149, 1500: 0.183, 2500: 0.230},
	20:   {150: 0.113, 300: 0.119, 600: 0.134, 900: 0.157, 1500: 0.193, 2500: 0.244},
	24:   {150: 0.122, 300: 0.129, 600: 0.145, 900: 0.170, 1500: 0.210, 2500: 0.267},
}

// Structural2009 is one row of API 574 (2009) Table 6.
type Structural2009 struct {
	MinStructural float64 // default minimum structural thickness, inches
	Alert         float64 // minimum alert thickness, inches
}

// API 574 (2009) Table 6, minimum thicknesses for carbon and low-alloy
// steel pipe. Class-independent; the 2009 edition publishes a single
// default per NPS.
var api574Table6 = map[float64]Structural2009{
	0.5:  {MinStructural: 0.07, Alert: 0.08},
	0.75: {MinStructural: 0.07, Alert: 0.08},
	1:    {MinStructural: 0.07, Alert: 0.08},
	1.5:  {MinStructural: 0.07, Alert: 0.09},
	2:    {MinStructural: 0.07, Alert: 0.10},
	3:    {MinStructural: 0.08, Alert: 0.11},
	4:    {MinStructural: 0.09, Alert: 0.12},
	6:    {MinStructural: 0.11, Alert: 0.13},
	8:    {MinStructural: 0.11, Alert: 0.13},
	10:   {MinStructural: 0.11, Alert: 0.13},
	12:   {MinStructural: 0.11, Alert: 0.13},
	14:   {MinStructural: 0.11, Alert: 0.13},
	16:   {MinStructural: 0.11, Alert: 0.13},
	18:   {MinStructural: 0.11, Alert: 0.13},
	20:   {MinStructural: 0.12, Alert: 0.14},
	24:   {MinStructural: 0.12, Alert: 0.14},
}

// StructuralMin2025 resolves the 2025 table for a family, NPS and class.
func StructuralMin2025(family string, nps float64, class int) (float64, bool) {
	var table map[float64]map[int]float64
	switch family {
	case FamilyCS:
		table = api574CS2025
	case FamilySS:
		table = api574SS2025
	default:
		return 0, false
	}
	row, ok := table[nps]
	if !ok {
		return 0, false
	}
	v, ok := row[class]
	return v, ok
}

// StructuralMin2009 resolves the 2009 Table 6 row for an NPS.
func StructuralMin2009(nps float64) (Structural2009, bool) {
	row, ok := api574Table6[nps]
	return row, ok
}
