// Package report renders an analysis result as TXT, CSV, JSON, PDF, Excel
// or notebook output. It only consumes the result record; it never computes.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"Pipecheck/internal/analysis"
)

const textTemplate = `PIPECHECK - PIPE THICKNESS ANALYSIS REPORT
==========================================

Report Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Analysis ID: {{.ID}}

FLAG STATUS: {{.Flag}}
Status: {{.Status}}
Message: {{.Message}}

PIPE SPECIFICATIONS
-------------------
Nominal Pipe Size (NPS): {{.Pipe.NPS}}
Schedule: {{.Pipe.Schedule}}
Pressure Class: {{.Pipe.Class}}
Metallurgy: {{.Pipe.Metallurgy}}
Design Pressure: {{.Pipe.Pressure}} psi
Design Temperature: {{.Pipe.DesignTempF}} F (table band {{.Pipe.TempBandF}} F)
Pipe Configuration: {{.Pipe.Config}}
Joint Type: {{.Pipe.Joint}}
API Table: {{.Pipe.TableVersion}}
Outside Diameter: {{printf "%.3f" .Pipe.OD}} in
Nominal Wall: {{printf "%.3f" .Pipe.NominalWall}} in

THICKNESS MEASUREMENT DATA
--------------------------
Measured Thickness: {{printf "%.4f" .MeasuredThickness}} in
Corrosion Rate: {{.CorrosionRate}} mpy
{{- if .InspectionYear}}
Inspection Date: {{.InspectionYear}}-{{printf "%02d" .MonthOrJanuary}}
{{- end}}
Present-Day Thickness: {{printf "%.4f" .EffectiveThickness}} in

DESIGN REQUIREMENTS
-------------------
Pressure Design Minimum: {{printf "%.4f" .PressureMin}} in
Structural Minimum (API {{.Pipe.TableVersion}}): {{printf "%.4f" .StructuralMin}} in
Governing Thickness: {{printf "%.4f" .Governing}} in
Governing Factor: {{.GoverningType}}{{if .FloorApplied}} (company retirement limit applied){{end}}

CORROSION ALLOWANCE
-------------------
Corrosion Allowance: {{printf "%.4f" .CorrosionAllowance}} in
Estimated Remaining Life: {{.LifeText}}
`

// textData wraps a Result with the template helpers.
type textData struct {
	*analysis.Result
}

func (d textData) MonthOrJanuary() int {
	if d.InspectionMonth == 0 {
		return 1
	}
	return d.InspectionMonth
}

func (d textData) LifeText() string {
	if d.RemainingLifeYears == nil {
		return "indeterminate (no corrosion rate provided)"
	}
	return fmt.Sprintf("%.1f years", *d.RemainingLifeYears)
}

var reportTmpl = template.Must(template.New("report").Parse(textTemplate))

// WriteText renders the full narrative report.
func WriteText(w io.Writer, res *analysis.Result) error {
	return reportTmpl.Execute(w, textData{res})
}

// WriteJSON renders the raw result record.
func WriteJSON(w io.Writer, res *analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV renders the result as field,value rows.
func WriteCSV(w io.Writer, res *analysis.Result) error {
	cw := csv.NewWriter(w)
	life := ""
	if res.RemainingLifeYears != nil {
		life = strconv.FormatFloat(*res.RemainingLifeYears, 'f', 2, 64)
	}
	rows := [][]string{
		{"field", "value"},
		{"analysis_id", res.ID},
		{"generated_at", res.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"nps", strconv.FormatFloat(res.Pipe.NPS, 'g', -1, 64)},
		{"schedule", strconv.Itoa(res.Pipe.Schedule)},
		{"pressure_class", strconv.Itoa(res.Pipe.Class)},
		{"metallurgy", string(res.Pipe.Metallurgy)},
		{"design_pressure_psi", strconv.FormatFloat(res.Pipe.Pressure, 'f', 1, 64)},
		{"api_table", res.Pipe.TableVersion},
		{"measured_thickness_in", strconv.FormatFloat(res.MeasuredThickness, 'f', 4, 64)},
		{"effective_thickness_in", strconv.FormatFloat(res.EffectiveThickness, 'f', 4, 64)},
		{"tmin_pressure_in", strconv.FormatFloat(res.PressureMin, 'f', 4, 64)},
		{"tmin_structural_in", strconv.FormatFloat(res.StructuralMin, 'f', 4, 64)},
		{"governing_thickness_in", strconv.FormatFloat(res.Governing, 'f', 4, 64)},
		{"governing_type", string(res.GoverningType)},
		{"corrosion_allowance_in", strconv.FormatFloat(res.CorrosionAllowance, 'f', 4, 64)},
		{"remaining_life_years", life},
		{"flag", string(res.Flag)},
		{"status", string(res.Status)},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
