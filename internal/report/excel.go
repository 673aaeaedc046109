package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"Pipecheck/internal/analysis"
)

var workbookHeader = []interface{}{
	"analysis_id", "label", "nps", "schedule", "pressure_class", "metallurgy",
	"api_table", "measured_in", "effective_in", "tmin_pressure_in",
	"tmin_structural_in", "governing_in", "governing_type",
	"corrosion_allowance_in", "remaining_life_years", "flag", "status",
}

// WriteWorkbook writes one row per result to an xlsx file. Labels may be
// empty for single-result exports.
func WriteWorkbook(path string, labels []string, results []*analysis.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results")
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &workbookHeader); err != nil {
		return err
	}

	for i, res := range results {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		life := interface{}(nil)
		if res.RemainingLifeYears != nil {
			life = *res.RemainingLifeYears
		}
		row := []interface{}{
			res.ID, label, res.Pipe.NPS, res.Pipe.Schedule, res.Pipe.Class,
			string(res.Pipe.Metallurgy), res.Pipe.TableVersion,
			res.MeasuredThickness, res.EffectiveThickness, res.PressureMin,
			res.StructuralMin, res.Governing, string(res.GoverningType),
			res.CorrosionAllowance, life, string(res.Flag), string(res.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
