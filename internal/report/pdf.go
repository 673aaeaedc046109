package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"

	"Pipecheck/internal/analysis"
)

// WritePDF renders a one-page PDF report to the given path.
func WritePDF(path string, res *analysis.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Pipe Thickness Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Analysis ID: %s", res.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", res.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	switch res.Flag {
	case "RED":
		pdf.SetTextColor(200, 0, 0)
	case "YELLOW":
		pdf.SetTextColor(200, 150, 0)
	default:
		pdf.SetTextColor(0, 130, 0)
	}
	pdf.Cell(0, 8, fmt.Sprintf("%s - %s", res.Flag, res.Status))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(70, 6, label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Pipe")
	pdf.Ln(8)
	row("NPS / Schedule", fmt.Sprintf("%g / %d", res.Pipe.NPS, res.Pipe.Schedule))
	row("Pressure class", fmt.Sprintf("%d", res.Pipe.Class))
	row("Metallurgy", string(res.Pipe.Metallurgy))
	row("Design pressure", fmt.Sprintf("%.1f psi", res.Pipe.Pressure))
	row("Design temperature", fmt.Sprintf("%.0f F", res.Pipe.DesignTempF))
	row("Configuration / joint", fmt.Sprintf("%s / %s", res.Pipe.Config, res.Pipe.Joint))
	row("API table", res.Pipe.TableVersion)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Thickness")
	pdf.Ln(8)
	row("Measured", fmt.Sprintf("%.4f in", res.MeasuredThickness))
	row("Present-day (effective)", fmt.Sprintf("%.4f in", res.EffectiveThickness))
	row("Pressure design minimum", fmt.Sprintf("%.4f in", res.PressureMin))
	row("Structural minimum", fmt.Sprintf("%.4f in", res.StructuralMin))
	govern := string(res.GoverningType)
	if res.FloorApplied {
		govern += " (company retirement limit applied)"
	}
	row("Governing thickness", fmt.Sprintf("%.4f in (%s)", res.Governing, govern))
	row("Corrosion allowance", fmt.Sprintf("%.4f in", res.CorrosionAllowance))
	if res.RemainingLifeYears != nil {
		row("Estimated remaining life", fmt.Sprintf("%.1f years at %.1f mpy", *res.RemainingLifeYears, res.CorrosionRate))
	} else {
		row("Estimated remaining life", "indeterminate (no corrosion rate)")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, res.Message, "", "L", false)

	return pdf.OutputFileAndClose(path)
}
