package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"Pipecheck/internal/analysis"
)

type nbCell struct {
	CellType string                 `json:"cell_type"`
	Metadata map[string]interface{} `json:"metadata"`
	Source   []string               `json:"source"`
}

type nbDocument struct {
	Cells         []nbCell               `json:"cells"`
	Metadata      map[string]interface{} `json:"metadata"`
	NBFormat      int                    `json:"nbformat"`
	NBFormatMinor int                    `json:"nbformat_minor"`
}

// WriteNotebook renders the result as a Jupyter notebook of markdown cells,
// so the analysis can be annotated and re-shared from a notebook workflow.
func WriteNotebook(w io.Writer, res *analysis.Result) error {
	var title bytes.Buffer
	fmt.Fprintf(&title, "# Pipe Thickness Analysis Report\n\n")
	fmt.Fprintf(&title, "**Analysis ID:** %s  \n", res.ID)
	fmt.Fprintf(&title, "**Generated:** %s  \n", res.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&title, "**Flag:** %s - %s\n", res.Flag, res.Status)

	var specs bytes.Buffer
	fmt.Fprintf(&specs, "## Pipe Specifications\n\n")
	fmt.Fprintf(&specs, "| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&specs, "| NPS | %g |\n", res.Pipe.NPS)
	fmt.Fprintf(&specs, "| Schedule | %d |\n", res.Pipe.Schedule)
	fmt.Fprintf(&specs, "| Pressure class | %d |\n", res.Pipe.Class)
	fmt.Fprintf(&specs, "| Metallurgy | %s |\n", res.Pipe.Metallurgy)
	fmt.Fprintf(&specs, "| Design pressure | %.1f psi |\n", res.Pipe.Pressure)
	fmt.Fprintf(&specs, "| API table | %s |\n", res.Pipe.TableVersion)

	var results bytes.Buffer
	fmt.Fprintf(&results, "## Results\n\n")
	fmt.Fprintf(&results, "| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&results, "| Measured thickness | %.4f in |\n", res.MeasuredThickness)
	fmt.Fprintf(&results, "| Effective thickness | %.4f in |\n", res.EffectiveThickness)
	fmt.Fprintf(&results, "| Pressure minimum | %.4f in |\n", res.PressureMin)
	fmt.Fprintf(&results, "| Structural minimum | %.4f in |\n", res.StructuralMin)
	fmt.Fprintf(&results, "| Governing (%s) | %.4f in |\n", res.GoverningType, res.Governing)
	fmt.Fprintf(&results, "| Corrosion allowance | %.4f in |\n", res.CorrosionAllowance)
	if res.RemainingLifeYears != nil {
		fmt.Fprintf(&results, "| Remaining life | %.1f years |\n", *res.RemainingLifeYears)
	} else {
		fmt.Fprintf(&results, "| Remaining life | indeterminate |\n")
	}
	fmt.Fprintf(&results, "\n%s\n", res.Message)

	doc := nbDocument{
		Cells: []nbCell{
			{CellType: "markdown", Metadata: map[string]interface{}{}, Source: []string{title.String()}},
			{CellType: "markdown", Metadata: map[string]interface{}{}, Source: []string{specs.String()}},
			{CellType: "markdown", Metadata: map[string]interface{}{}, Source: []string{results.String()}},
		},
		Metadata:      map[string]interface{}{"language_info": map[string]interface{}{"name": "python"}},
		NBFormat:      4,
		NBFormatMinor: 5,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(doc)
}
