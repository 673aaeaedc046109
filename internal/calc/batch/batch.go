// Package batch evaluates many inspection readings against one pipe, with
// optional import of readings from an Excel sheet.
package batch

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Pipecheck/internal/analysis"
	"Pipecheck/internal/calc/life"
	"Pipecheck/internal/pipe"
)

// Item is one labelled reading in a batch.
type Item struct {
	Label   string       `json:"label"`
	Reading life.Reading `json:"reading"`
}

// Evaluated pairs the label with its analysis result.
type Evaluated struct {
	Label  string           `json:"label"`
	Result *analysis.Result `json:"result"`
}

// Evaluate runs every item against the pipe. The first failing item aborts
// the batch; partial results are not returned.
func Evaluate(p *pipe.Pipe, items []Item, th life.Thresholds) ([]Evaluated, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items")
	}
	out := make([]Evaluated, 0, len(items))
	for _, item := range items {
		res, err := analysis.Run(p, item.Reading, th)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Label, err)
		}
		out = append(out, Evaluated{Label: item.Label, Result: res})
	}
	return out, nil
}

// FromExcel reads batch items from the first sheet of a workbook. Expected
// columns: label, measured_in, rate_mpy, year, month; the first row is a
// header. Malformed rows are skipped, not fatal.
func FromExcel(path string) ([]Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var items []Item
	for i := 1; i < len(rows); i++ {
		item, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("sheet %q has no parseable rows", sheet)
	}
	return items, nil
}

func parseRow(row []string) (Item, error) {
	if len(row) < 2 {
		return Item{}, fmt.Errorf("bad row")
	}
	measured, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return Item{}, err
	}
	item := Item{Label: row[0], Reading: life.Reading{MeasuredThickness: measured}}
	if len(row) > 2 && row[2] != "" {
		item.Reading.CorrosionRate, _ = strconv.ParseFloat(row[2], 64)
	}
	if len(row) > 3 && row[3] != "" {
		item.Reading.InspectionYear, _ = strconv.Atoi(row[3])
	}
	if len(row) > 4 && row[4] != "" {
		item.Reading.InspectionMonth, _ = strconv.Atoi(row[4])
	}
	return item, nil
}
