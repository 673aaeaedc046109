package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"Pipecheck/internal/analysis"
	"Pipecheck/internal/calc/life"
	"Pipecheck/internal/pipe"
)

func sampleResult(t *testing.T) *analysis.Result {
	t.Helper()
	p, err := pipe.Resolve(pipe.Spec{
		NPS:           2,
		Schedule:      40,
		Pressure:      300,
		PressureClass: 150,
		Metallurgy:    string(pipe.MetCarbonSteel),
		YieldStress:   33000,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, err := analysis.Run(p, life.Reading{MeasuredThickness: 0.188, CorrosionRate: 12}, life.DefaultThresholds())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res
}

func TestWriteText(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	if err := WriteText(&buf, res); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"PIPE THICKNESS ANALYSIS REPORT",
		"FLAG STATUS: GREEN",
		"Status: SAFE_TO_CONTINUE",
		"Governing Factor: structural",
		"Measured Thickness: 0.1880 in",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q\n%s", want, out)
		}
	}
}

func TestWriteTextIndeterminateLife(t *testing.T) {
	p, err := pipe.Resolve(pipe.Spec{
		NPS: 2, Schedule: 40, Pressure: 300, PressureClass: 150,
		Metallurgy: string(pipe.MetCarbonSteel), YieldStress: 33000,
	})
	if err != nil {
		t.Fatal(err)
	}
	res, err := analysis.Run(p, life.Reading{MeasuredThickness: 0.188}, life.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "indeterminate") {
		t.Error("report should mark the remaining life as indeterminate")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var back analysis.Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Governing != res.Governing || back.Flag != res.Flag {
		t.Errorf("round trip changed values: %+v", back)
	}
	if back.RemainingLifeYears == nil {
		t.Error("remaining life lost in round trip")
	}
}

func TestWriteCSV(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"governing_thickness_in", "flag,GREEN", "status,SAFE_TO_CONTINUE"} {
		if !strings.Contains(out, want) {
			t.Errorf("csv missing %q\n%s", want, out)
		}
	}
}

func TestWritePDF(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(path, res); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pdf is empty")
	}
}

func TestWriteWorkbook(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteWorkbook(path, []string{"TML-01"}, []*analysis.Result{res}); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one", len(rows))
	}
	if rows[1][1] != "TML-01" {
		t.Errorf("label cell = %q, want TML-01", rows[1][1])
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	if err := WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), nil, nil); err == nil {
		t.Error("empty result set should fail")
	}
}

func TestWriteNotebook(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	if err := WriteNotebook(&buf, res); err != nil {
		t.Fatalf("WriteNotebook: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("notebook is not valid JSON: %v", err)
	}
	cells, ok := doc["cells"].([]interface{})
	if !ok || len(cells) != 3 {
		t.Errorf("notebook cells = %v, want 3 markdown cells", doc["cells"])
	}
}
