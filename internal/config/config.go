// Package config loads the TOML job file describing the pipe, the
// inspection reading, the classification thresholds and the outputs to
// produce.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"Pipecheck/internal/calc/life"
	"Pipecheck/internal/pipe"
)

// Report selects the outputs to render.
type Report struct {
	Formats  []string `toml:"formats"` // txt, csv, json, pdf, xlsx, ipynb
	Charts   bool     `toml:"charts"`
	OutDir   string   `toml:"out_dir"`
	Basename string   `toml:"basename"`
}

// File is the full TOML job description.
type File struct {
	Pipe       pipe.Spec       `toml:"pipe"`
	Inspection life.Reading    `toml:"inspection"`
	Thresholds life.Thresholds `toml:"thresholds"`
	Report     Report          `toml:"report"`
}

var validFormats = map[string]bool{
	"txt": true, "csv": true, "json": true, "pdf": true, "xlsx": true, "ipynb": true,
}

// Load reads and validates a job file. Unset thresholds and report fields
// take the documented defaults.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	if f.Thresholds.MonitorYears == 0 {
		f.Thresholds.MonitorYears = life.DefaultThresholds().MonitorYears
	}
	if f.Thresholds.MonitorMargin == 0 {
		f.Thresholds.MonitorMargin = life.DefaultThresholds().MonitorMargin
	}
	if len(f.Report.Formats) == 0 {
		f.Report.Formats = []string{"txt"}
	}
	for _, format := range f.Report.Formats {
		if !validFormats[format] {
			return nil, fmt.Errorf("unknown report format %q in %s", format, path)
		}
	}
	if f.Report.OutDir == "" {
		f.Report.OutDir = "Reports"
	}
	if f.Report.Basename == "" {
		f.Report.Basename = "analysis"
	}
	return &f, nil
}
