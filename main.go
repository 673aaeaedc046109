package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"Pipecheck/internal/analysis"
	"Pipecheck/internal/calc/batch"
	"Pipecheck/internal/chart"
	"Pipecheck/internal/config"
	"Pipecheck/internal/log"
	"Pipecheck/internal/pipe"
	"Pipecheck/internal/report"
)

func main() {
	configPath := flag.String("config", "pipecheck.toml", "path to the TOML job file")
	batchPath := flag.String("batch", "", "optional xlsx workbook of readings to evaluate instead of [inspection]")
	outDir := flag.String("out", "", "override the report output directory")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	// .env is optional; it only carries local defaults.
	_ = godotenv.Load()
	if os.Getenv("PIPECHECK_DEBUG") == "1" {
		*debug = true
	}

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *outDir != "" {
		cfg.Report.OutDir = *outDir
	} else if env := os.Getenv("PIPECHECK_OUT_DIR"); env != "" && cfg.Report.OutDir == "Reports" {
		cfg.Report.OutDir = env
	}

	p, err := pipe.Resolve(cfg.Pipe)
	if err != nil {
		log.Fatalf("resolve pipe: %v", err)
	}
	log.Infof("resolved pipe: NPS %g sch %d, OD %.3f in, wall %.3f in, API %s",
		p.NPS, p.Schedule, p.OD, p.NominalWall, p.TableVersion)

	if err := os.MkdirAll(cfg.Report.OutDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	if *batchPath != "" {
		runBatch(cfg, p, *batchPath)
		return
	}

	res, err := analysis.Run(p, cfg.Inspection, cfg.Thresholds)
	if err != nil {
		log.Fatalf("analysis: %v", err)
	}
	log.Infof("flag %s (%s): governing %.4f in (%s), allowance %.4f in",
		res.Flag, res.Status, res.Governing, res.GoverningType, res.CorrosionAllowance)

	for _, format := range cfg.Report.Formats {
		path := filepath.Join(cfg.Report.OutDir, cfg.Report.Basename+"."+format)
		if err := writeFormat(format, path, res); err != nil {
			log.Fatalf("write %s report: %v", format, err)
		}
		log.Infof("wrote %s", path)
	}

	if cfg.Report.Charts {
		comparison := filepath.Join(cfg.Report.OutDir, cfg.Report.Basename+"_comparison.png")
		if err := chart.Comparison(comparison, res); err != nil {
			log.Fatalf("comparison chart: %v", err)
		}
		numberLine := filepath.Join(cfg.Report.OutDir, cfg.Report.Basename+"_number_line.png")
		if err := chart.NumberLine(numberLine, res); err != nil {
			log.Fatalf("number line chart: %v", err)
		}
		log.Infof("wrote %s and %s", comparison, numberLine)
	}
}

func writeFormat(format, path string, res *analysis.Result) error {
	switch format {
	case "pdf":
		return report.WritePDF(path, res)
	case "xlsx":
		return report.WriteWorkbook(path, nil, []*analysis.Result{res})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "txt":
		return report.WriteText(f, res)
	case "csv":
		return report.WriteCSV(f, res)
	case "json":
		return report.WriteJSON(f, res)
	case "ipynb":
		return report.WriteNotebook(f, res)
	}
	return fmt.Errorf("unknown format %q", format)
}

func runBatch(cfg *config.File, p *pipe.Pipe, path string) {
	items, err := batch.FromExcel(path)
	if err != nil {
		log.Fatalf("read batch workbook: %v", err)
	}
	log.Infof("loaded %d readings from %s", len(items), path)

	evaluated, err := batch.Evaluate(p, items, cfg.Thresholds)
	if err != nil {
		log.Fatalf("batch analysis: %v", err)
	}

	labels := make([]string, len(evaluated))
	results := make([]*analysis.Result, len(evaluated))
	for i, ev := range evaluated {
		labels[i] = ev.Label
		results[i] = ev.Result
	}

	out := filepath.Join(cfg.Report.OutDir, cfg.Report.Basename+"_batch.xlsx")
	if err := report.WriteWorkbook(out, labels, results); err != nil {
		log.Fatalf("write batch workbook: %v", err)
	}
	log.Infof("wrote %s", out)
}
