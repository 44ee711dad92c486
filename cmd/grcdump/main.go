package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/creditscore-pro/grcdump/config"
	"github.com/creditscore-pro/grcdump/logging"
	"github.com/creditscore-pro/grcdump/output"
	"github.com/creditscore-pro/grcdump/sqldump"
	"github.com/creditscore-pro/grcdump/stats"
)

var (
	configFlag    = flag.String("config", "", "Path to a YAML config file")
	inputFlag     = flag.String("input", "", "Path to the SQL dump file (overrides config)")
	outputFlag    = flag.String("output", "", "Output directory (overrides config)")
	noParquetFlag = flag.Bool("no-parquet", false, "Skip the parquet artifact")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts alerta_cooperativa_sicoob rows from a SQL dump and writes\n")
		fmt.Fprintf(os.Stderr, "JSON, CSV, parquet, and per-cooperative JSON artifacts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input dumps/grc-web.sql -output exports\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config config.yaml -no-parquet\n", os.Args[0])
	}

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *inputFlag != "" {
		cfg.Input.Path = *inputFlag
	}
	if *outputFlag != "" {
		cfg.Output.Dir = *outputFlag
	}
	if *noParquetFlag {
		cfg.Output.Parquet = false
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

// run executes the whole pipeline: read, parse, summarize, write.
func run(cfg *config.Config, log *zap.Logger) error {
	data, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("SQL dump not found: %s", cfg.Input.Path)
		}
		return fmt.Errorf("failed to read SQL dump: %w", err)
	}
	log.Info("dump loaded",
		zap.String("path", cfg.Input.Path),
		zap.Int("bytes", len(data)))

	res := sqldump.Parse(string(data))
	log.Info("records extracted",
		zap.Int("records", len(res.Records)),
		zap.Int("dropped_rows", res.Dropped))

	if len(res.Records) == 0 {
		log.Warn("no records extracted, nothing to write")
		return nil
	}

	stats.Summarize(res).Render(os.Stdout)

	writer := output.NewWriter(
		cfg.Output.Dir,
		cfg.Output.BalancesDir,
		filepath.Base(cfg.Input.Path),
		cfg.Output.Parquet,
		log,
	)
	paths, err := writer.WriteAll(res.Records)
	if err != nil {
		return err
	}

	log.Info("export complete",
		zap.Int("artifacts", len(paths)),
		zap.String("dir", cfg.Output.Dir))
	return nil
}
