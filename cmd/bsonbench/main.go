// Package main provides the CLI entry point for bsonbench, a JSON vs
// BSON performance benchmark for DuckDB.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/bsonbench/harness"
	"github.com/weiihann/bsonbench/report"
	"github.com/weiihann/bsonbench/scratch"
	"github.com/weiihann/bsonbench/stats"
	"github.com/weiihann/bsonbench/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "bsonbench",
		Short: "Benchmark JSON vs BSON performance in DuckDB",
		Long: `Bsonbench provisions comparable JSON and BSON tables in a scratch
DuckDB database and measures conversion, extraction, existence checks,
grouped aggregation, and storage footprint across both representations
using the shell's per-statement timer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision the dataset and run all benchmark workloads",
		Long: `Create JSON and BSON tables with deterministic content, run every
benchmark workload with warmup and measured repetitions, and print a
summary with paired JSON/BSON comparison ratios.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.shell, "shell", "",
		"Path to DuckDB CLI binary (default: auto-detect)")
	flags.StringVar(&cfg.dbPath, "db", "",
		"Path for the benchmark database (default: temp file)")
	flags.IntVar(&cfg.rows, "rows", 100000,
		"Number of rows to generate")
	flags.IntVar(&cfg.runs, "runs", 5,
		"Number of measured runs per query")
	flags.IntVar(&cfg.warmup, "warmup", 1,
		"Number of warmup runs per query")
	flags.IntVar(&cfg.threads, "threads", 0,
		"Number of engine threads (0 = engine default)")
	flags.StringVar(&cfg.extensionDir, "extension-dir", "",
		"Extension directory (for SET extension_directory)")
	flags.StringVar(&cfg.bsonExtension, "bson-extension", "",
		"Direct path to the bson.duckdb_extension file")
	flags.BoolVar(&cfg.keepDB, "keep-db", false,
		"Keep the database after the benchmark")
	flags.BoolVar(&cfg.outputJSON, "json", false,
		"Output results as JSON instead of a table")

	return cmd
}

type runConfig struct {
	shell         string
	dbPath        string
	rows          int
	runs          int
	warmup        int
	threads       int
	extensionDir  string
	bsonExtension string
	keepDB        bool
	outputJSON    bool
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	shell, err := resolveShell(logger, cfg.shell)
	if err != nil {
		return err
	}

	if cfg.extensionDir == "" && cfg.bsonExtension == "" {
		return fmt.Errorf(
			"either --extension-dir or --bson-extension must be specified",
		)
	}

	if cfg.runs < 1 {
		return fmt.Errorf("--runs must be >= 1, got %d", cfg.runs)
	}

	if cfg.warmup < 0 {
		return fmt.Errorf("--warmup must be >= 0, got %d", cfg.warmup)
	}

	if cfg.rows < 0 {
		return fmt.Errorf("--rows must be >= 0, got %d", cfg.rows)
	}

	db, err := scratch.Acquire(cfg.dbPath)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}

	defer db.Release(logger, cfg.keepDB)

	// Step 1: Provision both representations; fatal on any failure.
	setupSQL := workload.SetupSQL(workload.SetupConfig{
		Rows:          cfg.rows,
		ExtensionDir:  cfg.extensionDir,
		BSONExtension: cfg.bsonExtension,
	})

	if err := harness.Setup(ctx, logger, shell, db.Path, setupSQL); err != nil {
		return err
	}

	// Step 2: Run every workload; failures stay per-workload.
	logger.InfoContext(ctx, "running benchmarks",
		slog.Int("warmup", cfg.warmup),
		slog.Int("runs", cfg.runs),
	)

	runner := harness.NewRunner(shell, logger)
	results := make(harness.ResultSet)

	for _, spec := range workload.Catalog() {
		sample, runErr := runner.Run(ctx, harness.RunConfig{
			DBPath:  db.Path,
			SQL:     spec.SQL,
			Warmup:  cfg.warmup,
			Runs:    cfg.runs,
			Threads: cfg.threads,
		})

		if runErr != nil {
			logger.Warn("workload failed",
				slog.String("workload", spec.Name),
				slog.String("error", runErr.Error()),
			)

			results[spec.Name] = harness.Outcome{Err: runErr.Error()}

			continue
		}

		summary := stats.Summarize(sample)
		results[spec.Name] = harness.Outcome{Stats: &summary}

		logger.Info("workload complete",
			slog.String("workload", spec.Name),
			slog.Float64("median_s", summary.Median),
		)
	}

	// Step 3: Report. Per-workload failures never change the exit code.
	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(
			os.Stdout, results, workload.ComparisonPairs(), cfg.rows,
		); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

func resolveShell(logger *slog.Logger, explicit string) (string, error) {
	shell := explicit
	if shell == "" {
		shell = harness.FindShell()
		if shell == "" {
			return "", fmt.Errorf(
				"could not find DuckDB shell, please specify --shell",
			)
		}

		logger.Info("using shell", slog.String("path", shell))
	}

	info, err := os.Stat(shell)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("shell not found: %s", shell)
	}

	return shell, nil
}
