// Package harness drives the duckdb CLI through batched, timed statement
// executions and extracts wall-clock measurements from its console output.
package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultRunTimeout bounds a single workload batch. An engine process
// that outlives it is killed and reported as a timeout failure.
const DefaultRunTimeout = 600 * time.Second

// timingPattern matches the per-statement report emitted by the shell
// with .timer on: "Run Time (s): real 0.123 user 0.100 sys 0.020".
// The shell emits exactly one such line per executed statement, in
// execution order; that ordering is the only timing contract we have.
var timingPattern = regexp.MustCompile(`Run Time \(s\): real (\d+\.\d+)`)

// RunConfig holds parameters for a single workload execution batch.
type RunConfig struct {
	DBPath  string
	SQL     string
	Warmup  int
	Runs    int
	Threads int           // 0 = engine default
	Timeout time.Duration // 0 = DefaultRunTimeout
}

// Runner launches the duckdb shell for timed workload batches.
type Runner struct {
	Shell  string
	Logger *slog.Logger
}

// NewRunner creates a Runner for the given shell binary.
func NewRunner(shell string, logger *slog.Logger) *Runner {
	return &Runner{
		Shell:  shell,
		Logger: logger.With(slog.String("shell", shell)),
	}
}

// Run executes cfg.SQL warmup+runs times in a single shell invocation
// with timing instrumentation enabled, and returns the measured
// durations in seconds, warmup runs excluded, in execution order.
//
// Failures of the engine process are returned as *RunError so callers
// can record them per workload and continue with the next one.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) ([]float64, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("invalid run config: runs must be >= 1, got %d", cfg.Runs)
	}

	if cfg.Warmup < 0 {
		return nil, fmt.Errorf("invalid run config: warmup must be >= 0, got %d", cfg.Warmup)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRunTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	commands := buildCommands(cfg)

	args := make([]string, 0, 1+2*len(commands))
	args = append(args, cfg.DBPath)

	for _, c := range commands {
		args = append(args, "-c", c)
	}

	cmd := exec.CommandContext(ctx, r.Shell, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	total := cfg.Warmup + cfg.Runs

	r.Logger.Debug("running workload batch",
		slog.Int("executions", total),
		slog.Duration("timeout", timeout),
	)

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &RunError{
			Kind:   FailureTimeout,
			Detail: fmt.Sprintf("batch exceeded %s", timeout),
		}
	}

	if err != nil {
		return nil, &RunError{
			Kind: FailureNonZeroExit,
			Detail: fmt.Sprintf("%v\nstderr: %s\nstdout: %s",
				err, stderr.String(), stdout.String()),
		}
	}

	timings := parseTimings(stdout.String())

	if len(timings) != total {
		return nil, &RunError{
			Kind: FailureMalformedOutput,
			Detail: fmt.Sprintf("expected %d timing reports, got %d",
				total, len(timings)),
		}
	}

	return timings[cfg.Warmup:], nil
}

// buildCommands assembles the ordered instruction sequence for one batch:
// optional thread configuration, timing instrumentation, then the
// statement repeated warmup+runs times.
func buildCommands(cfg RunConfig) []string {
	commands := make([]string, 0, cfg.Warmup+cfg.Runs+2)

	if cfg.Threads > 0 {
		commands = append(commands, fmt.Sprintf("SET threads=%d", cfg.Threads))
	}

	commands = append(commands, ".timer on")

	stmt := strings.TrimSpace(cfg.SQL)
	for i := 0; i < cfg.Warmup+cfg.Runs; i++ {
		commands = append(commands, stmt)
	}

	return commands
}

// parseTimings extracts every timing-report value from the shell's
// stdout, preserving emission order.
func parseTimings(stdout string) []float64 {
	matches := timingPattern.FindAllStringSubmatch(stdout, -1)

	timings := make([]float64, 0, len(matches))

	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			// Unreachable given the pattern, but never guess a value.
			continue
		}

		timings = append(timings, v)
	}

	return timings
}
