package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// SetupTimeout bounds the one-time provisioning pass. Large row counts
// make setup by far the slowest phase, so it gets a wider ceiling than
// workload batches.
const SetupTimeout = 30 * time.Minute

// Setup runs the provisioning SQL against dbPath in a single shell
// invocation. Any failure is fatal to the benchmark run: a partially
// provisioned dataset would make every measurement meaningless.
func Setup(ctx context.Context, logger *slog.Logger, shell, dbPath, sql string) error {
	ctx, cancel := context.WithTimeout(ctx, SetupTimeout)
	defer cancel()

	logger.InfoContext(ctx, "setting up database",
		slog.String("db", dbPath),
	)

	cmd := exec.CommandContext(ctx, shell, dbPath, "-c", sql)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("setup exceeded %s", SetupTimeout)
	}

	if err != nil {
		return fmt.Errorf("setup failed: %w\nstderr: %s\nstdout: %s",
			err, stderr.String(), stdout.String())
	}

	logger.InfoContext(ctx, "database setup complete",
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}
