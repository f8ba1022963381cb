package harness

import (
	"fmt"

	"github.com/weiihann/bsonbench/stats"
)

// FailureKind classifies how a workload batch failed.
type FailureKind int

const (
	// FailureTimeout: the batch exceeded its wall-clock ceiling.
	FailureTimeout FailureKind = iota
	// FailureNonZeroExit: the engine process exited non-zero.
	FailureNonZeroExit
	// FailureMalformedOutput: the timing-report count did not match the
	// number of executed statements.
	FailureMalformedOutput
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureNonZeroExit:
		return "non-zero exit"
	case FailureMalformedOutput:
		return "malformed output"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// RunError is a per-workload failure. It aborts only the workload it
// occurred in, never the benchmark run.
type RunError struct {
	Kind   FailureKind
	Detail string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Outcome is the result of one workload: summary statistics on success,
// or a human-readable failure cause.
type Outcome struct {
	Stats *stats.Summary `json:"stats,omitempty"`
	Err   string         `json:"error,omitempty"`
}

// Failed reports whether the workload produced no statistics.
func (o Outcome) Failed() bool {
	return o.Stats == nil
}

// ResultSet maps workload names to their outcomes. It is filled in
// sequentially as workloads complete and read only once all have.
type ResultSet map[string]Outcome
