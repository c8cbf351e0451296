// Package benchdata holds the embedded benchmark results rendered by the
// perfchart tool: nanosecond timings for std::vector and static_vector across
// six operations and five element counts. The numbers are carried verbatim
// from the benchmark runs; nothing here reads files or recomputes statistics.
package benchdata

import (
	"errors"
	"fmt"
	"strconv"
)

// Sizes is the shared x-axis domain: element counts each operation was
// benchmarked at. Every timing sequence is positionally aligned with it.
var Sizes = []float64{8, 64, 512, 4096, 8192}

// Operations lists the benchmarked operations in chart order.
var Operations = []string{
	"Construction",
	"PushBack",
	"EmplaceBack",
	"RandomAccess",
	"Iteration",
	"PopBack",
}

// Validation errors returned (wrapped) by Table.Validate.
var (
	ErrMissingOperation = errors.New("missing operation")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrLengthMismatch   = errors.New("timing count does not match size count")
	ErrNonPositive      = errors.New("non-positive timing value")
)

// Table maps each operation to its timings in ns, one value per entry in
// Sizes (index i corresponds to Sizes[i]).
type Table struct {
	Name  string
	Times map[string][]float64
}

// StdVector is the baseline subject: a standard dynamic array.
var StdVector = &Table{
	Name: "std::vector",
	Times: map[string][]float64{
		"Construction": {40.7, 80.5, 275, 1933, 4173},
		"PushBack":     {10.3, 28.3, 199, 1500, 3640},
		"EmplaceBack":  {9.92, 26.5, 192, 1432, 3442},
		"RandomAccess": {3.14, 22.2, 210, 1023, 2170},
		"Iteration":    {1.23, 13.9, 68.4, 489, 971},
		"PopBack":      {111, 145, 219, 736, 1317},
	},
}

// StaticVector is the fixed-capacity subject: a bounded-capacity array
// variant that never reallocates.
var StaticVector = &Table{
	Name: "static_vector",
	Times: map[string][]float64{
		"Construction": {2.82, 34.6, 225, 1836, 4336},
		"PushBack":     {2.92, 38.4, 237, 1799, 4123},
		"EmplaceBack":  {2.83, 27.5, 225, 1777, 4106},
		"RandomAccess": {1.91, 12.6, 96.7, 1102, 2137},
		"Iteration":    {1.42, 11.8, 69.5, 491, 973},
		"PopBack":      {129, 147, 242, 993, 1860},
	},
}

// Series returns the timing sequence for op.
func (t *Table) Series(op string) ([]float64, bool) {
	s, ok := t.Times[op]
	return s, ok
}

// Validate checks the table invariants: every declared operation present with
// exactly len(Sizes) positive values, and no operations beyond the declared
// set.
func (t *Table) Validate() error {
	for _, op := range Operations {
		s, ok := t.Times[op]
		if !ok {
			return fmt.Errorf("%s: %w: %s", t.Name, ErrMissingOperation, op)
		}
		if len(s) != len(Sizes) {
			return fmt.Errorf("%s: %s: %w: got %d want %d", t.Name, op, ErrLengthMismatch, len(s), len(Sizes))
		}
		for i, v := range s {
			if v <= 0 {
				return fmt.Errorf("%s: %s[%d]: %w: %v", t.Name, op, i, ErrNonPositive, v)
			}
		}
	}
	if len(t.Times) != len(Operations) {
		for op := range t.Times {
			if !knownOperation(op) {
				return fmt.Errorf("%s: %w: %s", t.Name, ErrUnknownOperation, op)
			}
		}
	}
	return nil
}

func knownOperation(op string) bool {
	for _, o := range Operations {
		if o == op {
			return true
		}
	}
	return false
}

// FormatValue renders a timing for annotation: the shortest decimal form
// that round-trips, so source values keep their original precision (40.7
// stays "40.7", 275 stays "275").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
