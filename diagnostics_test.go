package timsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLoggerEmitsRunAndMergeEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	input := pseudoRandomInts(400, 7)
	Sort(input, lessInt, WithLogger(logger))

	entries := logs.All()
	require.NotEmpty(t, entries, "expected at least one log entry for a 400-element sort")

	var sawScan, sawMerge bool
	for _, e := range entries {
		switch e.Message {
		case "scan":
			sawScan = true
		case "mergeAt":
			sawMerge = true
		}
	}
	assert.True(t, sawScan, "expected a run-scan log event")
	assert.True(t, sawMerge, "expected a merge log event")
}

func TestWithLoggerNilIsSilentByDefault(t *testing.T) {
	// No logger attached: Sort must not panic or otherwise behave
	// differently just because diagnostics are unconfigured.
	input := pseudoRandomInts(200, 11)
	want := append([]int(nil), input...)
	Sort(want, lessInt)

	got := append([]int(nil), input...)
	Sort(got, lessInt)

	assert.Equal(t, want, got)
}

func TestWithAssertionsPanicsOnBrokenOrdering(t *testing.T) {
	// A less that reports both a<b and b<a is not a strict weak order;
	// under WithAssertions(true) this must trip an interior invariant
	// rather than silently producing garbage.
	broken := func(a, b int) bool { return a != b }

	input := pseudoRandomInts(128, 3)

	assert.Panics(t, func() {
		Sort(input, broken, WithAssertions(true))
	})
}

func TestWithAssertionsOffToleratesBrokenOrdering(t *testing.T) {
	broken := func(a, b int) bool { return a != b }
	input := pseudoRandomInts(128, 3)

	assert.NotPanics(t, func() {
		Sort(input, broken)
	})
}

func TestWithAuditPassesForGenuinelySortedMerge(t *testing.T) {
	s := []int{1, 3, 5, 2, 4, 6}

	assert.NotPanics(t, func() {
		Merge(s, 3, lessInt, WithAudit(true))
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s)
}

func TestWithAuditCatchesUnsortedInputToMerge(t *testing.T) {
	s := []int{5, 1, 3, 2, 4, 6} // left half [5,1,3] is not sorted

	assert.PanicsWithValue(t, AuditError{Op: "Merge (left half)", Why: "output is not sorted"}, func() {
		Merge(s, 3, lessInt, WithAudit(true))
	})
}

func TestWithAuditPassesForGenuinelySortedOutput(t *testing.T) {
	input := pseudoRandomInts(500, 5)

	assert.NotPanics(t, func() {
		Sort(input, lessInt, WithAudit(true))
	})
}
