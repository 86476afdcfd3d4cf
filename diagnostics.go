package timsort

import "go.uber.org/zap"

// options collects the per-call diagnostic toggles described in spec §6.
// Go has no build-time macro comparable to the original C++'s
// "#ifdef ENABLE_TIMSORT_LOG"; functional options are the idiomatic Go
// substitute, applied either per call or once when constructing a
// reusable Sorter.
type options struct {
	assertions bool
	audit      bool
	logger     *zap.Logger
}

// Option configures optional diagnostic behaviour for Sort, SortFunc,
// Merge, MergeFunc, or NewSorter. The zero value of options (all toggles
// off, nil logger) costs nothing beyond a couple of boolean checks and a
// nil comparison per call.
type Option func(*options)

// WithAssertions enables interior invariant checks (see errors.go). Off
// by default, matching the original's assert() being compiled out of
// release builds.
func WithAssertions(enabled bool) Option {
	return func(o *options) { o.assertions = enabled }
}

// WithAudit enables O(n) postcondition checks: after Sort/SortFunc, that
// the output is actually sorted; after Merge/MergeFunc, that both input
// halves were actually pre-sorted. Off by default.
func WithAudit(enabled bool) Option {
	return func(o *options) { o.audit = enabled }
}

// WithLogger attaches a structured logger that receives one Debug-level
// line per outer scan/collapse iteration and per merge. A nil logger (the
// default) disables logging entirely; no log.Debug call is even
// constructed in that case.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o *options) logRun(event string, base, length, stackDepth int) {
	if o.logger == nil {
		return
	}
	o.logger.Debug(event,
		zap.Int("base", base),
		zap.Int("len", length),
		zap.Int("stackDepth", stackDepth),
	)
}

func (o *options) logMerge(i, base1, len1, base2, len2 int) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("mergeAt",
		zap.Int("stackIndex", i),
		zap.Int("base1", base1),
		zap.Int("len1", len1),
		zap.Int("base2", base2),
		zap.Int("len2", len2),
	)
}
