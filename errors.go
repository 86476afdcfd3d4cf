package timsort

import "fmt"

// invariantViolation is panicked from an interior assertion when
// WithAssertions(true) is set and an internal invariant does not hold —
// most commonly because the caller's less function does not describe a
// strict weak order (e.g. it reports both less(x, y) and less(y, x) as
// true). It is never panicked when assertions are off; in that mode the
// violated invariant may produce an incorrect permutation, but every
// slice access remains in bounds, so the call still cannot corrupt memory
// or panic with an index-out-of-range.
type invariantViolation struct {
	where string
	why   string
}

func (e invariantViolation) Error() string {
	return fmt.Sprintf("timsort: invariant violated in %s: %s (less is likely not a strict weak order)", e.where, e.why)
}

func assertInvariant(enabled bool, where string, ok bool, why string) {
	if enabled && !ok {
		panic(invariantViolation{where: where, why: why})
	}
}

// MergePreconditionError is panicked by Merge/MergeFunc when mid does not
// lie within [0, len(s)]. Unlike the "are the two halves actually sorted"
// precondition (only checked under WithAudit), this one is checked
// unconditionally: it is an O(1) check and violating it would otherwise
// index outside the slice.
type MergePreconditionError struct {
	Mid, Len int
}

func (e MergePreconditionError) Error() string {
	return fmt.Sprintf("timsort: merge mid %d out of range for slice of length %d", e.Mid, e.Len)
}

// AuditError is panicked under WithAudit(true) when a postcondition check
// (the output of Sort/Merge is not actually sorted, or Merge's input
// halves were not actually pre-sorted) fails. Audit mode is O(n) extra
// work and is meant for test/debug builds, not production hot paths.
type AuditError struct {
	Op  string
	Why string
}

func (e AuditError) Error() string {
	return fmt.Sprintf("timsort: audit failed for %s: %s", e.Op, e.Why)
}
