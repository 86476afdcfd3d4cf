package timsort

// sorter carries the state of one Sort/SortFunc/Merge/MergeFunc call: the
// slice being operated on, the ordering (as a key projection plus a
// strict-weak-order predicate over keys), the scratch buffer, the pending
// run stack, and the adaptive minGallop counter. Nothing here outlives
// the call (or, for a reusable Sorter, outlives that Sorter's lifetime).
type sorter[E any, K any] struct {
	a          []E
	key        func(E) K
	less       func(a, b K) bool
	minGallop  int
	scratchBuf scratch[E]
	stack      runStack
	maxScratch int // ceiling on scratch slots: len(a)/2
	opts       options
}

func (s *sorter[E, K]) keyAt(i int) K {
	return s.key(s.a[i])
}

func newSorter[E any, K any](a []E, key func(E) K, less func(a, b K) bool, opts options) *sorter[E, K] {
	s := &sorter[E, K]{
		a:          a,
		key:        key,
		less:       less,
		minGallop:  minGallopThreshold,
		maxScratch: len(a) / 2,
		opts:       opts,
	}
	s.stack.runs = make([]run, 0, stackCapacityHint(len(a)))
	return s
}

// sortSlice drives the run scanner and the run-stack scheduler until the
// whole slice is consumed, then forces a final collapse. This is the
// state machine from spec §4.4: INIT -> SCAN -> COLLAPSE (looping) ->
// FORCE -> DONE.
func (s *sorter[E, K]) sortSlice() {
	lo := 0
	hi := len(s.a)
	nRemaining := hi

	if nRemaining < 2 {
		return // slices of size 0 and 1 are always sorted
	}

	if nRemaining < minMergeRun {
		// Too small to bother with runs and merges: one binary insertion
		// sort pass over the whole slice, primed with whatever natural
		// run already exists at the front.
		initRunLen := s.countRunAndMakeAscending(lo, hi)
		s.binaryInsertionSort(lo, hi, lo+initRunLen)
		return
	}

	minRun := minRunLength(nRemaining)
	for {
		runLen := s.countRunAndMakeAscending(lo, hi)

		if runLen < minRun {
			force := minRun
			if nRemaining <= minRun {
				force = nRemaining
			}
			s.binaryInsertionSort(lo, lo+force, lo+runLen)
			runLen = force
		}

		s.stack.push(lo, runLen)
		s.opts.logRun("scan", lo, runLen, s.stack.size())
		s.mergeCollapse()

		lo += runLen
		nRemaining -= runLen
		if nRemaining == 0 {
			break
		}
	}

	assertInvariant(s.opts.assertions, "sortSlice", lo == hi, "cursor must reach the end of the slice")

	s.mergeForceCollapse()
	assertInvariant(s.opts.assertions, "sortSlice", s.stack.size() == 1, "exactly one run must remain after forced collapse")

	if s.opts.audit {
		auditSorted(s.a, s.key, s.less, "Sort")
	}
}

// mergeAdjacent merges the two pre-sorted adjacent subranges a[:mid] and
// a[mid:] in one shot, bypassing the run scanner entirely.
func (s *sorter[E, K]) mergeAdjacent(mid int) {
	n := len(s.a)
	if mid < 0 || mid > n {
		panic(MergePreconditionError{Mid: mid, Len: n})
	}
	if s.opts.audit {
		auditSorted(s.a[:mid], s.key, s.less, "Merge (left half)")
		auditSorted(s.a[mid:], s.key, s.less, "Merge (right half)")
	}
	if mid == 0 || mid == n {
		return // already a single sorted run
	}

	s.stack.push(0, mid)
	s.stack.push(mid, n-mid)
	s.mergeAt(0)

	if s.opts.audit {
		auditSorted(s.a, s.key, s.less, "Merge")
	}
}

func auditSorted[E any, K any](a []E, key func(E) K, less func(a, b K) bool, op string) {
	for i := 1; i < len(a); i++ {
		if less(key(a[i]), key(a[i-1])) {
			panic(AuditError{Op: op, Why: "output is not sorted"})
		}
	}
}

// Sort stably sorts s in place using less as a strict weak order over E
// itself, and returns s.
func Sort[E any](s []E, less func(a, b E) bool, opts ...Option) []E {
	return SortFunc(s, identity[E], less, opts...)
}

// SortFunc stably sorts s in place, comparing elements by their projected
// key key(s[i]) under less, and returns s.
func SortFunc[E any, K any](s []E, key func(E) K, less func(a, b K) bool, opts ...Option) []E {
	sorter := newSorter(s, key, less, resolveOptions(opts))
	sorter.sortSlice()
	return s
}

// Merge stably merges the two already-sorted adjacent subranges s[:mid]
// and s[mid:] using less as a strict weak order over E itself, and
// returns s. The behaviour is unspecified (but always memory-safe) if
// either half was not actually sorted beforehand; pass WithAudit(true) to
// check this precondition.
func Merge[E any](s []E, mid int, less func(a, b E) bool, opts ...Option) []E {
	return MergeFunc(s, mid, identity[E], less, opts...)
}

// MergeFunc is the keyed/projected counterpart of Merge.
func MergeFunc[E any, K any](s []E, mid int, key func(E) K, less func(a, b K) bool, opts ...Option) []E {
	sorter := newSorter(s, key, less, resolveOptions(opts))
	sorter.mergeAdjacent(mid)
	return s
}

func identity[E any](e E) E { return e }
