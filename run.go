package timsort

// run is a maximal-at-detection-time sorted subrange [base, base+len) of
// the slice being sorted. A single struct, rather than the historical
// parallel runBase/runLen arrays, keeps the (base, len) pairing an
// invariant of the type instead of a maintenance obligation of the caller.
type run struct {
	base int
	len  int
}

// minMergeRun is the threshold under which the entire slice is sorted by
// a single binary insertion sort pass. For longer slices minRunLength
// derives the minimum run length from it (between minMergeRun/2 and
// minMergeRun); shorter natural runs are lengthened to that first. It must
// stay a power of two: minRunLength's bit-accumulation trick depends on it.
const minMergeRun = 32

// minRunLength computes the minimum acceptable run length for a slice of
// length n. Natural runs shorter than this are extended with
// binaryInsertionSort.
//
// Roughly: if n < minMergeRun, return n (too small to bother). Else if n
// is an exact power of two, return minMergeRun/2. Else return k with
// minMergeRun/2 <= k <= minMergeRun such that n/k is close to, but
// strictly less than, a power of two. This keeps the number of runs close
// to a power of two, which is what makes the stack-collapse merge tree
// balanced.
func minRunLength(n int) int {
	r := 0 // becomes 1 if any 1-bits are shifted off
	for n >= minMergeRun {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// countRunAndMakeAscending returns the length of the run beginning at lo
// in a[lo:hi], reversing it in place first if it was found descending.
//
// A run is the longest non-decreasing sequence a[lo] <= a[lo+1] <= ... or
// the longest strictly-descending sequence a[lo] > a[lo+1] > .... The
// asymmetry between "<=" and ">" is required for stability: a descending
// run may only be reversed when it is strictly descending, so that equal
// elements are never reordered relative to each other by the reversal.
func (s *sorter[E, K]) countRunAndMakeAscending(lo, hi int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if s.less(s.keyAt(runHi), s.keyAt(lo)) { // descending
		if s.opts.assertions {
			assertInvariant(true, "countRunAndMakeAscending", !s.less(s.keyAt(lo), s.keyAt(runHi)), "less reports both a<b and b<a")
		}
		runHi++
		for runHi < hi && s.less(s.keyAt(runHi), s.keyAt(runHi-1)) {
			runHi++
		}
		s.reverseRange(lo, runHi)
	} else { // ascending (non-strict, absorbs equal runs)
		for runHi < hi && !s.less(s.keyAt(runHi), s.keyAt(runHi-1)) {
			runHi++
		}
	}

	return runHi - lo
}

func (s *sorter[E, K]) reverseRange(lo, hi int) {
	hi--
	for lo < hi {
		s.a[lo], s.a[hi] = s.a[hi], s.a[lo]
		lo++
		hi--
	}
}

// binaryInsertionSort sorts a[lo:hi), assuming a[lo:start) is already
// sorted. It requires O(n log n) comparisons but O(n^2) data movement
// worst case, which is why it is only used to pad short natural runs up
// to minRunLength, not as a general-purpose sort.
func (s *sorter[E, K]) binaryInsertionSort(lo, hi, start int) {
	if start == lo {
		start++
	}

	for ; start < hi; start++ {
		pivot := s.a[start]
		pivotKey := s.key(pivot)

		left := lo
		right := start

		// Invariants: pivot >= everything in [lo, left); pivot < everything
		// in [right, start). Upper-bound search: ties go to the right, so
		// pivot lands after any equal elements already in place, which is
		// what keeps this insertion stable.
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.less(pivotKey, s.keyAt(mid)) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		n := start - left // number of elements to shift right by one
		if n <= 2 {
			if n == 2 {
				s.a[left+2] = s.a[left+1]
			}
			if n > 0 {
				s.a[left+1] = s.a[left]
			}
		} else {
			copy(s.a[left+1:], s.a[left:left+n])
		}
		s.a[left] = pivot
	}
}
