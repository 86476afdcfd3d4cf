package timsort

// Sorter is a reusable handle for sorting or merging many slices of the
// same element/key type with the same ordering. It amortises the scratch
// buffer and the adaptive minGallop counter across calls, the way the
// teacher's original timSortHandler amortised them across the merges of
// a single sort — extended here across repeated top-level calls, the way
// a bufio.Writer or strings.Builder is reused across operations instead
// of being recreated each time.
//
// A Sorter is not safe for concurrent use; each goroutine that wants one
// should construct its own (spec §5: no shared state across calls).
type Sorter[E any, K any] struct {
	key  func(E) K
	less func(a, b K) bool
	opts options

	scratchBuf scratch[E]
	minGallop  int
	stack      runStack
}

// NewSorter constructs a reusable Sorter. key may be the identity
// function (see Sort/Merge's package-level shortcuts) if no projection is
// needed.
func NewSorter[E any, K any](key func(E) K, less func(a, b K) bool, opts ...Option) *Sorter[E, K] {
	return &Sorter[E, K]{
		key:       key,
		less:      less,
		opts:      resolveOptions(opts),
		minGallop: minGallopThreshold,
	}
}

func (h *Sorter[E, K]) bind(a []E) *sorter[E, K] {
	s := &sorter[E, K]{
		a:          a,
		key:        h.key,
		less:       h.less,
		minGallop:  h.minGallop,
		scratchBuf: h.scratchBuf,
		stack:      runStack{runs: h.stack.runs[:0]},
		maxScratch: len(a) / 2,
		opts:       h.opts,
	}
	return s
}

func (h *Sorter[E, K]) unbind(s *sorter[E, K]) {
	h.minGallop = s.minGallop
	h.scratchBuf = s.scratchBuf
	h.stack = s.stack
}

// Sort stably sorts s using the Sorter's ordering, reusing this Sorter's
// scratch buffer and minGallop state across calls.
func (h *Sorter[E, K]) Sort(s []E) []E {
	sorter := h.bind(s)
	sorter.sortSlice()
	h.unbind(sorter)
	return s
}

// Merge stably merges the pre-sorted adjacent subranges s[:mid] and
// s[mid:], reusing this Sorter's scratch buffer across calls.
func (h *Sorter[E, K]) Merge(s []E, mid int) []E {
	sorter := h.bind(s)
	sorter.mergeAdjacent(mid)
	h.unbind(sorter)
	return s
}
