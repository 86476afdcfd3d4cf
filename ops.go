package timsort

// The operations in this file all assume their slice arguments are
// already sorted by the same key/less pair passed in. They build on the
// same Ordering contract as Sort/Merge, the way the teacher's
// template/slices.go builds binary search, insert, remove and set
// operations on top of its own sort.

// BinarySearchFunc returns the first index i in sorted such that
// !less(key(sorted[i]), item) — the leftmost position at which item could
// be inserted without violating order. If sorted is empty, it returns 0.
func BinarySearchFunc[E any, K any](sorted []E, item K, key func(E) K, less func(a, b K) bool) int {
	i, j := 0, len(sorted)
	for i < j {
		h := int(uint(i+j) >> 1) // avoid overflow computing the midpoint
		if less(key(sorted[h]), item) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// IndexOfFunc returns the index of an element whose key equals item
// (neither less(key, item) nor less(item, key) holds), or -1 if sorted
// contains no such element.
func IndexOfFunc[E any, K any](sorted []E, item K, key func(E) K, less func(a, b K) bool) int {
	if len(sorted) == 0 {
		return -1
	}
	i := BinarySearchFunc(sorted, item, key, less)
	if i < len(sorted) && !less(key(sorted[i]), item) && !less(item, key(sorted[i])) {
		return i
	}
	return -1
}

// ContainsFunc reports whether sorted holds an element whose key equals
// item.
func ContainsFunc[E any, K any](sorted []E, item K, key func(E) K, less func(a, b K) bool) bool {
	return IndexOfFunc(sorted, item, key, less) != -1
}

// InsertFunc inserts item into sorted at the position that keeps it
// sorted, preserving the relative order of any existing elements whose
// key equals item's (item is placed after them), and returns the
// resulting slice.
func InsertFunc[E any, K any](sorted []E, item E, key func(E) K, less func(a, b K) bool) []E {
	itemKey := key(item)
	i, j := 0, len(sorted) // upper-bound search: ties go to the right
	for i < j {
		h := int(uint(i+j) >> 1)
		if less(itemKey, key(sorted[h])) {
			j = h
		} else {
			i = h + 1
		}
	}
	if i == len(sorted) {
		return append(sorted, item)
	}
	sorted = append(sorted, item) // grow by one, value discarded by the copy below
	copy(sorted[i+1:], sorted[i:len(sorted)-1])
	sorted[i] = item
	return sorted
}

// RemoveFunc removes the first element of sorted whose key equals item,
// if any, and returns the resulting slice.
func RemoveFunc[E any, K any](sorted []E, item K, key func(E) K, less func(a, b K) bool) []E {
	i := IndexOfFunc(sorted, item, key, less)
	if i == -1 {
		return sorted
	}
	return append(sorted[:i], sorted[i+1:]...)
}

// IterateOverFunc performs a stable k-way merge walk over already-sorted
// slices without allocating a combined result, invoking callback with
// each element in ascending order and the index (within sources) of the
// slice it came from.
func IterateOverFunc[E any, K any](key func(E) K, less func(a, b K) bool, callback func(item E, srcIndex int), sources ...[]E) {
	active := make([]int, 0, len(sources)) // indices into `sources` still non-empty
	cursor := make([]int, len(sources))
	for i, src := range sources {
		if len(src) > 0 {
			active = append(active, i)
		}
	}

	for len(active) > 0 {
		winner := 0
		winnerSrc := active[0]
		winnerKey := key(sources[winnerSrc][cursor[winnerSrc]])
		for w := 1; w < len(active); w++ {
			src := active[w]
			k := key(sources[src][cursor[src]])
			if less(k, winnerKey) {
				winner = w
				winnerSrc = src
				winnerKey = k
			}
		}
		callback(sources[winnerSrc][cursor[winnerSrc]], winnerSrc)
		cursor[winnerSrc]++
		if cursor[winnerSrc] == len(sources[winnerSrc]) {
			active = append(active[:winner], active[winner+1:]...)
		}
	}
}

// UnionFunc returns the sorted union of the given already-sorted slices,
// preserving duplicates (an element present in two sources appears twice
// in the result).
func UnionFunc[E any, K any](key func(E) K, less func(a, b K) bool, sources ...[]E) []E {
	length := 0
	for _, src := range sources {
		length += len(src)
	}
	if length == 0 {
		return nil
	}
	result := make([]E, 0, length)
	IterateOverFunc(key, less, func(item E, _ int) {
		result = append(result, item)
	}, sources...)
	return result
}

// DifferenceFunc returns the elements of sorted1 whose key is absent from
// sorted2.
func DifferenceFunc[E any, K any](sorted1, sorted2 []E, key func(E) K, less func(a, b K) bool) []E {
	var result []E
	var i, j int
	for i < len(sorted1) && j < len(sorted2) {
		k1, k2 := key(sorted1[i]), key(sorted2[j])
		switch {
		case less(k1, k2):
			result = append(result, sorted1[i])
			i++
		case less(k2, k1):
			j++
		default:
			i++
		}
	}
	result = append(result, sorted1[i:]...)
	return result
}

// IntersectionFunc returns the elements common (by key) to every one of
// the given already-sorted slices, one copy per shared key, drawn from
// the shortest input slice.
func IntersectionFunc[E any, K any](key func(E) K, less func(a, b K) bool, sources ...[]E) []E {
	if len(sources) == 0 {
		return nil
	}
	shortest := 0
	for i, src := range sources {
		if len(src) < len(sources[shortest]) {
			shortest = i
		}
	}
	if len(sources[shortest]) == 0 {
		return nil
	}

	cursors := make([]int, len(sources))
	var result []E
outer:
	for c, candidate := range sources[shortest] {
		candidateKey := key(candidate)
		if c > 0 && !less(key(sources[shortest][c-1]), candidateKey) {
			continue // same key as the previous candidate
		}
		for i, src := range sources {
			if i == shortest {
				continue
			}
			for cursors[i] < len(src) && less(key(src[cursors[i]]), candidateKey) {
				cursors[i]++
			}
			if cursors[i] == len(src) || less(candidateKey, key(src[cursors[i]])) {
				continue outer // candidate absent from this source
			}
		}
		result = append(result, candidate)
	}
	return result
}
