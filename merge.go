package timsort

// minGallopThreshold is the initial number of consecutive wins by the
// same run required to enter galloping mode. mergeLo/mergeHi nudge the
// per-sort minGallop field higher for random data (galloping rarely
// pays off) and lower for highly structured data (galloping helps
// often).
const minGallopThreshold = 7

// mergeAt merges the two runs at stack indices i and i+1. Run i must be
// the penultimate or antepenultimate run on the stack (i.e. i must equal
// stackSize-2 or stackSize-3).
func (s *sorter[E, K]) mergeAt(i int) {
	st := &s.stack
	assertInvariant(s.opts.assertions, "mergeAt", st.size() >= 2, "stack size >= 2")
	assertInvariant(s.opts.assertions, "mergeAt", i == st.size()-2 || i == st.size()-3, "i must be the penultimate or antepenultimate run")

	r1 := st.runs[i]
	r2 := st.runs[i+1]
	base1, len1 := r1.base, r1.len
	base2, len2 := r2.base, r2.len
	assertInvariant(s.opts.assertions, "mergeAt", len1 > 0 && len2 > 0, "both runs must be non-empty")
	assertInvariant(s.opts.assertions, "mergeAt", base1+len1 == base2, "runs must be storage-adjacent")

	s.opts.logMerge(i, base1, len1, base2, len2)

	// Record the combined length; if i is the third-last run, slide the
	// last run (uninvolved in this merge) down. Run i+1 goes away either
	// way.
	st.runs[i].len = len1 + len2
	if i == st.size()-3 {
		st.runs[i+1] = st.runs[i+2]
	}
	st.runs = st.runs[:st.size()-1]

	// Pre-merge trimming: find where run2's first element belongs in
	// run1 (elements before that point in run1 are already in place),
	// and where run1's last element belongs in run2 (elements after that
	// point in run2 are already in place). This bounds scratch use to
	// the post-trim min(len1, len2), not the raw run sizes.
	k := s.gallopRight(s.keyAt(base2), s.atFunc(base1), len1, 0)
	assertInvariant(s.opts.assertions, "mergeAt", k >= 0, "gallopRight returned a negative offset")
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	len2 = s.gallopLeft(s.keyAt(base1+len1-1), s.atFunc(base2), len2, len2-1)
	assertInvariant(s.opts.assertions, "mergeAt", len2 >= 0, "gallopLeft returned a negative offset")
	if len2 == 0 {
		return
	}

	if len1 <= len2 {
		s.mergeLo(base1, len1, base2, len2)
	} else {
		s.mergeHi(base1, len1, base2, len2)
	}
}

// atFunc returns an accessor for a[base+i], for use as the gallop
// probes' search space.
func (s *sorter[E, K]) atFunc(base int) func(int) K {
	return func(i int) K { return s.keyAt(base + i) }
}

// tmpAtFunc returns an accessor for tmp[base+i].
func (s *sorter[E, K]) tmpAtFunc(tmp []E, base int) func(int) K {
	return func(i int) K { return s.key(tmp[base+i]) }
}

// gallopLeft locates the position at which to insert key into the
// already-sorted range addressed by at(0:length); if the range contains
// an element equal to key, it returns the index of the leftmost equal
// element (lower-bound semantics). hint is the index at which to begin
// the search — the closer to the true answer, the fewer probes this
// takes.
//
// Returns k, 0 <= k <= length, such that at(k-1) < key <= at(k),
// pretending at(-1) is -infinity and at(length) is +infinity.
func (s *sorter[E, K]) gallopLeft(key K, at func(int) K, length, hint int) int {
	lastOfs := 0
	ofs := 1

	if s.less(at(hint), key) {
		// Gallop right until at(hint+lastOfs) < key <= at(hint+ofs).
		maxOfs := length - hint
		for ofs < maxOfs && s.less(at(hint+ofs), key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// Gallop left until at(hint-ofs) < key <= at(hint-lastOfs).
		maxOfs := hint + 1
		for ofs < maxOfs && !s.less(at(hint-ofs), key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// Now at(lastOfs) < key <= at(ofs); binary search the bracket.
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if s.less(at(m), key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft, except that if the range contains an
// element equal to key, it returns the index after the rightmost equal
// element (upper-bound semantics).
func (s *sorter[E, K]) gallopRight(key K, at func(int) K, length, hint int) int {
	ofs := 1
	lastOfs := 0

	if s.less(key, at(hint)) {
		maxOfs := hint + 1
		for ofs < maxOfs && s.less(key, at(hint-ofs)) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		maxOfs := length - hint
		for ofs < maxOfs && !s.less(key, at(hint+ofs)) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if s.less(key, at(m)) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// mergeLo merges two adjacent runs in place, stably. Call only when
// len1 <= len2 (its twin mergeHi should be called otherwise), since it
// stages the first run into scratch and fills left to right, bounding
// scratch use to len1.
func (s *sorter[E, K]) mergeLo(base1, len1, base2, len2 int) {
	a := s.a
	tmp := s.scratchBuf.reserve(len1, s.maxScratch)
	copy(tmp, a[base1:base1+len1])

	cursor1 := 0     // index into tmp
	cursor2 := base2 // index into a
	dest := base1    // index into a

	// Move the second run's first element and handle degenerate cases.
	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:dest+len1], tmp)
		return
	}
	if len1 == 1 {
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run1 to the end
		return
	}

	minGallop := s.minGallop

outer:
	for {
		count1 := 0 // consecutive wins for run1 (tmp)
		count2 := 0 // consecutive wins for run2 (a)

		// Pairing loop: compare head elements one at a time until one
		// side has won minGallop times in a row.
		for {
			assertInvariant(s.opts.assertions, "mergeLo", len1 > 1 && len2 > 0, "both runs must have elements left")
			if s.less(s.key(a[cursor2]), s.key(tmp[cursor1])) {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		// Galloping loop: one side is winning so consistently that
		// bulk-copying a gallop-located prefix beats one-at-a-time
		// comparison.
		for {
			assertInvariant(s.opts.assertions, "mergeLo", len1 > 1 && len2 > 0, "both runs must have elements left")
			count1 = s.gallopRight(s.key(a[cursor2]), s.tmpAtFunc(tmp, cursor1), len1, 0)
			if count1 != 0 {
				copy(a[dest:dest+count1], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = s.gallopLeft(s.key(tmp[cursor1]), s.atFunc(cursor2), len2, 0)
			if count2 != 0 {
				copy(a[dest:dest+count2], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}
			minGallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize for leaving gallop mode
	}

	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		assertInvariant(s.opts.assertions, "mergeLo", len2 > 0, "run2 must have elements left")
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
	case len1 == 0:
		assertInvariant(s.opts.assertions, "mergeLo", false, "less does not describe a strict weak order")
	default:
		assertInvariant(s.opts.assertions, "mergeLo", len2 == 0, "run2 should be exhausted here")
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
	}
}

// mergeHi is mergeLo's mirror image. Call only when len1 >= len2, since
// it stages the second run into scratch and fills right to left,
// bounding scratch use to len2.
func (s *sorter[E, K]) mergeHi(base1, len1, base2, len2 int) {
	a := s.a
	tmp := s.scratchBuf.reserve(len2, s.maxScratch)
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1 // index into a
	cursor2 := len2 - 1         // index into tmp
	dest := base2 + len2 - 1    // index into a

	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		dest -= len2 - 1
		copy(a[dest:dest+len2], tmp)
		return
	}
	if len2 == 1 {
		dest -= len1 - 1
		cursor1 -= len1 - 1
		copy(a[dest:dest+len1], a[cursor1:cursor1+len1])
		a[dest-1] = tmp[cursor2]
		return
	}

	minGallop := s.minGallop

outer:
	for {
		count1 := 0
		count2 := 0

		for {
			assertInvariant(s.opts.assertions, "mergeHi", len1 > 0 && len2 > 1, "both runs must have elements left")
			if s.less(s.key(tmp[cursor2]), s.key(a[cursor1])) {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			assertInvariant(s.opts.assertions, "mergeHi", len1 > 0 && len2 > 1, "both runs must have elements left")
			count1 = len1 - s.gallopRight(s.key(tmp[cursor2]), s.atFunc(base1), len1, len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:dest+1+count1], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - s.gallopLeft(s.key(a[cursor1]), s.tmpAtFunc(tmp, 0), len2, len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:dest+1+count2], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}
			minGallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2
	}

	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		assertInvariant(s.opts.assertions, "mergeHi", len1 > 0, "run1 must have elements left")
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
	case len2 == 0:
		assertInvariant(s.opts.assertions, "mergeHi", false, "less does not describe a strict weak order")
	default:
		assertInvariant(s.opts.assertions, "mergeHi", len1 == 0, "run1 should be exhausted here")
		copy(a[dest-(len2-1):dest+1], tmp)
	}
}
