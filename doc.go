// Package timsort provides a fast, stable, adaptive sort over Go slices.
//
// It is a stable, adaptive, iterative mergesort that requires far fewer
// than n lg(n) comparisons when running on partially sorted slices, while
// offering performance comparable to a traditional mergesort when run on
// random slices. Like all proper mergesorts, it is stable and runs in
// O(n log n) time worst case. In the worst case it requires temporary
// storage for n/2 element slots; in the best case only a small constant
// amount of space.
//
// This implementation was derived from Java's TimSort object by Josh
// Bloch, which in turn was based on the original code by Tim Peters:
//
// http://svn.python.org/projects/python/trunk/Objects/listsort.txt
//
// Sort and SortFunc drive the run scanner and the pending-run scheduler
// until the input is consumed, then force a final collapse. Merge and
// MergeFunc skip the scanner and merge two already-sorted adjacent
// subranges directly.
//
// The companion operations (BinarySearchFunc, IndexOfFunc, ContainsFunc,
// InsertFunc, RemoveFunc, UnionFunc, IntersectionFunc, DifferenceFunc,
// IterateOverFunc) all operate on slices already sorted by the same
// less/key pair.
package timsort
