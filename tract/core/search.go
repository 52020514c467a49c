package core

// SearchAscending returns the rightmost insertion index for v in the
// sorted-ascending slice a: the smallest i such that every element before i
// is <= v and every element from i on is > v. Inserting v at i keeps a
// sorted, placed after any existing equal elements.
//
// The result is in [0, len(a)]. a must be sorted ascending; this is not
// validated.
func SearchAscending(a []float64, v float64) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
