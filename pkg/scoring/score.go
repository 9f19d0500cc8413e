// Package scoring compares the integer tuples reporters assign to reports.
// Higher values mean more important findings.
package scoring

// Score is compared lexicographically: the first differing position decides, and
// a strict prefix is less than any tuple extending it.
type Score []int

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func Compare(a, b Score) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether s ranks below other.
func (s Score) Less(other Score) bool {
	return Compare(s, other) < 0
}
