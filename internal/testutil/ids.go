package testutil

import "strconv"

// SequentialIDs returns an id source yielding prefix1, prefix2, ...
// Use it wherever a test needs predictable task ids.
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}
