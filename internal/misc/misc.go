package misc

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Head returns at most the first n elements of s. A negative n yields an empty slice.
func Head[T any](s []T, n int) []T {
	n = Max(n, 0)
	return s[:Min(n, len(s))]
}

func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// StringLimit truncates s to at most n bytes, marking the cut with "..."
// when there is room. It never splits a UTF-8 sequence.
func StringLimit(s string, n int) string {
	if n < 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:runeStart(s, n)]
	}
	return s[:runeStart(s, n-3)] + "..."
}

func BytesLimit(bs []byte, n int) []byte {
	if n < 0 {
		return nil
	}
	if len(bs) <= n {
		return bs
	}
	if n <= 3 {
		return bs[:runeStart(bs, n)]
	}
	out := make([]byte, 0, n)
	return append(append(out, bs[:runeStart(bs, n-3)]...), "..."...)
}

// runeStart moves i back to the start of the UTF-8 sequence it falls in.
func runeStart[T ~string | ~[]byte](s T, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
