package relation

import "slices"

// permutations returns all r-length ordered arrangements of items.
// Captured number sets are bounded at three elements, so the output is at
// most 3! slices; an explicit generator keeps that bound visible.
func permutations(items []string, r int) [][]string {
	if r < 0 || r > len(items) {
		return nil
	}
	var out [][]string
	var build func(current []string, remaining []string)
	build = func(current, remaining []string) {
		if len(current) == r {
			out = append(out, slices.Clone(current))
			return
		}
		for i, item := range remaining {
			rest := append(append(make([]string, 0, len(remaining)-1), remaining[:i]...), remaining[i+1:]...)
			build(append(current, item), rest)
		}
	}
	build(nil, items)
	return out
}

// matchesPermutation reports whether numbers is an ordered arrangement of
// captured, i.e. equal as multisets with equal length.
func matchesPermutation(numbers, captured []string) bool {
	if len(numbers) != len(captured) {
		return false
	}
	for _, p := range permutations(captured, len(captured)) {
		if slices.Equal(numbers, p) {
			return true
		}
	}
	return false
}
