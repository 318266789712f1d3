package eca

// Contains reports whether id is in the selection.
func Contains(selected []string, id string) bool {
	for _, s := range selected {
		if s == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id and returns the new selection. The input
// slice is not modified. Every occurrence is removed so a selection that
// somehow holds a duplicate heals on the next toggle.
func Toggle(selected []string, id string) []string {
	if !Contains(selected, id) {
		out := make([]string, len(selected), len(selected)+1)
		copy(out, selected)
		return append(out, id)
	}
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}
