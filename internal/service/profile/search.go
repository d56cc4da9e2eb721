package profile

import "strings"

// Filter returns the profiles whose name, description or address contains query,
// ignoring case. A blank query matches everything. Input order is kept and the input
// slice is not modified.
func Filter(profiles []Profile, query string) []Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if q == "" || matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Profile, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Address), q)
}
