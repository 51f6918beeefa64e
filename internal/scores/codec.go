package scores

import (
	"strconv"
	"strings"
)

// Parse decodes a comma separated list of integers.
// Tokens that are not integers are dropped.
func Parse(s string) []int {
	out := []int{}
	if s == "" {
		return out
	}
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Format encodes scores as "a,b,c".
func Format(scores []int) string {
	parts := make([]string, len(scores))
	for i, n := range scores {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
