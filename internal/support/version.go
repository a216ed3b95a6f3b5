package support

import (
	"strconv"
	"strings"
)

// CompareVersions compares dot separated versions component by component.
// A missing component counts as 0, so "1.2" < "1.2.1" and "2.0.0" == "2.0".
// It returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	for i := 0; i < max(len(partsA), len(partsB)); i++ {
		left := component(partsA, i)
		right := component(partsB, i)

		switch {
		case left < right:
			return -1
		case left > right:
			return 1
		}
	}

	return 0
}

// component parses the leading digits of parts[i]; anything unparsable is 0.
func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}

	part := strings.TrimSpace(parts[i])

	end := 0
	for end < len(part) && part[end] >= '0' && part[end] <= '9' {
		end++
	}

	ret, err := strconv.Atoi(part[:end])
	if err != nil {
		return 0
	}

	return ret
}
