package unscramble

import "math"

// confidence scores matched tokens against the token count of the
// original input as an integer percentage. Zero tokens scores zero so
// the result is always a defined value in [0,100].
func confidence(matched, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(matched) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
