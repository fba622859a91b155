package util

import (
	"fmt"
	"math"
)

// FormatSeconds formats a time span given in seconds for the status line:
// millisecond precision below one second, two decimals above.
func FormatSeconds(s float64) string {
	if math.IsInf(s, 1) {
		return "∞"
	}
	if s < 0 {
		s = 0
	}
	if s < 1 {
		return fmt.Sprintf("%dms", int(s*1000+0.5))
	}
	return fmt.Sprintf("%.2fs", s)
}
