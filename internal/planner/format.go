// README: Small formatting helpers shared by the generator nodes.
package planner

import (
	"fmt"
	"strconv"
)

const dateLayout = "2006-01-02"

// formatComma renders 1234567 as "1,234,567".
func formatComma(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}

// addClock adds minutes to an "HH:MM" clock time with 24-hour wraparound.
func addClock(base string, minutes int) string {
	var hour, minute int
	_, _ = fmt.Sscanf(base, "%d:%d", &hour, &minute)
	total := hour*60 + minute + minutes
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}

// formatFlightTime renders 150 minutes as "2h 30m".
func formatFlightTime(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
