package flightclient

import (
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)

// parseISODuration converts durations such as PT5H30M or P1DT2H to minutes.
// Seconds are dropped.
func parseISODuration(s string) (int, bool) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}
	total := 0
	for i, unit := range []int{24 * 60, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, false
		}
		total += n * unit
	}
	return total, true
}
