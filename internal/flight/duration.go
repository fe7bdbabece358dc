package flight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnknownDuration is assigned to records whose duration cannot be parsed.
// It is large enough that such records rank after every real flight.
const UnknownDuration = 9999

var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d+)?m?`)

// ParseDuration reads "<h>h <m>m" style durations. The minutes part is
// optional; anything without an hours part yields UnknownDuration.
func ParseDuration(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return UnknownDuration
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return UnknownDuration
	}
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}

func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ClockMinutes converts a naive "HH:MM" wall-clock time to minutes since
// midnight.
func ClockMinutes(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Normalize is applied once when records enter the service. It resolves the
// duration to integer minutes so later stages never re-parse the display
// string, and fills the display string when only minutes are known.
func Normalize(flights []FlightRecord) []FlightRecord {
	out := make([]FlightRecord, len(flights))
	for i, f := range flights {
		switch {
		case f.DurationMinutes <= 0:
			f.DurationMinutes = ParseDuration(f.TotalDuration)
		case f.TotalDuration == "":
			f.TotalDuration = FormatDuration(f.DurationMinutes)
		}
		if f.Stops == 0 && len(f.Segments) > 1 {
			f.Stops = len(f.Segments) - 1
		}
		out[i] = f
	}
	return out
}
