package flight

import "hash/fnv"

const (
	estimatedEmissionsMin  = 150
	estimatedEmissionsSpan = 200
)

// reportedEmissions returns the provider-supplied emissions, or fallback when
// the provider sent none. Values filled in by EstimateEmissions do not count
// as reported.
func reportedEmissions(f FlightRecord, fallback int) int {
	if f.CarbonEmissions == nil || f.EmissionsEstimated {
		return fallback
	}
	return *f.CarbonEmissions
}

// EstimateEmissions is the display placeholder for flights without emissions
// data, in [150,350). It is keyed by flight id so a record shows the same
// value on every render.
func EstimateEmissions(flightID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(flightID))
	return estimatedEmissionsMin + int(h.Sum32()%estimatedEmissionsSpan)
}
