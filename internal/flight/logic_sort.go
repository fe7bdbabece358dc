package flight

import "sort"

// "best" score weights. The score is a display heuristic, lower is better:
// one point per $100, one per 10 minutes, fifty per stop.
const (
	bestPriceDivisor    = 100.0
	bestDurationDivisor = 10.0
	bestStopPenalty     = 50.0
)

// BestScore is the composite used by the "best" ordering.
func BestScore(f FlightRecord) float64 {
	return f.Price.Amount/bestPriceDivisor +
		float64(f.Minutes())/bestDurationDivisor +
		float64(f.Stops)*bestStopPenalty
}

// SortFlights returns a new slice ordered by option. Ties keep input order
// so cards do not jump between renders. Unknown options sort as "best".
func SortFlights(flights []FlightRecord, option SortOption) []FlightRecord {
	sorted := make([]FlightRecord, len(flights))
	copy(sorted, flights)
	if len(sorted) <= 1 {
		return sorted
	}

	switch option {
	case SortCheapest:
		sortByPrice(sorted)
	case SortFastest:
		sortByDuration(sorted)
	default:
		sortByBestScore(sorted)
	}
	return sorted
}

func sortByPrice(flights []FlightRecord) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price.Amount < flights[j].Price.Amount
	})
}

func sortByDuration(flights []FlightRecord) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Minutes() < flights[j].Minutes()
	})
}

func sortByBestScore(flights []FlightRecord) {
	sort.SliceStable(flights, func(i, j int) bool {
		return BestScore(flights[i]) < BestScore(flights[j])
	})
}
