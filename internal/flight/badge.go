package flight

// placeholder emissions used only when looking for the lowest emitter
const badgeEmissionsFallback = 200

// Annotate marks, within the given set, every cheapest, fastest and lowest
// emission flight (all tied flights are marked). Flights without reported
// emissions get a stable display estimate which never takes part in the
// lowest-emissions comparison.
func Annotate(flights []FlightRecord) []FlightRecord {
	out := make([]FlightRecord, len(flights))
	if len(flights) == 0 {
		return out
	}

	minPrice := flights[0].Price.Amount
	minMinutes := flights[0].Minutes()
	minEmissions := reportedEmissions(flights[0], badgeEmissionsFallback)
	for _, f := range flights[1:] {
		if f.Price.Amount < minPrice {
			minPrice = f.Price.Amount
		}
		if m := f.Minutes(); m < minMinutes {
			minMinutes = m
		}
		if e := reportedEmissions(f, badgeEmissionsFallback); e < minEmissions {
			minEmissions = e
		}
	}

	for i, f := range flights {
		f.IsBestDeal = f.Price.Amount == minPrice
		f.IsFastest = f.Minutes() == minMinutes
		f.IsLowestEmissions = reportedEmissions(f, badgeEmissionsFallback) == minEmissions

		if f.CarbonEmissions == nil {
			estimate := EstimateEmissions(f.ID)
			f.CarbonEmissions = &estimate
			f.EmissionsEstimated = true
		}
		out[i] = f
	}
	return out
}
