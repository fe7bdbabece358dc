package flight

type QuickFilterID string

const (
	QuickDirect  QuickFilterID = "direct"
	QuickMorning QuickFilterID = "morning"
	QuickEvening QuickFilterID = "evening"
	QuickBudget  QuickFilterID = "budget"
	QuickShort   QuickFilterID = "short"
	QuickEco     QuickFilterID = "eco"
)

const (
	budgetPriceCeiling = 300
	ecoEmissionsLimit  = 200
	missingEcoValue    = 999
)

var quickFilterOrder = []QuickFilterID{
	QuickDirect, QuickMorning, QuickEvening, QuickBudget, QuickShort, QuickEco,
}

var quickFilterLabels = map[QuickFilterID]string{
	QuickDirect:  "Direct flights",
	QuickMorning: "Morning",
	QuickEvening: "Evening",
	QuickBudget:  "Under $300",
	QuickShort:   "Short layovers",
	QuickEco:     "Eco-friendly",
}

func (id QuickFilterID) IsValid() bool {
	_, ok := quickFilterLabels[id]
	return ok
}

func (id QuickFilterID) Label() string {
	return quickFilterLabels[id]
}

type QuickFilterCount struct {
	ID     QuickFilterID `json:"id"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
	Active bool          `json:"active"`
}

func (id QuickFilterID) matches(f FlightRecord) bool {
	switch id {
	case QuickDirect:
		return f.Stops == 0
	case QuickMorning:
		h, ok := departureHour(f)
		return ok && h >= 5 && h < 12
	case QuickEvening:
		h, ok := departureHour(f)
		return ok && (h >= 18 || h < 5)
	case QuickBudget:
		return f.Price.Amount < budgetPriceCeiling
	case QuickShort:
		return f.Stops <= 1
	case QuickEco:
		return reportedEmissions(f, missingEcoValue) < ecoEmissionsLimit
	}
	return true
}

func departureHour(f FlightRecord) (int, bool) {
	m, ok := ClockMinutes(f.DepartureTime)
	if !ok {
		return 0, false
	}
	return m / 60, true
}

// ApplyQuickFilters ANDs every active predicate over the structurally
// filtered set. Unknown ids are ignored.
func ApplyQuickFilters(flights []FlightRecord, active []QuickFilterID) []FlightRecord {
	preds := activeSet(active)
	if len(preds) == 0 {
		out := make([]FlightRecord, len(flights))
		copy(out, flights)
		return out
	}

	out := make([]FlightRecord, 0, len(flights))
	for _, f := range flights {
		keep := true
		for _, id := range quickFilterOrder {
			if _, on := preds[id]; on && !id.matches(f) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, f)
		}
	}
	return out
}

// QuickFilterCounts reports, for each predicate on its own, how many of the
// structurally filtered flights it would keep. Other active quick filters
// are deliberately not applied so users can compare effect sizes.
func QuickFilterCounts(flights []FlightRecord, active []QuickFilterID) []QuickFilterCount {
	preds := activeSet(active)
	counts := make([]QuickFilterCount, 0, len(quickFilterOrder))
	for _, id := range quickFilterOrder {
		n := 0
		for _, f := range flights {
			if id.matches(f) {
				n++
			}
		}
		_, on := preds[id]
		counts = append(counts, QuickFilterCount{ID: id, Label: id.Label(), Count: n, Active: on})
	}
	return counts
}

func activeSet(active []QuickFilterID) map[QuickFilterID]struct{} {
	set := make(map[QuickFilterID]struct{}, len(active))
	for _, id := range active {
		if id.IsValid() {
			set[id] = struct{}{}
		}
	}
	return set
}
