package budget

import "math"

type Level string

const (
	LevelBudget   Level = "budget"
	LevelModerate Level = "moderate"
	LevelLuxury   Level = "luxury"
)

var multipliers = map[Level]float64{
	LevelBudget:   0.7,
	LevelModerate: 1.0,
	LevelLuxury:   1.8,
}

func (l Level) IsValid() bool {
	_, ok := multipliers[l]
	return ok
}

// Multiplier scales every category. Unknown levels price as moderate.
func Multiplier(level Level) float64 {
	if m, ok := multipliers[level]; ok {
		return m
	}
	return 1.0
}

const (
	minTripDays = 1
	maxTripDays = 365
)

// ClampTripDays bounds user input. The estimator itself takes tripDays as
// given.
func ClampTripDays(days int) int {
	if days < minTripDays {
		return minTripDays
	}
	if days > maxTripDays {
		return maxTripDays
	}
	return days
}

// Breakdown is the estimate for the five default categories.
type Breakdown struct {
	Flights        float64 `json:"flights"`
	Accommodation  float64 `json:"accommodation"`
	Meals          float64 `json:"meals"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
}

func (b Breakdown) Total() float64 {
	return b.Flights + b.Accommodation + b.Meals + b.Transportation + b.Activities
}

// Estimate prices a trip. Flights are per trip, every other category is per
// day.
func Estimate(dest Destination, tripDays int, level Level) Breakdown {
	m := Multiplier(level)
	days := float64(tripDays)
	return Breakdown{
		Flights:        round(dest.AverageFlightPrice * m),
		Accommodation:  round(dest.AverageCosts.Accommodation * days * m),
		Meals:          round(dest.AverageCosts.Meals * days * m),
		Transportation: round(dest.AverageCosts.Transportation * days * m),
		Activities:     round(dest.AverageCosts.Activities * days * m),
	}
}

// round is half-up, matching how amounts are shown to users.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
