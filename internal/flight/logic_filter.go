package flight

import (
	"math"
	"sort"
	"strings"
)

const (
	minutesPerDay = 1440
	maxStopBucket = 2
)

var defaultPriceBounds = [2]float64{0, 1000}

// FilterState is the structural filter selection for one search session.
// Empty Stops or Airlines mean "no restriction", never "exclude all".
type FilterState struct {
	Stops              []int      `json:"stops"`
	PriceRange         [2]float64 `json:"price_range"`
	Airlines           []string   `json:"airlines"`
	DepartureTimeRange [2]int     `json:"departure_time_range"`
	ArrivalTimeRange   [2]int     `json:"arrival_time_range"`
}

// DefaultFilterState is the reset state for a result set: nothing selected,
// full price bounds, full day for both time windows.
func DefaultFilterState(bounds [2]float64) FilterState {
	return FilterState{
		Stops:              []int{},
		PriceRange:         bounds,
		Airlines:           []string{},
		DepartureTimeRange: [2]int{0, minutesPerDay},
		ArrivalTimeRange:   [2]int{0, minutesPerDay},
	}
}

// FilterInput is a filter selection as clients send it. Ranges left out
// fall back to the result set's defaults.
type FilterInput struct {
	Stops              []int       `json:"stops,omitempty"`
	PriceRange         *[2]float64 `json:"price_range,omitempty"`
	Airlines           []string    `json:"airlines,omitempty"`
	DepartureTimeRange *[2]int     `json:"departure_time_range,omitempty"`
	ArrivalTimeRange   *[2]int     `json:"arrival_time_range,omitempty"`
}

// Resolve merges the input onto DefaultFilterState(bounds).
func (in FilterInput) Resolve(bounds [2]float64) FilterState {
	state := DefaultFilterState(bounds)
	if in.Stops != nil {
		state.Stops = in.Stops
	}
	if in.Airlines != nil {
		state.Airlines = in.Airlines
	}
	if in.PriceRange != nil {
		state.PriceRange = *in.PriceRange
	}
	if in.DepartureTimeRange != nil {
		state.DepartureTimeRange = *in.DepartureTimeRange
	}
	if in.ArrivalTimeRange != nil {
		state.ArrivalTimeRange = *in.ArrivalTimeRange
	}
	return state
}

// Validate checks only the fields that were sent; defaults are always valid.
func (in FilterInput) Validate() error {
	return in.Resolve(defaultPriceBounds).Validate()
}

func (s FilterState) Validate() error {
	for _, b := range s.Stops {
		if b < 0 || b > maxStopBucket {
			return NewValidationError("stops buckets must be 0, 1 or 2")
		}
	}
	if s.PriceRange[0] < 0 || s.PriceRange[0] > s.PriceRange[1] {
		return NewValidationError("price_range must be a non-negative [min,max] with min <= max")
	}
	for _, r := range [][2]int{s.DepartureTimeRange, s.ArrivalTimeRange} {
		if r[0] < 0 || r[1] > minutesPerDay || r[0] > r[1] {
			return NewValidationError("time ranges must be [min,max] within 0..1440")
		}
	}
	return nil
}

// filterContext holds the lookup sets so the loop does no allocation.
type filterContext struct {
	state    FilterState
	stops    map[int]struct{}
	airlines map[string]struct{}
}

func newFilterContext(state FilterState) *filterContext {
	fc := &filterContext{state: state}

	if len(state.Stops) > 0 {
		fc.stops = make(map[int]struct{}, len(state.Stops))
		for _, b := range state.Stops {
			fc.stops[b] = struct{}{}
		}
	}
	if len(state.Airlines) > 0 {
		fc.airlines = make(map[string]struct{}, len(state.Airlines))
		for _, code := range state.Airlines {
			fc.airlines[strings.ToUpper(code)] = struct{}{}
		}
	}
	return fc
}

// ApplyFilters keeps the flights that pass every structural filter, in
// input order.
func ApplyFilters(flights []FlightRecord, state FilterState) []FlightRecord {
	fc := newFilterContext(state)

	filtered := make([]FlightRecord, 0, len(flights))
	for _, f := range flights {
		if fc.matches(f) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func (fc *filterContext) matches(f FlightRecord) bool {
	if fc.stops != nil {
		if _, ok := fc.stops[stopBucket(f.Stops)]; !ok {
			return false
		}
	}

	if f.Price.Amount < fc.state.PriceRange[0] || f.Price.Amount > fc.state.PriceRange[1] {
		return false
	}

	if fc.airlines != nil {
		if _, ok := fc.airlines[strings.ToUpper(f.Airline.Code)]; !ok {
			return false
		}
	}

	if !withinClockRange(f.DepartureTime, fc.state.DepartureTimeRange) {
		return false
	}
	return withinClockRange(f.ArrivalTime, fc.state.ArrivalTimeRange)
}

func stopBucket(stops int) int {
	if stops > maxStopBucket {
		return maxStopBucket
	}
	return stops
}

// withinClockRange lets an unreadable time through only when the window
// spans the whole day.
func withinClockRange(clock string, r [2]int) bool {
	m, ok := ClockMinutes(clock)
	if !ok {
		return r[0] <= 0 && r[1] >= minutesPerDay
	}
	return m >= r[0] && m <= r[1]
}

func PriceBounds(flights []FlightRecord) [2]float64 {
	if len(flights) == 0 {
		return defaultPriceBounds
	}
	bounds := [2]float64{flights[0].Price.Amount, flights[0].Price.Amount}
	for _, f := range flights[1:] {
		if f.Price.Amount < bounds[0] {
			bounds[0] = f.Price.Amount
		}
		if f.Price.Amount > bounds[1] {
			bounds[1] = f.Price.Amount
		}
	}
	return bounds
}

// AvailableAirlines lists each carrier once (first name seen wins), sorted
// by name.
func AvailableAirlines(flights []FlightRecord) []AirlineOption {
	seen := make(map[string]struct{}, len(flights))
	airlines := make([]AirlineOption, 0)
	for _, f := range flights {
		if _, ok := seen[f.Airline.Code]; ok {
			continue
		}
		seen[f.Airline.Code] = struct{}{}
		airlines = append(airlines, AirlineOption{Code: f.Airline.Code, Name: f.Airline.Name})
	}

	sort.SliceStable(airlines, func(i, j int) bool {
		return strings.ToLower(airlines[i].Name) < strings.ToLower(airlines[j].Name)
	})
	return airlines
}

// ActiveFilterCount counts filter groups, not selected values: two stop
// buckets selected still count once.
func ActiveFilterCount(state FilterState, bounds [2]float64) int {
	count := 0
	if len(state.Stops) > 0 {
		count++
	}
	if len(state.Airlines) > 0 {
		count++
	}
	if state.PriceRange[0] > bounds[0] || state.PriceRange[1] < bounds[1] {
		count++
	}
	if narrowerThanDay(state.DepartureTimeRange) {
		count++
	}
	if narrowerThanDay(state.ArrivalTimeRange) {
		count++
	}
	return count
}

func narrowerThanDay(r [2]int) bool {
	return r[0] > 0 || r[1] < minutesPerDay
}

const maxPriceGraphPoints = 8

// PriceGraph averages price per airline over an already filtered set,
// cheapest first.
func PriceGraph(flights []FlightRecord) []PricePoint {
	type agg struct {
		total float64
		count int
	}
	order := make([]string, 0)
	byAirline := make(map[string]*agg)
	for _, f := range flights {
		a, ok := byAirline[f.Airline.Name]
		if !ok {
			a = &agg{}
			byAirline[f.Airline.Name] = a
			order = append(order, f.Airline.Name)
		}
		a.total += f.Price.Amount
		a.count++
	}

	points := make([]PricePoint, 0, len(order))
	for _, name := range order {
		a := byAirline[name]
		points = append(points, PricePoint{
			Label: name,
			Price: roundHalfUp(a.total / float64(a.count)),
			Count: a.count,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Price < points[j].Price
	})
	if len(points) > maxPriceGraphPoints {
		points = points[:maxPriceGraphPoints]
	}
	return points
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
