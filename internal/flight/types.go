package flight

import (
	"strings"
	"time"
)

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type SegmentPoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"`
	Terminal string `json:"terminal,omitempty"`
}

type Segment struct {
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	Duration     string       `json:"duration"`
	CarrierCode  string       `json:"carrier_code"`
	FlightNumber string       `json:"flight_number"`
	Aircraft     string       `json:"aircraft"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Baggage struct {
	CarryOn bool `json:"carry_on"`
	Checked int  `json:"checked"`
}

// FlightRecord is one normalized result of a flight search. Records are
// treated as values: every engine in this package returns new slices and
// never writes through to its input.
type FlightRecord struct {
	ID              string    `json:"id"`
	Airline         Airline   `json:"airline"`
	Segments        []Segment `json:"segments"`
	TotalDuration   string    `json:"total_duration"`
	DurationMinutes int       `json:"duration_minutes"`
	Stops           int       `json:"stops"`
	Price           Price     `json:"price"`
	DepartureTime   string    `json:"departure_time"`
	ArrivalTime     string    `json:"arrival_time"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`

	CarbonEmissions    *int `json:"carbon_emissions,omitempty"`
	EmissionsEstimated bool `json:"emissions_estimated,omitempty"`

	BaggageAllowance *Baggage `json:"baggage_allowance,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	IsRefundable     bool     `json:"is_refundable,omitempty"`

	IsBestDeal        bool `json:"is_best_deal"`
	IsFastest         bool `json:"is_fastest"`
	IsLowestEmissions bool `json:"is_lowest_emissions"`
}

// Minutes is the total travel time used for ranking and badges.
func (f FlightRecord) Minutes() int {
	if f.DurationMinutes > 0 {
		return f.DurationMinutes
	}
	return ParseDuration(f.TotalDuration)
}

type AirlineOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type PricePoint struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
	Count int     `json:"count"`
}

type SortOption string

const (
	SortBest     SortOption = "best"
	SortCheapest SortOption = "cheapest"
	SortFastest  SortOption = "fastest"
)

func (o SortOption) IsValid() bool {
	switch o {
	case SortBest, SortCheapest, SortFastest:
		return true
	}
	return false
}

type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    uint32 `json:"passengers"`
	CabinClass    string `json:"cabin_class"`

	// SessionID scopes the stale-search guard. Set from the request header.
	SessionID string `json:"-"`
}

const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"

	maxPassengers = 9
	dateLayout    = "2006-01-02"
)

func (r SearchRequest) normalized() SearchRequest {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	if r.CabinClass == "" {
		r.CabinClass = CabinEconomy
	}
	if r.Passengers == 0 {
		r.Passengers = 1
	}
	return r
}

// Validate expects a normalized request.
func (r SearchRequest) Validate() error {
	if !isIATACode(r.Origin) || !isIATACode(r.Destination) {
		return NewValidationError("origin and destination must be 3-letter airport codes")
	}
	if r.Origin == r.Destination {
		return NewValidationError("origin and destination must differ")
	}
	dep, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return NewValidationError("departure_date must be YYYY-MM-DD")
	}
	if r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return NewValidationError("return_date must be YYYY-MM-DD")
		}
		if ret.Before(dep) {
			return NewValidationError("return_date is before departure_date")
		}
	}
	if r.Passengers > maxPassengers {
		return NewValidationError("passengers must be between 1 and 9")
	}
	switch r.CabinClass {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
	default:
		return NewValidationError("unknown cabin_class: " + r.CabinClass)
	}
	return nil
}

func (r SearchRequest) criteria() SearchCriteria {
	return SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		CabinClass:    r.CabinClass,
	}
}

func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

type SearchCriteria struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    uint32 `json:"passengers"`
	CabinClass    string `json:"cabin_class"`
}

type Metadata struct {
	TotalResults uint32 `json:"total_results"`
	SearchTimeMs uint32 `json:"search_time_ms,omitempty"`
	CacheHit     bool   `json:"cache_hit"`
	CacheKey     string `json:"cache_key,omitempty"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Flights        []FlightRecord `json:"flights"`
}

type ResultsRequest struct {
	SearchRequest
	Filters      *FilterInput    `json:"filters,omitempty"`
	QuickFilters []QuickFilterID `json:"quick_filters,omitempty"`
	Sort         SortOption      `json:"sort,omitempty"`
}

type ResultsResponse struct {
	SearchCriteria    SearchCriteria     `json:"search_criteria"`
	Metadata          Metadata           `json:"metadata"`
	Filters           FilterState        `json:"filters"`
	Sort              SortOption         `json:"sort"`
	PriceBounds       [2]float64         `json:"price_bounds"`
	Airlines          []AirlineOption    `json:"airlines"`
	QuickFilters      []QuickFilterCount `json:"quick_filters"`
	ActiveFilterCount int                `json:"active_filter_count"`
	PriceGraph        []PricePoint       `json:"price_graph"`
	Flights           []FlightRecord     `json:"flights"`
}
