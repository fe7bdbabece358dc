package budget

import "strings"

type AverageCosts struct {
	Accommodation  float64 `json:"accommodation"`
	Meals          float64 `json:"meals"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
}

type Attraction struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimated_cost"`
	Duration      string  `json:"duration"`
}

// Destination is the cost profile the estimator scales. AverageCosts are per
// day; AverageFlightPrice is per trip.
type Destination struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Country            string       `json:"country"`
	Region             string       `json:"region"`
	Description        string       `json:"description"`
	AverageFlightPrice float64      `json:"average_flight_price"`
	Currency           string       `json:"currency"`
	BestTimeToVisit    string       `json:"best_time_to_visit"`
	VisaRequired       bool         `json:"visa_required"`
	Language           string       `json:"language"`
	Timezone           string       `json:"timezone"`
	AverageCosts       AverageCosts `json:"average_costs"`
	Attractions        []Attraction `json:"attractions"`
	Tips               []string     `json:"tips"`
}

const AllRegions = "All"

var regions = []string{AllRegions, "Europe", "Asia", "Americas", "Oceania", "Africa"}

// Catalog is a read-only, ordered set of destinations.
type Catalog struct {
	destinations []Destination
	byID         map[string]int
}

func NewCatalog(destinations []Destination) *Catalog {
	c := &Catalog{
		destinations: destinations,
		byID:         make(map[string]int, len(destinations)),
	}
	for i, d := range destinations {
		c.byID[d.ID] = i
	}
	return c
}

// DefaultCatalog holds the destinations shipped with the service.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinDestinations)
}

func (c *Catalog) Get(id string) (Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Destination{}, false
	}
	return c.destinations[i], true
}

func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// ByRegion returns every destination for "All" or an empty region.
func (c *Catalog) ByRegion(region string) []Destination {
	if region == "" || region == AllRegions {
		return c.All()
	}
	out := make([]Destination, 0)
	for _, d := range c.destinations {
		if strings.EqualFold(d.Region, region) {
			out = append(out, d)
		}
	}
	return out
}

// Search matches name, country and description, case-insensitively.
func (c *Catalog) Search(query string) []Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	out := make([]Destination, 0)
	for _, d := range c.destinations {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Country), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) Regions() []string {
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// Filter combines region and text search, keeping catalog order.
func (c *Catalog) Filter(region, query string) []Destination {
	inRegion := make(map[string]struct{})
	for _, d := range c.ByRegion(region) {
		inRegion[d.ID] = struct{}{}
	}
	out := make([]Destination, 0)
	for _, d := range c.Search(query) {
		if _, ok := inRegion[d.ID]; ok {
			out = append(out, d)
		}
	}
	return out
}
