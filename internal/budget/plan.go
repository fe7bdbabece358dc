package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPlanNotFound        = errors.New("budget plan not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidItem         = errors.New("invalid budget item")
	ErrDefaultItem         = errors.New("default budget items cannot be removed")
)

const (
	CategoryFlights        = "Flights"
	CategoryAccommodation  = "Accommodation"
	CategoryFood           = "Food & Dining"
	CategoryTransportation = "Local Transport"
	CategoryActivities     = "Activities"
)

var defaultCategories = []string{
	CategoryFlights,
	CategoryAccommodation,
	CategoryFood,
	CategoryTransportation,
	CategoryActivities,
}

type Item struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
	Custom   bool    `json:"custom"`
}

// Plan is a user's budget for one trip: the five default categories first,
// then any custom items in the order they were added.
type Plan struct {
	ID            int64     `json:"id,string"`
	DestinationID string    `json:"destination_id"`
	TripDays      int       `json:"trip_days"`
	Level         Level     `json:"level"`
	Items         []Item    `json:"items"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPlan(destinationID string, tripDays int, level Level) *Plan {
	items := make([]Item, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		items = append(items, Item{Category: c})
	}
	return &Plan{
		DestinationID: destinationID,
		TripDays:      tripDays,
		Level:         level,
		Items:         items,
	}
}

// Apply overwrites the default category amounts. Custom items and notes are
// left alone.
func (p *Plan) Apply(b Breakdown) {
	amounts := map[string]float64{
		CategoryFlights:        b.Flights,
		CategoryAccommodation:  b.Accommodation,
		CategoryFood:           b.Meals,
		CategoryTransportation: b.Transportation,
		CategoryActivities:     b.Activities,
	}
	for i := range p.Items {
		if p.Items[i].Custom {
			continue
		}
		if amount, ok := amounts[p.Items[i].Category]; ok {
			p.Items[i].Amount = amount
		}
	}
}

func (p *Plan) AddCustomItem(category string, amount float64, notes string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidItem)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidItem)
	}
	p.Items = append(p.Items, Item{Category: category, Amount: amount, Notes: notes, Custom: true})
	return nil
}

func (p *Plan) UpdateItem(index int, amount float64, notes string) error {
	if index < 0 || index >= len(p.Items) {
		return fmt.Errorf("%w: no item at index %d", ErrInvalidItem, index)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidItem)
	}
	p.Items[index].Amount = amount
	p.Items[index].Notes = notes
	return nil
}

func (p *Plan) RemoveCustomItem(index int) error {
	if index < 0 || index >= len(p.Items) {
		return fmt.Errorf("%w: no item at index %d", ErrInvalidItem, index)
	}
	if !p.Items[index].Custom {
		return ErrDefaultItem
	}
	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	return nil
}

func (p *Plan) Total() float64 {
	total := 0.0
	for _, it := range p.Items {
		total += it.Amount
	}
	return total
}

func (p *Plan) flightsAmount() float64 {
	for _, it := range p.Items {
		if !it.Custom && it.Category == CategoryFlights {
			return it.Amount
		}
	}
	return 0
}

// DailyAverage is the per-day spend on the ground, so flights are left out.
func (p *Plan) DailyAverage() float64 {
	if p.TripDays <= 0 {
		return 0
	}
	return round((p.Total() - p.flightsAmount()) / float64(p.TripDays))
}
