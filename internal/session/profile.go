package session

import (
	"errors"
	"slices"
	"time"
)

const MaxComparison = 3

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrComparisonFull   = errors.New("comparison already holds 3 flights")
	ErrAlreadyComparing = errors.New("flight is already in the comparison")
	ErrInvalidProfile   = errors.New("invalid profile update")
)

// SavedSearch is a search the user asked to keep.
type SavedSearch struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    string    `json:"return_date,omitempty"`
	Passengers    uint32    `json:"passengers"`
	CabinClass    string    `json:"cabin_class"`
	SavedAt       time.Time `json:"saved_at"`
}

// Profile is everything the service remembers for one signed-in user.
type Profile struct {
	ID                   string        `json:"id"`
	Email                string        `json:"email"`
	Name                 string        `json:"name"`
	SavedSearches        []SavedSearch `json:"saved_searches"`
	FavoriteDestinations []string      `json:"favorite_destinations"`
	BudgetPlanIDs        []string      `json:"budget_plan_ids"`
	Comparison           []string      `json:"comparison"`
	CreatedAt            time.Time     `json:"created_at"`
}

func newProfile(id, email, name string, now time.Time) *Profile {
	return &Profile{
		ID:                   id,
		Email:                email,
		Name:                 name,
		SavedSearches:        []SavedSearch{},
		FavoriteDestinations: []string{},
		BudgetPlanIDs:        []string{},
		Comparison:           []string{},
		CreatedAt:            now,
	}
}

func (p *Profile) AddSavedSearch(s SavedSearch) {
	p.SavedSearches = append(p.SavedSearches, s)
}

// RemoveSavedSearch reports whether a search with id existed.
func (p *Profile) RemoveSavedSearch(id string) bool {
	before := len(p.SavedSearches)
	p.SavedSearches = slices.DeleteFunc(p.SavedSearches, func(s SavedSearch) bool {
		return s.ID == id
	})
	return len(p.SavedSearches) != before
}

// ToggleFavorite adds or removes a destination and returns whether it is now
// a favorite.
func (p *Profile) ToggleFavorite(destinationID string) bool {
	if i := slices.Index(p.FavoriteDestinations, destinationID); i >= 0 {
		p.FavoriteDestinations = slices.Delete(p.FavoriteDestinations, i, i+1)
		return false
	}
	p.FavoriteDestinations = append(p.FavoriteDestinations, destinationID)
	return true
}

func (p *Profile) AddBudgetPlan(planID string) {
	if slices.Contains(p.BudgetPlanIDs, planID) {
		return
	}
	p.BudgetPlanIDs = append(p.BudgetPlanIDs, planID)
}

func (p *Profile) AddToComparison(flightID string) error {
	if slices.Contains(p.Comparison, flightID) {
		return ErrAlreadyComparing
	}
	if len(p.Comparison) >= MaxComparison {
		return ErrComparisonFull
	}
	p.Comparison = append(p.Comparison, flightID)
	return nil
}

func (p *Profile) RemoveFromComparison(flightID string) {
	p.Comparison = slices.DeleteFunc(p.Comparison, func(id string) bool {
		return id == flightID
	})
}

func (p *Profile) ClearComparison() {
	p.Comparison = []string{}
}
