package budget

import (
	"context"
	"fmt"
	"slices"
	"time"

	"travel/pkg/idgen"
	"travel/pkg/logger"
)

type ItemInput struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

type PlanRequest struct {
	DestinationID string      `json:"destination_id"`
	TripDays      int         `json:"trip_days"`
	Level         Level       `json:"level"`
	CustomItems   []ItemInput `json:"custom_items"`
}

type ItemEdit struct {
	Index  int     `json:"index"`
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// PlanUpdate changes a saved plan. Item indexes refer to the plan as stored.
// A new destination, trip length or level re-prices the default items; edits
// run after that, then removals, then additions.
type PlanUpdate struct {
	DestinationID *string     `json:"destination_id,omitempty"`
	TripDays      *int        `json:"trip_days,omitempty"`
	Level         *Level      `json:"level,omitempty"`
	EditItems     []ItemEdit  `json:"edit_items,omitempty"`
	RemoveItems   []int       `json:"remove_items,omitempty"`
	AddItems      []ItemInput `json:"add_items,omitempty"`
}

func (u PlanUpdate) reprices() bool {
	return u.DestinationID != nil || u.TripDays != nil || u.Level != nil
}

// PlanView is a plan with its derived totals.
type PlanView struct {
	*Plan
	DestinationName string  `json:"destination_name"`
	Total           float64 `json:"total"`
	DailyAverage    float64 `json:"daily_average"`
}

type Service struct {
	catalog *Catalog
	store   PlanStore
	ids     idgen.Generator
	logger  logger.Logger
	now     func() time.Time
}

func NewService(catalog *Catalog, store PlanStore, ids idgen.Generator, log logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		store:   store,
		ids:     ids,
		logger:  log,
		now:     time.Now,
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Build prices a plan without saving it. TripDays must already be clamped.
func (s *Service) Build(req PlanRequest) (*PlanView, error) {
	dest, ok := s.catalog.Get(req.DestinationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, req.DestinationID)
	}
	level := req.Level
	if level == "" {
		level = LevelModerate
	}

	plan := NewPlan(dest.ID, req.TripDays, level)
	plan.Apply(Estimate(dest, req.TripDays, level))
	for _, it := range req.CustomItems {
		if err := plan.AddCustomItem(it.Category, it.Amount, it.Notes); err != nil {
			return nil, err
		}
	}
	return view(plan, dest), nil
}

// Create builds, assigns an ID to and persists a plan.
func (s *Service) Create(ctx context.Context, req PlanRequest) (*PlanView, error) {
	v, err := s.Build(req)
	if err != nil {
		return nil, err
	}
	v.ID = s.ids.GenerateID()
	v.CreatedAt = s.now().UTC()

	if err := s.store.Save(ctx, v.Plan); err != nil {
		s.logger.Error("failed to save budget plan", logger.Err(err), logger.Field{Key: "plan_id", Value: v.ID})
		return nil, fmt.Errorf("save budget plan: %w", err)
	}
	s.logger.Info("budget plan saved",
		logger.Field{Key: "plan_id", Value: v.ID},
		logger.Field{Key: "destination_id", Value: v.DestinationID},
	)
	return v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*PlanView, error) {
	plan, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dest, _ := s.catalog.Get(plan.DestinationID)
	return view(plan, dest), nil
}

// Update loads a plan, applies the changes and saves it back.
func (s *Service) Update(ctx context.Context, id int64, u PlanUpdate) (*PlanView, error) {
	plan, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dest, err := s.applyUpdate(plan, u)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, plan); err != nil {
		s.logger.Error("failed to update budget plan", logger.Err(err), logger.Field{Key: "plan_id", Value: id})
		return nil, fmt.Errorf("update budget plan: %w", err)
	}
	s.logger.Info("budget plan updated",
		logger.Field{Key: "plan_id", Value: id},
		logger.Field{Key: "repriced", Value: u.reprices()},
	)
	return view(plan, dest), nil
}

func (s *Service) applyUpdate(plan *Plan, u PlanUpdate) (Destination, error) {
	if u.DestinationID != nil {
		plan.DestinationID = *u.DestinationID
	}
	if u.TripDays != nil {
		plan.TripDays = *u.TripDays
	}
	if u.Level != nil {
		plan.Level = *u.Level
	}

	dest, ok := s.catalog.Get(plan.DestinationID)
	if u.reprices() {
		if !ok {
			return Destination{}, fmt.Errorf("%w: %s", ErrDestinationNotFound, plan.DestinationID)
		}
		plan.Apply(Estimate(dest, plan.TripDays, plan.Level))
	}

	for _, e := range u.EditItems {
		if err := plan.UpdateItem(e.Index, e.Amount, e.Notes); err != nil {
			return Destination{}, err
		}
	}

	// Highest index first so earlier indexes stay valid.
	removals := slices.Clone(u.RemoveItems)
	slices.Sort(removals)
	removals = slices.Compact(removals)
	for i := len(removals) - 1; i >= 0; i-- {
		if err := plan.RemoveCustomItem(removals[i]); err != nil {
			return Destination{}, err
		}
	}

	for _, it := range u.AddItems {
		if err := plan.AddCustomItem(it.Category, it.Amount, it.Notes); err != nil {
			return Destination{}, err
		}
	}
	return dest, nil
}

func view(plan *Plan, dest Destination) *PlanView {
	return &PlanView{
		Plan:            plan,
		DestinationName: dest.Name,
		Total:           plan.Total(),
		DailyAverage:    plan.DailyAverage(),
	}
}
