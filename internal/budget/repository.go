package budget

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel/pkg/db"
)

const (
	insertPlanQuery  = `INSERT INTO budget_plans (id, destination_id, trip_days, level, created_at)
VALUES ($1, $2, $3, $4, $5)`
	insertItemQuery  = `INSERT INTO budget_items (plan_id, position, category, amount, notes, custom)
VALUES ($1, $2, $3, $4, $5, $6)`
	updatePlanQuery = `UPDATE budget_plans SET destination_id = $2, trip_days = $3, level = $4
WHERE id = $1`
	deleteItemsQuery = `DELETE FROM budget_items WHERE plan_id = $1`
	selectPlanQuery  = `SELECT p.id, p.destination_id, p.trip_days, p.level, p.created_at,
       i.category, i.amount, i.notes, i.custom
FROM budget_plans p
JOIN budget_items i ON i.plan_id = p.id
WHERE p.id = $1
ORDER BY i.position`
)

// PlanStore persists budget plans.
type PlanStore interface {
	Save(ctx context.Context, plan *Plan) error
	Get(ctx context.Context, id int64) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
}

type Repository struct {
	db db.SQLExecutor
}

func NewRepository(executor db.SQLExecutor) *Repository {
	return &Repository{db: executor}
}

// execer is the part of *sql.Tx the insert path needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Save writes the plan and its items in one transaction.
func (r *Repository) Save(ctx context.Context, plan *Plan) error {
	return r.db.WithTransaction(ctx, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		return insertPlan(ctx, tx, plan)
	})
}

func insertPlan(ctx context.Context, ex execer, plan *Plan) error {
	if _, err := ex.ExecContext(ctx, insertPlanQuery,
		plan.ID, plan.DestinationID, plan.TripDays, string(plan.Level), plan.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert budget plan: %w", err)
	}
	return insertItems(ctx, ex, plan)
}

// Update rewrites the plan row and replaces its items in one transaction.
func (r *Repository) Update(ctx context.Context, plan *Plan) error {
	return r.db.WithTransaction(ctx, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		return updatePlan(ctx, tx, plan)
	})
}

func updatePlan(ctx context.Context, ex execer, plan *Plan) error {
	res, err := ex.ExecContext(ctx, updatePlanQuery,
		plan.ID, plan.DestinationID, plan.TripDays, string(plan.Level),
	)
	if err != nil {
		return fmt.Errorf("update budget plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update budget plan: %w", err)
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	if _, err := ex.ExecContext(ctx, deleteItemsQuery, plan.ID); err != nil {
		return fmt.Errorf("delete budget items: %w", err)
	}
	return insertItems(ctx, ex, plan)
}

func insertItems(ctx context.Context, ex execer, plan *Plan) error {
	for i, it := range plan.Items {
		if _, err := ex.ExecContext(ctx, insertItemQuery,
			plan.ID, i, it.Category, it.Amount, it.Notes, it.Custom,
		); err != nil {
			return fmt.Errorf("insert budget item %d: %w", i, err)
		}
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Plan, error) {
	rows, err := r.db.QueryContext(ctx, selectPlanQuery, id)
	if err != nil {
		return nil, fmt.Errorf("query budget plan: %w", err)
	}
	defer rows.Close()

	return scanPlan(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanPlan folds the plan/item join back into one Plan.
func scanPlan(rows rowScanner) (*Plan, error) {
	var plan *Plan
	for rows.Next() {
		var (
			id            int64
			destinationID string
			tripDays      int
			level         string
			createdAt     time.Time
			it            Item
		)
		if err := rows.Scan(&id, &destinationID, &tripDays, &level, &createdAt,
			&it.Category, &it.Amount, &it.Notes, &it.Custom); err != nil {
			return nil, fmt.Errorf("scan budget plan: %w", err)
		}
		if plan == nil {
			plan = &Plan{
				ID:            id,
				DestinationID: destinationID,
				TripDays:      tripDays,
				Level:         Level(level),
				CreatedAt:     createdAt,
			}
		}
		plan.Items = append(plan.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget plan: %w", err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}
