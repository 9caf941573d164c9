package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
)

// PlanRepository provides data access methods for the dca_plan table.
// Plan rows are joined against fund so every returned Plan carries the
// fund code and name it was configured for.
type PlanRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPlanRepository creates a new PlanRepository with the provided database connection.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) WithTx(tx *sql.Tx) *PlanRepository {
	return &PlanRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *PlanRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const planColumns = `
    p.id, p.type, p.fund_id, f.code, f.name, p.amount, p.fee_rate,
    p.cycle, p.first_date, p.weekly_day, p.monthly_day, p.enabled`

func scanPlan(row interface{ Scan(dest ...any) error }) (model.Plan, error) {
	var p model.Plan
	var weeklyDay, monthlyDay sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.Type,
		&p.FundID,
		&p.FundCode,
		&p.FundName,
		&p.Amount,
		&p.FeeRate,
		&p.Cycle,
		&p.FirstDate,
		&weeklyDay,
		&monthlyDay,
		&p.Enabled,
	)
	if err != nil {
		return model.Plan{}, err
	}

	if weeklyDay.Valid {
		day := int(weeklyDay.Int64)
		p.WeeklyDay = &day
	}
	if monthlyDay.Valid {
		day := int(monthlyDay.Int64)
		p.MonthlyDay = &day
	}

	return p, nil
}

// GetPlan retrieves a single plan by ID.
func (r *PlanRepository) GetPlan(planID string) (model.Plan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM dca_plan p
        INNER JOIN fund f ON f.id = p.fund_id
        WHERE p.id = ?`

	plan, err := scanPlan(r.getQuerier().QueryRow(query, planID))
	if err == sql.ErrNoRows {
		return model.Plan{}, apperrors.ErrPlanNotFound
	}
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to query dca_plan table: %w", err)
	}

	return plan, nil
}

// GetPlanByFund retrieves the plan configured for a fund. Each fund holds
// at most one plan.
func (r *PlanRepository) GetPlanByFund(fundID string) (model.Plan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM dca_plan p
        INNER JOIN fund f ON f.id = p.fund_id
        WHERE p.fund_id = ?`

	plan, err := scanPlan(r.getQuerier().QueryRow(query, fundID))
	if err == sql.ErrNoRows {
		return model.Plan{}, apperrors.ErrPlanNotFoundForFund
	}
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to query dca_plan table: %w", err)
	}

	return plan, nil
}

// GetAllPlans retrieves all plans ordered by fund code.
// Returns an empty slice if no plans exist.
func (r *PlanRepository) GetAllPlans() ([]model.Plan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM dca_plan p
        INNER JOIN fund f ON f.id = p.fund_id
        ORDER BY f.code`

	return r.queryPlans(query)
}

// GetEnabledPlansByFirstDate retrieves enabled plans whose first execution
// date equals the given calendar date (YYYY-MM-DD).
func (r *PlanRepository) GetEnabledPlansByFirstDate(date string) ([]model.Plan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM dca_plan p
        INNER JOIN fund f ON f.id = p.fund_id
        WHERE p.enabled = TRUE AND p.first_date = ?
        ORDER BY f.code`

	return r.queryPlans(query, date)
}

func (r *PlanRepository) queryPlans(query string, args ...any) ([]model.Plan, error) {
	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dca_plan table: %w", err)
	}
	defer rows.Close()

	plans := []model.Plan{}

	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dca_plan table results: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dca_plan table: %w", err)
	}

	return plans, nil
}

// UpsertPlan inserts the plan for its fund, replacing any existing plan for
// that fund. The plan ID is kept stable across replacements of the same
// fund's plan when the caller passes the existing ID.
func (r *PlanRepository) UpsertPlan(ctx context.Context, plan model.Plan) error {
	query := `
        INSERT INTO dca_plan (
            id, fund_id, type, amount, fee_rate, cycle, first_date,
            weekly_day, monthly_day, enabled
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(fund_id) DO UPDATE SET
            amount = excluded.amount,
            fee_rate = excluded.fee_rate,
            cycle = excluded.cycle,
            first_date = excluded.first_date,
            weekly_day = excluded.weekly_day,
            monthly_day = excluded.monthly_day,
            enabled = excluded.enabled,
            updated_at = CURRENT_TIMESTAMP`

	_, err := r.getQuerier().ExecContext(ctx, query,
		plan.ID,
		plan.FundID,
		plan.Type,
		plan.Amount,
		plan.FeeRate,
		plan.Cycle,
		plan.FirstDate,
		nullableInt(plan.WeeklyDay),
		nullableInt(plan.MonthlyDay),
		plan.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plan: %w", err)
	}

	return nil
}

// DeletePlan removes a plan by ID.
func (r *PlanRepository) DeletePlan(ctx context.Context, planID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM dca_plan WHERE id = ?`, planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
