package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
)

// FundRepository provides data access methods for the fund table.
type FundRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

func (r *FundRepository) WithTx(tx *sql.Tx) *FundRepository {
	return &FundRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *FundRepository) getQuerier() interface {
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

// GetFund retrieves a single fund by ID.
func (r *FundRepository) GetFund(fundID string) (model.Fund, error) {
	query := `SELECT id, code, name FROM fund WHERE id = ?`

	var f model.Fund
	err := r.getQuerier().QueryRow(query, fundID).Scan(&f.ID, &f.Code, &f.Name)
	if err == sql.ErrNoRows {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund table: %w", err)
	}

	return f, nil
}

// GetFundByCode retrieves a single fund by its external code.
func (r *FundRepository) GetFundByCode(code string) (model.Fund, error) {
	query := `SELECT id, code, name FROM fund WHERE code = ?`

	var f model.Fund
	err := r.getQuerier().QueryRow(query, code).Scan(&f.ID, &f.Code, &f.Name)
	if err == sql.ErrNoRows {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund table: %w", err)
	}

	return f, nil
}

// GetAllFunds retrieves all funds ordered by code.
// Returns an empty slice if no funds are found.
func (r *FundRepository) GetAllFunds() ([]model.Fund, error) {
	query := `SELECT id, code, name FROM fund ORDER BY code`

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}

	for rows.Next() {
		var f model.Fund
		if err := rows.Scan(&f.ID, &f.Code, &f.Name); err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// CreateFund inserts a new fund.
func (r *FundRepository) CreateFund(ctx context.Context, fund model.Fund) error {
	query := `INSERT INTO fund (id, code, name) VALUES (?, ?, ?)`

	_, err := r.getQuerier().ExecContext(ctx, query, fund.ID, fund.Code, fund.Name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateFundCode
		}
		return fmt.Errorf("failed to insert fund: %w", err)
	}

	return nil
}
