package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
	"github.com/fvdberg/DCA-Planner-Backend/internal/timezone"
)

// TestToday is the fixed "today" used by test services: Wednesday
// 2024-05-15, midnight UTC. Tests that need a different date construct
// their own resolver.
var TestToday = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)

	return service.NewFundService(fundRepo)
}

func NewTestPlanService(t *testing.T, db *sql.DB) *service.PlanService {
	t.Helper()

	return NewTestPlanServiceAt(t, db, TestToday)
}

// NewTestPlanServiceAt creates a PlanService pinned to a specific "today".
func NewTestPlanServiceAt(t *testing.T, db *sql.DB, today time.Time) *service.PlanService {
	t.Helper()

	planRepo := repository.NewPlanRepository(db)
	fundRepo := repository.NewFundRepository(db)

	return service.NewPlanService(planRepo, fundRepo, timezone.NewFixedResolver(today))
}

func NewTestDigestService(t *testing.T, db *sql.DB) *service.DigestService {
	t.Helper()

	planRepo := repository.NewPlanRepository(db)

	return service.NewDigestService(planRepo, timezone.NewFixedResolver(TestToday))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeFundCode generates a unique six-digit fund code for testing.
func MakeFundCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)
	for i := range code {
		code[i] = digits[rand.Intn(len(digits))]
	}
	return string(code)
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Index Fund")
//	// Returns: "Index Fund ABC123"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
