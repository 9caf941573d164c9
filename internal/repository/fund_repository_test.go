package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
	"github.com/fvdberg/DCA-Planner-Backend/internal/testutil"
)

func TestFundRepository_GetFund(t *testing.T) {
	t.Run("returns an existing fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		created := testutil.NewFund().WithCode("110022").Build(t, db)

		fund, err := repo.GetFund(created.ID)
		if err != nil {
			t.Fatalf("GetFund() returned unexpected error: %v", err)
		}
		if fund.Code != "110022" {
			t.Errorf("Expected code 110022, got %s", fund.Code)
		}
	})

	t.Run("returns ErrFundNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		_, err := repo.GetFund(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}

func TestFundRepository_GetAllFunds(t *testing.T) {
	t.Run("returns empty slice when no funds exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		funds, err := repo.GetAllFunds()
		if err != nil {
			t.Fatalf("GetAllFunds() returned unexpected error: %v", err)
		}
		if len(funds) != 0 {
			t.Errorf("Expected empty slice, got %d funds", len(funds))
		}
	})

	t.Run("returns funds ordered by code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		testutil.NewFund().WithCode("220011").Build(t, db)
		testutil.NewFund().WithCode("110022").Build(t, db)

		funds, err := repo.GetAllFunds()
		if err != nil {
			t.Fatalf("GetAllFunds() returned unexpected error: %v", err)
		}
		if len(funds) != 2 {
			t.Fatalf("Expected 2 funds, got %d", len(funds))
		}
		if funds[0].Code != "110022" || funds[1].Code != "220011" {
			t.Errorf("Expected funds ordered by code, got %s then %s",
				funds[0].Code, funds[1].Code)
		}
	})
}

func TestFundRepository_CreateFund(t *testing.T) {
	t.Run("inserts a fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		fund := model.Fund{ID: testutil.MakeID(), Code: "110022", Name: "Test Index Fund"}

		if err := repo.CreateFund(context.Background(), fund); err != nil {
			t.Fatalf("CreateFund() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "fund", 1)
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		testutil.NewFund().WithCode("110022").Build(t, db)

		fund := model.Fund{ID: testutil.MakeID(), Code: "110022", Name: "Duplicate"}
		err := repo.CreateFund(context.Background(), fund)
		if !errors.Is(err, apperrors.ErrDuplicateFundCode) {
			t.Errorf("Expected ErrDuplicateFundCode, got %v", err)
		}
	})
}
