package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
)

// FundService handles fund-related business logic operations.
type FundService struct {
	fundRepo *repository.FundRepository
}

// NewFundService creates a new FundService with the provided repository dependency.
func NewFundService(fundRepo *repository.FundRepository) *FundService {
	return &FundService{
		fundRepo: fundRepo,
	}
}

// GetFund retrieves a fund from the database.
func (s *FundService) GetFund(fundID string) (model.Fund, error) {
	return s.fundRepo.GetFund(fundID)
}

// GetAllFunds retrieves all funds from the database.
func (s *FundService) GetAllFunds() ([]model.Fund, error) {
	return s.fundRepo.GetAllFunds()
}

// CreateFund registers a new fund. The request is expected to be validated
// by the caller; the fund code's uniqueness is enforced here.
func (s *FundService) CreateFund(ctx context.Context, req request.CreateFundRequest) (model.Fund, error) {
	fund := model.Fund{
		ID:   uuid.New().String(),
		Code: req.Code,
		Name: req.Name,
	}

	if err := s.fundRepo.CreateFund(ctx, fund); err != nil {
		return model.Fund{}, err
	}

	return fund, nil
}
