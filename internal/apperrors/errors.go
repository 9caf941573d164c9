package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrPlanNotFound indicates that a plan with the given ID does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanNotFoundForFund indicates that a fund has no saved plan.
	ErrPlanNotFoundForFund = errors.New("no plan saved for fund")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateFundCode indicates that a fund with the same code already exists.
	ErrDuplicateFundCode = errors.New("fund code already exists")

	// ErrPlanNotConfirmed indicates that a draft failed validation and no
	// plan was emitted.
	ErrPlanNotConfirmed = errors.New("plan draft did not pass validation")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveFunds = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveFund  = errors.New("failed to retrieve fund")
	ErrFailedToRetrievePlans = errors.New("failed to retrieve plans")
	ErrFailedToRetrievePlan  = errors.New("failed to retrieve plan")
	ErrFailedToSavePlan      = errors.New("failed to save plan")
	ErrFailedToDeletePlan    = errors.New("failed to delete plan")
	ErrFailedToCreateFund    = errors.New("failed to create fund")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
