package validation

import (
	"strings"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
)

func ValidateCreateFund(req request.CreateFundRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Code) == "" {
		errors["code"] = "code is required"
	} else if len(req.Code) > 20 {
		errors["code"] = "code must be 20 characters or less"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
