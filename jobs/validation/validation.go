package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hirewire/api/jobs/models"
)

const titleMaxLength = 100

// equityPattern accepts decimal fractions in [0, 1] with up to three
// fractional digits, matching the store's NUMERIC(4,3) column.
var equityPattern = regexp.MustCompile(`^(0(\.\d{1,3})?|1(\.0{1,3})?)$`)

func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(req.Title) > titleMaxLength {
		return fmt.Errorf("title cannot exceed %d characters", titleMaxLength)
	}

	if strings.TrimSpace(req.CompanyHandle) == "" {
		return fmt.Errorf("companyHandle is required")
	}

	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}

	if req.Equity != nil && !equityPattern.MatchString(*req.Equity) {
		return fmt.Errorf("equity must be a decimal between 0 and 1 with at most three decimal places")
	}

	return nil
}

func ValidateUpdateJobRequest(req *models.UpdateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("title cannot be empty or whitespace only")
		}
		if len(*req.Title) > titleMaxLength {
			return fmt.Errorf("title cannot exceed %d characters", titleMaxLength)
		}
	}

	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}

	if req.Equity != nil && !equityPattern.MatchString(*req.Equity) {
		return fmt.Errorf("equity must be a decimal between 0 and 1 with at most three decimal places")
	}

	return nil
}

func ValidateJobFilter(filter *models.JobFilter) error {
	if filter == nil {
		return nil
	}

	if filter.MinSalary < 0 {
		return fmt.Errorf("minSalary cannot be negative")
	}

	if len(filter.Title) > titleMaxLength {
		return fmt.Errorf("title filter cannot exceed %d characters", titleMaxLength)
	}

	return nil
}
