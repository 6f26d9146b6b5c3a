package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/hirewire/api/companies/models"
)

const (
	handleMaxLength = 25
	nameMaxLength   = 100
)

// handlePattern keeps handles URL-safe: lowercase letters, digits and
// hyphens, starting with a letter.
var handlePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Handle) == "" {
		return fmt.Errorf("handle is required")
	}
	if len(req.Handle) > handleMaxLength {
		return fmt.Errorf("handle cannot exceed %d characters", handleMaxLength)
	}
	if !handlePattern.MatchString(req.Handle) {
		return fmt.Errorf("handle must contain only lowercase letters, digits and hyphens")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > nameMaxLength {
		return fmt.Errorf("name cannot exceed %d characters", nameMaxLength)
	}

	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees cannot be negative")
	}

	if req.LogoURL != nil && *req.LogoURL != "" && !isValidURL(*req.LogoURL) {
		return fmt.Errorf("invalid logoUrl format")
	}

	return nil
}

func ValidateUpdateCompanyRequest(req *models.UpdateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("name cannot be empty or whitespace only")
		}
		if len(*req.Name) > nameMaxLength {
			return fmt.Errorf("name cannot exceed %d characters", nameMaxLength)
		}
	}

	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees cannot be negative")
	}

	if req.LogoURL != nil && *req.LogoURL != "" && !isValidURL(*req.LogoURL) {
		return fmt.Errorf("invalid logoUrl format")
	}

	return nil
}

func ValidateCompanyFilter(filter *models.CompanyFilter) error {
	if filter == nil {
		return nil
	}

	if filter.MinEmployees < 0 || filter.MaxEmployees < 0 {
		return fmt.Errorf("employee bounds cannot be negative")
	}

	if len(filter.Name) > nameMaxLength {
		return fmt.Errorf("name filter cannot exceed %d characters", nameMaxLength)
	}

	return nil
}

func isValidURL(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
