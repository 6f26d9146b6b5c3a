package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/hirewire/api/users/models"
)

const (
	usernameMaxLength = 25
	nameMaxLength     = 50
)

// usernamePattern keeps usernames URL-safe: letters, digits, underscores
// and hyphens, starting with a letter.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func ValidateCreateUserRequest(req *models.CreateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(req.Username) > usernameMaxLength {
		return fmt.Errorf("username cannot exceed %d characters", usernameMaxLength)
	}
	if !usernamePattern.MatchString(req.Username) {
		return fmt.Errorf("username must contain only letters, digits, underscores and hyphens")
	}

	if err := validateName("firstName", req.FirstName, true); err != nil {
		return err
	}
	if err := validateName("lastName", req.LastName, true); err != nil {
		return err
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !isValidEmail(req.Email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

func ValidateUpdateUserRequest(req *models.UpdateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.FirstName != nil {
		if err := validateName("firstName", *req.FirstName, true); err != nil {
			return err
		}
	}
	if req.LastName != nil {
		if err := validateName("lastName", *req.LastName, true); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if !isValidEmail(*req.Email) {
			return fmt.Errorf("invalid email format")
		}
	}

	return nil
}

func validateName(field, value string, required bool) error {
	if strings.TrimSpace(value) == "" {
		if required {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
	if len(value) > nameMaxLength {
		return fmt.Errorf("%s cannot exceed %d characters", field, nameMaxLength)
	}
	return nil
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
