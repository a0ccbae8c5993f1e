package usecase

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateEmail reports whether value is a syntactically valid email address.
func ValidateEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}
