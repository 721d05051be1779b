package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"gameborrow/internal/models"
)

const passwordSpecials = "!@#$%^&*"

// NewValidator returns a validator that reports json field names and knows
// the objectid, password and role tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return models.IsValidID(fl.Field().String())
	})
	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	return v
}

// strongPassword requires lower and upper case letters, a digit, one of
// !@#$%^&* and at least 8 characters.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	return lower && upper && digit && special
}

func fieldErrorsFrom(errs validator.ValidationErrors) []models.FieldError {
	out := make([]models.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, models.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "email":
		return "Enter a valid email"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
		}
		return fmt.Sprintf("Minimal length is %s characters", fe.Param())
	case "url", "uri":
		return "must be a valid URI"
	case "objectid":
		return "must be a 24 character hex identifier"
	case "password":
		return "Password should contain letters, capital and regular, numbers and special symbols. The length of the password should be 8 or more characters."
	case "eqfield":
		return "Passwords should match."
	case "role":
		names := make([]string, 0, len(models.AllRoles()))
		for _, r := range models.AllRoles() {
			names = append(names, string(r))
		}
		return "Rolename must match one of : " + strings.Join(names, ",")
	default:
		return "is invalid"
	}
}
