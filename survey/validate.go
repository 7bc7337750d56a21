// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate rejects submissions that are clearly unusable: missing required
// strings, malformed email, ratings outside 1-5, a missing or future date
// of birth, or blank food labels.
func Validate(sub models.SurveySubmission, now time.Time) error {
	trimmed := sub
	trimmed.FullName = strings.TrimSpace(sub.FullName)
	trimmed.Email = strings.TrimSpace(sub.Email)
	trimmed.ContactNumbers = strings.TrimSpace(sub.ContactNumbers)
	trimmed.FavoriteFoods = make([]string, len(sub.FavoriteFoods))
	for i, f := range sub.FavoriteFoods {
		trimmed.FavoriteFoods[i] = strings.TrimSpace(f)
	}

	if err := validate.Struct(trimmed); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return &ValidationError{Field: "submission", Message: err.Error()}
	}

	if sub.DateOfBirth.IsZero() {
		return &ValidationError{Field: "dateOfBirth", Message: "is required"}
	}
	if sub.DateOfBirth.After(now) {
		return &ValidationError{Field: "dateOfBirth", Message: "cannot be in the future"}
	}

	return nil
}

func fieldError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	if strings.HasPrefix(field, "favoriteFoods[") {
		field = "favoriteFoods"
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "email":
		msg = "must be a valid email address"
	case "max":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return &ValidationError{Field: field, Message: msg}
}
