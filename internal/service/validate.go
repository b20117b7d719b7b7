// Package service contains the business logic for the travel API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// mailer calls. No SQL and no HTTP live here.
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// validate is the shared validator instance. Field names in error messages
// come from the json tags so they match what the client actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// wrapValidation converts a validator error into domain.ErrValidation with a
// human-readable list of the offending fields, one clause per problem.
func wrapValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fe.Field() + " is required"
		case "email":
			parts[i] = fe.Field() + " must be a valid email address"
		case "min":
			parts[i] = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "gte":
			parts[i] = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		default:
			parts[i] = fe.Field() + " is invalid"
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(parts, "; "))
}
