// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/crew-service/internal/apperrors"
	domain "github.com/canonical/crew-service/internal/types"
)

type enum interface {
	Valid() bool
}

// Validator checks request payloads and reports only the first violation
type Validator struct {
	v *validator.Validate
}

func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Validation("Invalid request body")
	}

	return apperrors.Validation(message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s cannot be empty", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "enum":
		return fmt.Sprintf("%s has an invalid value", field)
	case "rfc3339":
		return fmt.Sprintf("%s must be an RFC3339 timestamp", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})

	v.RegisterCustomTypeFunc(nullableValue[string], domain.Nullable[string]{})
	v.RegisterCustomTypeFunc(nullableValue[domain.SailingPosition], domain.Nullable[domain.SailingPosition]{})
	v.RegisterCustomTypeFunc(nullableValue[int32], domain.Nullable[int32]{})

	return &Validator{v: v}
}

// nullableValue lets the usual tags run on the wrapped value, null and absent are skipped by omitempty
func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(domain.Nullable[T])
	if !ok || n.Value == nil {
		return nil
	}
	return *n.Value
}
