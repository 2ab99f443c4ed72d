package handler

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DragonKeeper_Go/internal/dragon"
	"github.com/osse101/DragonKeeper_Go/internal/economy"
	"github.com/osse101/DragonKeeper_Go/internal/farm"
	"github.com/osse101/DragonKeeper_Go/internal/mission"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("region", parses(func(s string) error { _, err := mission.ParseRegion(s); return err }))
	_ = v.RegisterValidation("careaction", parses(func(s string) error { _, err := dragon.ParseAction(s); return err }))
	_ = v.RegisterValidation("shopitem", parses(func(s string) error { _, err := economy.ParseItem(s); return err }))
	_ = v.RegisterValidation("shopaction", parses(func(s string) error { _, err := economy.ParseAction(s); return err }))
	_ = v.RegisterValidation("farmaction", parses(func(s string) error { _, err := farm.ParseAction(s); return err }))

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// parses adapts a domain parser into a validator func. Empty values are left to "required".
func parses(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return parse(s) == nil
	}
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "region":
			errs[field] = "Unknown region"
		case "careaction":
			errs[field] = "Unknown care action"
		case "shopitem":
			errs[field] = "Unknown item"
		case "shopaction":
			errs[field] = "Choose buy or sell"
		case "farmaction":
			errs[field] = "Choose Plant or Harvest"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// failedTag reports whether validation failed on the given tag
func failedTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}

// joinFieldErrors renders FormatValidationError output as one notice line
func joinFieldErrors(fields map[string]string) string {
	if len(fields) == 0 {
		return ErrMsgInvalidForm
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}
