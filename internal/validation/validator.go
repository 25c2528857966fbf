package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"xman-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("ledger_amount", validateLedgerAmount)
	_ = v.RegisterValidation("calendar_day", validateCalendarDay)
	_ = v.RegisterValidation("calendar_month", validateCalendarMonth)
	_ = v.RegisterValidation("calendar_year", validateCalendarYear)
	_ = v.RegisterValidation("local_redirect", validateLocalRedirect)
	_ = v.RegisterValidation("ui_theme", validateUITheme)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateLedgerAmount accepts any input that still contains digits after
// sanitization. Stray currency symbols and separators are tolerated because
// storage strips them; a value with no digits at all is rejected.
func validateLedgerAmount(fl validator.FieldLevel) bool {
	sanitized := models.SanitizeAmount(fl.Field().String())
	if sanitized == "" {
		return false
	}
	return strings.ContainsAny(sanitized, "0123456789")
}

// validateCalendarDay validates a 1-2 digit day in 1..31
func validateCalendarDay(fl validator.FieldLevel) bool {
	day := fl.Field().String()
	matched, _ := regexp.MatchString(`^\d{1,2}$`, day)
	if !matched {
		return false
	}
	n, _ := strconv.Atoi(day)
	return n >= 1 && n <= 31
}

// validateCalendarMonth validates a 1-2 digit month in 1..12
func validateCalendarMonth(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	matched, _ := regexp.MatchString(`^\d{1,2}$`, month)
	if !matched {
		return false
	}
	n, _ := strconv.Atoi(month)
	return n >= 1 && n <= 12
}

// validateCalendarYear validates a 4-digit year
func validateCalendarYear(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\d{4}$`, fl.Field().String())
	return matched
}

// validateLocalRedirect accepts only same-origin paths, blocking open
// redirects: the value must start with a single "/" and not "//" or "/\".
func validateLocalRedirect(fl validator.FieldLevel) bool {
	target := fl.Field().String()
	if target == "" {
		return true
	}
	if !strings.HasPrefix(target, "/") {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	return true
}

// validateUITheme validates that the theme is one of the supported values
func validateUITheme(fl validator.FieldLevel) bool {
	theme := strings.ToLower(fl.Field().String())
	validThemes := map[string]bool{
		"light":  true,
		"dark":   true,
		"system": true,
	}
	return validThemes[theme]
}
