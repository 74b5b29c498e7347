package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"fleet-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only date format accepted in query strings.
const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("date_ymd", validateDateYMD)
	_ = v.RegisterValidation("date_gtefield", validateDateGteField)
	_ = v.RegisterValidation("audit_action", validateAuditAction)
	_ = v.RegisterValidation("dashboard_section", validateDashboardSection)

	// Field names in messages follow the query/json names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// ParseDate parses a YYYY-MM-DD query value. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

// FormatErrors flattens validator errors into "field: message" strings.
// Errors of any other type are returned as a single entry.
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), Message(fe)))
	}
	return details
}

// Message converts a validator.FieldError to a human-readable message
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "date_ymd":
		return "must be a date in YYYY-MM-DD format"
	case "date_gtefield":
		return fmt.Sprintf("must be on or after %s", fe.Param())
	case "audit_action":
		return "must be a known audit action"
	case "dashboard_section":
		return "must be a known dashboard section"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// validateDateYMD accepts empty strings; pair with required when needed.
func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// validateDateGteField compares two YYYY-MM-DD string fields as dates. The
// built-in gtefield compares string lengths. Unparseable or empty values are
// left to date_ymd.
func validateDateGteField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	other := fl.Parent().FieldByName(fl.Param())
	if value == "" || !other.IsValid() || other.Kind() != reflect.String || other.String() == "" {
		return true
	}
	to, err := time.Parse(DateLayout, value)
	if err != nil {
		return true
	}
	from, err := time.Parse(DateLayout, other.String())
	if err != nil {
		return true
	}
	return !to.Before(from)
}

func validateAuditAction(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidAuditAction(value)
}

func validateDashboardSection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsAuditResource(value)
}
