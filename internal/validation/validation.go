package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// timePattern matches a time of day in HH:MM format, hour 0-23, minute 0-59.
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// dateLayouts are the accepted formats for meetup dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("futuredate", validateFutureDate)
}

func validateHHMM(fl validator.FieldLevel) bool {
	return timePattern.MatchString(fl.Field().String())
}

func validateFutureDate(fl validator.FieldLevel) bool {
	d, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return d.After(time.Now())
}

// ParseDate parses a meetup date given as RFC3339 or YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var d time.Time
		if d, err = time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// Struct validates a struct using its `validate` tags. The first failing
// field is reported as a readable message suitable for an API response.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "hhmm":
		return fmt.Errorf("%s must be in HH:MM format", fe.Field())
	case "futuredate":
		return fmt.Errorf("%s must be in the future", fe.Field())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}
