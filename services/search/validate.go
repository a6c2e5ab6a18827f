package search

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"eventhub/models"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries every problem found in a search request.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid search parameters: " + strings.Join(e.Errors, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid", field)
}

// ValidateParams checks params without failing fast and returns every problem.
func ValidateParams(params models.SearchParams) models.ValidationResult {
	errs := []string{}

	if err := validate.Struct(params); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, fieldMessage(fe))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	loc := params.Location
	if loc != nil && (loc.Latitude == nil) != (loc.Longitude == nil) {
		errs = append(errs, "location.latitude and location.longitude must be provided together")
	}
	if params.Sort == models.SortDistance && !loc.HasCoordinates() {
		errs = append(errs, "sort by distance requires location.latitude and location.longitude")
	}
	if b := params.Budget; b != nil && b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		errs = append(errs, fmt.Sprintf("budget.min %v is greater than budget.max %v", *b.Min, *b.Max))
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func (s *DefaultSearchService) Validate(params models.SearchParams) models.ValidationResult {
	return ValidateParams(params)
}
