package filters

import (
	"fmt"
	"sort"

	"eventhub/models"
)

// Validate checks selections against schema and reports every problem found.
// It never fails; malformed input only shows up in the result.
func (s *DefaultFilterService) Validate(schema models.FilterSchema, selections map[string]any) models.ValidationResult {
	return ValidateSelections(schema, selections)
}

func ValidateSelections(schema models.FilterSchema, selections map[string]any) models.ValidationResult {
	errs := []string{}

	ids := make([]string, 0, len(selections))
	for id := range selections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		f, ok := schema.FindFilter(id)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown filter %q", id))
			continue
		}
		errs = append(errs, checkValue(f, selections[id])...)
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func checkValue(f models.Filter, v any) []string {
	if v == nil {
		return nil
	}
	if f.Locked && f.Value != nil && fmt.Sprint(v) != fmt.Sprint(f.Value) {
		return []string{fmt.Sprintf("%s: filter is locked to %v", f.ID, f.Value)}
	}

	switch f.Type {
	case models.FilterToggle:
		if _, ok := v.(bool); !ok {
			return []string{fmt.Sprintf("%s: expected true or false", f.ID)}
		}
	case models.FilterSelect:
		s, ok := v.(string)
		if !ok {
			return []string{fmt.Sprintf("%s: expected a single option", f.ID)}
		}
		if len(f.Options) > 0 && !hasOption(f.Options, s) {
			return []string{fmt.Sprintf("%s: %q is not an available option", f.ID, s)}
		}
	case models.FilterMultiSelect:
		values, ok := stringList(v)
		if !ok {
			return []string{fmt.Sprintf("%s: expected a list of options", f.ID)}
		}
		var errs []string
		for _, s := range values {
			if !hasOption(f.Options, s) {
				errs = append(errs, fmt.Sprintf("%s: %q is not an available option", f.ID, s))
			}
		}
		return errs
	case models.FilterRange:
		return checkRange(f, v)
	case models.FilterLocation:
		if _, ok := v.(string); !ok {
			return []string{fmt.Sprintf("%s: expected a place name", f.ID)}
		}
	}
	return nil
}

// checkRange accepts a single number or a {"min","max"} object.
func checkRange(f models.Filter, v any) []string {
	if n, ok := number(v); ok {
		return checkBounds(f, n)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("%s: expected a number or a min/max range", f.ID)}
	}

	var errs []string
	lo, hasLo := number(m["min"])
	hi, hasHi := number(m["max"])
	if _, present := m["min"]; present && !hasLo {
		errs = append(errs, fmt.Sprintf("%s: min must be a number", f.ID))
	}
	if _, present := m["max"]; present && !hasHi {
		errs = append(errs, fmt.Sprintf("%s: max must be a number", f.ID))
	}
	if hasLo {
		errs = append(errs, checkBounds(f, lo)...)
	}
	if hasHi {
		errs = append(errs, checkBounds(f, hi)...)
	}
	if hasLo && hasHi && lo > hi {
		errs = append(errs, fmt.Sprintf("%s: min %v is greater than max %v", f.ID, lo, hi))
	}
	return errs
}

func checkBounds(f models.Filter, n float64) []string {
	if f.Min != nil && n < *f.Min {
		return []string{fmt.Sprintf("%s: %v is below the minimum %v", f.ID, n, *f.Min)}
	}
	if f.Max != nil && n > *f.Max {
		return []string{fmt.Sprintf("%s: %v is above the maximum %v", f.ID, n, *f.Max)}
	}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
