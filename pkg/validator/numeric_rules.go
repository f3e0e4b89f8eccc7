package validator

import "fmt"

// Between validates that a numeric value lies within the inclusive [min, max] range.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("quantity should not be less than %v and greater than %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
				"min":   min,
				"max":   max,
			},
			Err: ErrOutOfRange,
		},
	}
}
