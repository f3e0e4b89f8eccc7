package validator

import (
	"fmt"
	"strings"
)

// InListString validates that value equals one of allowedValues exactly.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("expected %q to be one of: %s", value, strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"value":          value,
				"allowed_values": allowedValues,
			},
			Err: ErrNotAllowed,
		},
	}
}
