package validator

import "errors"

// Validation error kinds. Every ValidationError carries one of them in Err.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeMismatch is returned when a value has the wrong runtime type for a rule.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotAllowed is returned when a value is not a member of the allowed set.
	ErrNotAllowed = errors.New("value not allowed")

	// ErrAttributeMissing is returned when a field is read before any value was accepted.
	ErrAttributeMissing = errors.New("attribute has not been set")

	// ErrUnknownField is returned when a record has no field with the given name.
	ErrUnknownField = errors.New("unknown field")
)

// Rule construction errors. Rules panic with these at definition time.
var (
	// ErrInvalidBounds is raised when a range is built with min greater than max.
	ErrInvalidBounds = errors.New("invalid range bounds")

	// ErrNoOptions is raised when a membership rule is built without options.
	ErrNoOptions = errors.New("membership rule requires at least one option")
)
