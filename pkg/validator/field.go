package validator

import (
	"errors"
	"fmt"
)

// Validator checks a single value destined for the named field.
// Implementations hold configuration only and must be safe to share
// between any number of records.
type Validator interface {
	Validate(field string, value any) error
}

// Slots is the private storage of one record. Each record owns its own Slots;
// the zero value is ready to use.
type Slots struct {
	values map[string]any
}

func (s *Slots) load(slot string) (any, bool) {
	if s == nil || s.values == nil {
		return nil, false
	}
	v, ok := s.values[slot]
	return v, ok
}

func (s *Slots) store(slot string, v any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[slot] = v
}

// Len returns the number of fields holding an accepted value.
func (s *Slots) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Field is a managed attribute: reads return the last accepted value,
// writes go through the rule first.
type Field struct {
	name string
	slot string
	rule Validator
}

// Bind declares a field on a record type. It is meant to be called once per
// field when the record type is defined and panics on an empty name or a nil rule.
func Bind(name string, rule Validator) *Field {
	if name == "" {
		panic("validator: field name must not be empty")
	}
	if rule == nil {
		panic(fmt.Sprintf("validator: field %q has no rule", name))
	}
	return &Field{
		name: name,
		slot: "_" + name,
		rule: rule,
	}
}

func (f *Field) Name() string { return f.name }

// Slot returns the private storage key derived from the field name.
func (f *Field) Slot() string { return f.slot }

func (f *Field) Rule() Validator { return f.rule }

// IsSet reports whether the record has an accepted value for this field.
func (f *Field) IsSet(s *Slots) bool {
	_, ok := s.load(f.slot)
	return ok
}

// Get returns the last accepted value of the field.
// It fails with ErrAttributeMissing when nothing has been accepted yet.
func (f *Field) Get(s *Slots) (any, error) {
	v, ok := s.load(f.slot)
	if !ok {
		return nil, ValidationErrors{missing(f.name)}
	}
	return v, nil
}

// Set validates value and stores it on success.
// A rejected value leaves the previously stored one untouched.
func (f *Field) Set(s *Slots, value any) error {
	if err := f.Validate(value); err != nil {
		return err
	}
	s.store(f.slot, value)
	return nil
}

// Validate runs the field rule without storing anything.
// Errors that do not come as ValidationErrors are wrapped into one.
func (f *Field) Validate(value any) error {
	err := f.rule.Validate(f.name, value)
	if err == nil {
		return nil
	}
	if IsValidationError(err) {
		return err
	}
	return ValidationErrors{{
		Field:          f.name,
		Message:        err.Error(),
		TranslationKey: "validation.invalid",
		TranslationValues: map[string]any{
			"field": f.name,
			"value": value,
		},
		Err: errors.Join(ErrValidationFailed, err),
	}}
}

// GetAs reads the field and asserts the stored value to T.
func GetAs[T any](f *Field, s *Slots) (T, error) {
	var zero T
	v, err := f.Get(s)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, ValidationErrors{typeMismatch(f.name, v, fmt.Sprintf("%T", zero), "stored value has unexpected type")}
	}
	return typed, nil
}

func missing(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "value has not been set",
		TranslationKey: "validation.attribute_missing",
		TranslationValues: map[string]any{
			"field": field,
		},
		Err: ErrAttributeMissing,
	}
}

func typeMismatch(field string, value any, want, message string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: "validation.type_mismatch",
		TranslationValues: map[string]any{
			"field": field,
			"value": value,
			"type":  want,
		},
		Err: ErrTypeMismatch,
	}
}
