package validator

import (
	"fmt"
	"reflect"
)

// RangeRule accepts values of exactly type T within inclusive bounds.
// The type parameter is the expected type tag: an int64 offered to a
// RangeRule[int] is a type mismatch, not a conversion.
type RangeRule[T Numeric] struct {
	min T
	max T
}

// NewRangeRule builds a range rule. It panics with ErrInvalidBounds when min > max.
func NewRangeRule[T Numeric](min, max T) *RangeRule[T] {
	if min > max {
		panic(fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidBounds, min, max))
	}
	return &RangeRule[T]{min: min, max: max}
}

// Range is a short alias for NewRangeRule.
func Range[T Numeric](min, max T) *RangeRule[T] {
	return NewRangeRule(min, max)
}

func (r *RangeRule[T]) Min() T { return r.min }

func (r *RangeRule[T]) Max() T { return r.max }

// Validate implements Validator.
func (r *RangeRule[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		mismatch := typeMismatch(field, value, typeName[T](), quantityTypeMessage[T]())
		mismatch.TranslationKey = "validation.quantity_type"
		return ValidationErrors{mismatch}
	}
	return Apply(Between(field, v, r.min, r.max))
}

func (r *RangeRule[T]) String() string {
	return fmt.Sprintf("%s between %v and %v", typeName[T](), r.min, r.max)
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func quantityTypeMessage[T Numeric]() string {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return "quantity should be a number"
	default:
		return "quantity should be an integer"
	}
}
