// Package validator provides managed record fields whose writes are checked
// by a reusable rule before they are stored.
//
// A Validator is any value with a Validate(field, value) method. Two rules
// ship with the package:
//
//   - RangeRule[T] accepts values of exactly type T within inclusive bounds
//   - MembershipRule accepts strings from a closed set of options
//
// A record type binds each field to a rule once and keeps per-instance values
// in its own Slots:
//
//	var buns = validator.Bind("buns", validator.NewRangeRule(2, 3))
//
//	type Burger struct{ slots validator.Slots }
//
//	func (b *Burger) SetBuns(v any) error { return buns.Set(&b.slots, v) }
//
// A rejected write returns ValidationErrors and leaves the stored value
// untouched. Reading a field that was never set fails with ErrAttributeMissing.
//
// # Rules
//
// Rules are built from the Rule helpers (Between, InListString) and evaluated
// with Apply, which collects failures into ValidationErrors. Custom validators
// may return plain errors; Field wraps them into ValidationErrors.
//
// # Error Handling
//
// Every ValidationError carries a sentinel kind, so callers branch with
// errors.Is:
//
//	if errors.Is(err, validator.ErrOutOfRange) {
//		// ...
//	}
//
// All validation errors also match ErrValidationFailed. ExtractValidationErrors
// returns the per-field details, and Localize renders them through a
// Translator using the keys from the embedded Locales.
package validator
