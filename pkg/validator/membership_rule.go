package validator

import (
	"fmt"
	"slices"
	"strings"
)

// MembershipRule accepts strings from a closed, ordered set of options.
type MembershipRule struct {
	options []string
}

// NewMembershipRule builds a closed-set rule. The options are copied.
// It panics with ErrNoOptions when called without options.
func NewMembershipRule(options ...string) *MembershipRule {
	if len(options) == 0 {
		panic(ErrNoOptions)
	}
	return &MembershipRule{options: slices.Clone(options)}
}

// OneOf is a short alias for NewMembershipRule.
func OneOf(options ...string) *MembershipRule {
	return NewMembershipRule(options...)
}

// Options returns a copy of the allowed values in declaration order.
func (r *MembershipRule) Options() []string {
	return slices.Clone(r.options)
}

// Validate implements Validator. Anything that is not a string is rejected
// the same way as an unknown string.
func (r *MembershipRule) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		rule := InListString(field, fmt.Sprint(value), r.Options())
		rule.Error.TranslationValues["value"] = value
		return ValidationErrors{rule.Error}
	}
	return Apply(InListString(field, s, r.Options()))
}

func (r *MembershipRule) String() string {
	return "one of " + strings.Join(r.options, ", ")
}
