// Package calc implements a string calculator: it selects the grammar an
// input is written in, splits it into integer tokens, validates every token
// and returns their sum.
//
// Three grammars are tried in order:
//
//	basic   ""  or  1,2:3          (comma or colon between numbers)
//	custom  //<delim>\n1<delim>2   (literal delimiter declared in a header)
//	invalid anything else
//
// Selection never fails. Errors are only reported by Rule.Evaluate.
package calc

// validatorSet holds the validator bound to each rule kind.
type validatorSet [kindCount]Validator

func defaultValidators() validatorSet {
	var vs validatorSet
	for k := range vs {
		vs[k] = NonNegative
	}
	return vs
}

func (vs validatorSet) get(k Kind) Validator {
	if k < 0 || k >= kindCount || vs[k] == nil {
		return NonNegative
	}
	return vs[k]
}

// Option configures Select.
type Option func(*validatorSet)

// WithValidator replaces the validator used by rules of the given kind.
// For KindInvalid it has no effect on the result: negative-number diagnosis
// uses the validator of the grammar the input resembles.
func WithValidator(kind Kind, v Validator) Option {
	return func(vs *validatorSet) {
		if kind >= 0 && kind < kindCount && v != nil {
			vs[kind] = v
		}
	}
}

// Select returns the rule whose grammar matches input, trying basic, then
// custom, then the catch-all invalid rule.
func Select(input string, opts ...Option) Rule {
	vs := defaultValidators()
	for _, opt := range opts {
		opt(&vs)
	}

	r := Rule{input: input, validators: vs}
	switch {
	case matchBasic(input):
		r.kind = KindBasic
	case matchCustom(input):
		r.kind = KindCustom
	default:
		r.kind = KindInvalid
	}
	return r
}

// SelectOptional is Select for an input that may be absent. A nil input
// selects the invalid rule.
func SelectOptional(input *string, opts ...Option) Rule {
	if input == nil {
		r := Select("", opts...)
		r.kind = KindInvalid
		return r
	}
	return Select(*input, opts...)
}

// Sum selects and evaluates input in one call.
func Sum(input string, opts ...Option) (int32, error) {
	return Select(input, opts...).Evaluate()
}
