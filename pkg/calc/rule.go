package calc

import (
	"fmt"
	"regexp"
)

// Kind identifies the grammar a Rule was selected for.
type Kind int

const (
	KindBasic Kind = iota
	KindCustom
	KindInvalid

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindCustom:
		return "custom"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rule is an input bound to the grammar that matched it.
// A Rule is immutable and may be evaluated any number of times.
type Rule struct {
	kind       Kind
	input      string
	validators validatorSet
}

// Kind reports which grammar matched the input.
func (r Rule) Kind() Kind { return r.kind }

// Input returns the raw input the rule was selected for.
func (r Rule) Input() string { return r.input }

// Evaluate extracts, tokenizes, validates and sums the input.
// The sum wraps on 32-bit overflow.
func (r Rule) Evaluate() (int32, error) {
	switch r.kind {
	case KindBasic:
		return r.evaluateBasic()
	case KindCustom:
		return r.evaluateCustom()
	default:
		return r.evaluateInvalid()
	}
}

func (r Rule) evaluateBasic() (int32, error) {
	if r.input == "" {
		return 0, nil
	}
	return reduce(KindBasic, r.input, r.input, basicDelimiter, r.validators.get(KindBasic), false)
}

func (r Rule) evaluateCustom() (int32, error) {
	m, ok := extractCustom(r.input, unsignedNumber)
	if !ok {
		return 0, malformedInput(KindCustom, r.input, r.input, errShapeChanged.Error())
	}
	return reduce(KindCustom, r.input, m.source, m.separator(), r.validators.get(KindCustom), true)
}

// evaluateInvalid fails with ErrKindNoMatchingRule unless the input reads as
// a basic or custom list once negative numbers are allowed, in which case the
// validator of that rule decides.
func (r Rule) evaluateInvalid() (int32, error) {
	if signedBasicPattern.MatchString(r.input) {
		if err := r.diagnose(KindBasic, r.input, basicDelimiter); err != nil {
			return 0, err
		}
	} else if m, ok := extractCustom(r.input, signedNumber); ok {
		if err := r.diagnose(KindCustom, m.source, m.separator()); err != nil {
			return 0, err
		}
	}
	return 0, noMatchingRule(r.input)
}

// diagnose validates every token that parses; tokens that do not parse
// (out of range, empty) are skipped so they cannot hide a rejected one.
func (r Rule) diagnose(kind Kind, source string, sep *regexp.Regexp) error {
	validate := r.validators.get(kind)
	var rejected []int32
	for _, p := range tokenize(source, sep) {
		numbers, _, err := parseTokens([]string{p})
		if err != nil {
			continue
		}
		if !validate(numbers[0]) {
			rejected = append(rejected, numbers[0])
		}
	}
	if len(rejected) > 0 {
		return validationFailure(kind, r.input, rejected)
	}
	return nil
}

// reduce tokenizes source, validates every token and sums them left to right.
// All rejected tokens are reported, not only the first.
func reduce(kind Kind, input, source string, sep *regexp.Regexp, validate Validator, requireTokens bool) (int32, error) {
	parts := tokenize(source, sep)
	if requireTokens && len(parts) == 0 {
		return 0, malformedInput(kind, input, source, errNoTokens.Error())
	}
	numbers, token, err := parseTokens(parts)
	if err != nil {
		return 0, malformedInput(kind, input, token, err.Error())
	}

	var rejected []int32
	for _, n := range numbers {
		if !validate(n) {
			rejected = append(rejected, n)
		}
	}
	if len(rejected) > 0 {
		return 0, validationFailure(kind, input, rejected)
	}

	var sum int32
	for _, n := range numbers {
		sum += n
	}
	return sum, nil
}
