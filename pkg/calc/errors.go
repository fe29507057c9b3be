package calc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// ErrKindNoMatchingRule is returned when the Invalid rule is evaluated.
	ErrKindNoMatchingRule ErrorKind = iota + 1
	// ErrKindValidation is returned when one or more tokens fail the rule's validator.
	ErrKindValidation
	// ErrKindMalformedInput is returned when a matched input cannot be extracted or a
	// token cannot be parsed as a 32-bit integer.
	ErrKindMalformedInput
)

// Sentinel errors for use with errors.Is.
var (
	ErrNoMatchingRule = errors.New("calc: no rule defined for input")
	ErrValidation     = errors.New("calc: validation failed")
	ErrMalformedInput = errors.New("calc: malformed input")
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindNoMatchingRule:
		return "no_matching_rule"
	case ErrKindValidation:
		return "validation"
	case ErrKindMalformedInput:
		return "malformed_input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error returned by Rule.Evaluate.
type Error struct {
	Kind  ErrorKind
	Rule  Kind
	Input string
	// Token is the offending text for ErrKindMalformedInput, Reason says what is wrong with it.
	Token  string
	Reason string
	// Values holds the rejected tokens for ErrKindValidation, in input order.
	Values []int32
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrKindNoMatchingRule:
		return fmt.Sprintf("%s %q", ErrNoMatchingRule, e.Input)
	case ErrKindValidation:
		return fmt.Sprintf("%s: %s rule rejected %v", ErrValidation, e.Rule, e.Values)
	case ErrKindMalformedInput:
		return fmt.Sprintf("%s: %s rule: %s %q", ErrMalformedInput, e.Rule, e.Reason, e.Token)
	default:
		return "calc: " + e.Kind.String()
	}
}

// Unwrap returns the sentinel matching e.Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case ErrKindNoMatchingRule:
		return ErrNoMatchingRule
	case ErrKindValidation:
		return ErrValidation
	case ErrKindMalformedInput:
		return ErrMalformedInput
	default:
		return nil
	}
}

// KindOf reports the ErrorKind carried by err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func noMatchingRule(input string) *Error {
	return &Error{Kind: ErrKindNoMatchingRule, Rule: KindInvalid, Input: input}
}

func validationFailure(rule Kind, input string, values []int32) *Error {
	return &Error{Kind: ErrKindValidation, Rule: rule, Input: input, Values: values}
}

func malformedInput(rule Kind, input, token, reason string) *Error {
	return &Error{Kind: ErrKindMalformedInput, Rule: rule, Input: input, Token: token, Reason: reason}
}
