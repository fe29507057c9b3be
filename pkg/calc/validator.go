package calc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator decides whether a parsed token is accepted by a rule.
// Returning false makes the evaluation fail with ErrKindValidation.
type Validator func(n int32) bool

// NonNegative rejects negative numbers. It is the default for every rule.
func NonNegative(n int32) bool {
	return n >= 0
}

// AcceptAll accepts every number.
func AcceptAll(int32) bool {
	return true
}

var (
	validateOnce     sync.Once
	validateInstance *validator.Validate
)

func getValidate() *validator.Validate {
	validateOnce.Do(func() {
		validateInstance = validator.New()
	})
	return validateInstance
}

// TagValidator builds a Validator from a go-playground/validator tag such as
// "gte=0" or "min=1,max=1000". An unknown tag or parameter is reported here
// instead of at evaluation time.
func TagValidator(tag string) (Validator, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, fmt.Errorf("calc: validator tag must not be empty")
	}
	v := getValidate()
	if err := probeTag(v, tag); err != nil {
		return nil, err
	}
	return func(n int32) bool {
		return v.Var(n, tag) == nil
	}, nil
}

// probeTag runs the tag once; validator panics on undefined tags and bad params.
func probeTag(v *validator.Validate, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("calc: invalid validator tag %q: %v", tag, r)
		}
	}()
	_ = v.Var(int32(0), tag)
	return nil
}

var (
	regMu    sync.RWMutex
	registry = builtinValidators()
)

func builtinValidators() map[string]Validator {
	return map[string]Validator{
		"non_negative": NonNegative,
		"any":          AcceptAll,
	}
}

// RegisterValidator registers a validator by name. Panics on an empty name,
// a nil validator or a duplicate name.
func RegisterValidator(name string, v Validator) {
	if name == "" {
		panic("calc: validator name must not be empty")
	}
	if v == nil {
		panic(fmt.Sprintf("calc: validator %q must not be nil", name))
	}

	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("calc: validator %q is already registered", name))
	}
	registry[name] = v
}

// LookupValidator returns the validator registered under name.
func LookupValidator(name string) (Validator, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	v, ok := registry[name]
	return v, ok
}

// resetRegistry restores the built-in validators (for tests only).
func resetRegistry() {
	regMu.Lock()
	defer regMu.Unlock()
	registry = builtinValidators()
}
