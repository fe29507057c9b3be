package calc

import (
	"errors"
	"regexp"
	"strconv"
)

// Grammars accepted by Select. Go's regexp has no back-references, so the
// custom grammar is matched in two steps: the header pattern captures the
// delimiter, then a body pattern built from the quoted delimiter checks that
// the same literal text separates every pair of numbers.
var (
	basicPattern        = regexp.MustCompile(`^$|^\d+(?:[,:]\d+)*$`)
	signedBasicPattern  = regexp.MustCompile(`^-?\d+(?:[,:]-?\d+)*$`)
	basicDelimiter      = regexp.MustCompile(`[,:]`)
	customHeaderPattern = regexp.MustCompile(`^//(.+)\n(.*)$`)
)

const (
	unsignedNumber = `\d+`
	signedNumber   = `-?\d+`
)

// customMatch is the extracted state of a custom-delimiter input.
type customMatch struct {
	delimiter string
	source    string
}

// separator returns the split pattern for the delimiter, with every
// pattern-special character quoted.
func (m customMatch) separator() *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(m.delimiter))
}

func matchBasic(input string) bool {
	return basicPattern.MatchString(input)
}

func matchCustom(input string) bool {
	_, ok := extractCustom(input, unsignedNumber)
	return ok
}

// extractCustom matches `//<delim>\n<n>(<delim><n>)*` where <n> is given by
// number, and returns the captured delimiter and number text.
func extractCustom(input, number string) (customMatch, bool) {
	groups := customHeaderPattern.FindStringSubmatch(input)
	if groups == nil {
		return customMatch{}, false
	}
	m := customMatch{delimiter: groups[1], source: groups[2]}
	body, err := regexp.Compile(`^` + number + `(?:` + regexp.QuoteMeta(m.delimiter) + number + `)*$`)
	if err != nil {
		return customMatch{}, false
	}
	if !body.MatchString(m.source) {
		return customMatch{}, false
	}
	return m, true
}

// tokenize splits source on sep. Trailing empty segments are dropped; empty
// segments elsewhere are kept so parseTokens can reject them.
func tokenize(source string, sep *regexp.Regexp) []string {
	parts := sep.Split(source, -1)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

var (
	errEmptyToken   = errors.New("empty token")
	errTokenRange   = errors.New("token out of 32-bit range")
	errTokenSyntax  = errors.New("invalid integer literal")
	errNoTokens     = errors.New("no tokens")
	errShapeChanged = errors.New("input no longer matches its grammar")
)

// parseTokens converts every segment to an int32. On failure it returns the
// offending segment together with the reason.
func parseTokens(parts []string) ([]int32, string, error) {
	numbers := make([]int32, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, p, errEmptyToken
		}
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p, errTokenRange
			}
			return nil, p, errTokenSyntax
		}
		numbers = append(numbers, int32(n))
	}
	return numbers, "", nil
}
