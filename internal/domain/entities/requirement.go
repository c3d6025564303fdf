package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op is the operator of a single requirement comparator.
type Op string

const (
	OpExact        Op = "="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
	OpTilde        Op = "~"
	OpCaret        Op = "^"
	OpWildcard     Op = "*"
)

// Comparator is one element of a requirement such as ">=1.2" or "~0.4.1-beta".
// Minor and Patch are nil when the comparator omits them.
type Comparator struct {
	Op    Op
	Major uint64
	Minor *uint64
	Patch *uint64
	Pre   string
}

// Requirement is a parsed version requirement: a comma separated list of
// comparators, in declaration order.
type Requirement struct {
	Raw         string
	Comparators []Comparator
}

// Baseline builds the version used as comparison baseline from the first
// comparator. Missing minor and patch default to zero and the pre-release tag
// is copied verbatim. Only the first comparator is ever consulted.
func (it Requirement) Baseline() (Version, error) {
	if len(it.Comparators) == 0 {
		return Version{}, fmt.Errorf("%w in %q", ErrNoComparator, it.Raw)
	}

	first := it.Comparators[0]
	var minor, patch uint64
	if first.Minor != nil {
		minor = *first.Minor
	}
	if first.Patch != nil {
		patch = *first.Patch
	}
	return NewVersion(first.Major, minor, patch, first.Pre), nil
}

// ParseRequirement parses a Cargo-style version requirement. A lone wildcard
// ("*", "x" or "X") is valid and has no comparators.
func ParseRequirement(raw string) (Requirement, error) {
	text := trimSpaces(raw)
	if text == "" {
		return Requirement{}, fmt.Errorf("%w: empty requirement", ErrInvalidRequirement)
	}

	if isWildcard(text[0]) {
		rest := trimSpaces(text[1:])
		switch {
		case rest == "":
			return Requirement{Raw: raw}, nil
		case rest[0] == ',':
			return Requirement{}, fmt.Errorf(
				"%w: %q: wildcard must be the only comparator", ErrInvalidRequirement, raw,
			)
		default:
			return Requirement{}, fmt.Errorf(
				"%w: %q: unexpected character after wildcard", ErrInvalidRequirement, raw,
			)
		}
	}

	var comparators []Comparator
	for {
		comparator, rest, err := parseComparator(text)
		if err != nil {
			return Requirement{}, fmt.Errorf("%w: %q: %v", ErrInvalidRequirement, raw, err)
		}
		comparators = append(comparators, comparator)

		rest = trimSpaces(rest)
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return Requirement{}, fmt.Errorf(
				"%w: %q: expected comma, found %q", ErrInvalidRequirement, raw, rest[0],
			)
		}
		text = trimSpaces(rest[1:])
	}

	return Requirement{Raw: raw, Comparators: comparators}, nil
}

// parseComparator parses one comparator at the start of text and returns the
// unconsumed remainder.
func parseComparator(text string) (Comparator, string, error) {
	op, rest, explicit := parseOp(text)
	if !explicit {
		op = OpCaret
	}
	rest = trimSpaces(rest)

	major, rest, err := parseNumeric(rest, "major")
	if err != nil {
		return Comparator{}, "", err
	}
	comparator := Comparator{Op: op, Major: major}

	hasWildcard := false
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		if rest != "" && isWildcard(rest[0]) {
			hasWildcard = true
			rest = rest[1:]
			if !explicit {
				comparator.Op = OpWildcard
			}
		} else {
			var minor uint64
			if minor, rest, err = parseNumeric(rest, "minor"); err != nil {
				return Comparator{}, "", err
			}
			comparator.Minor = &minor
		}
	}

	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		switch {
		case rest != "" && isWildcard(rest[0]):
			rest = rest[1:]
			if !explicit {
				comparator.Op = OpWildcard
			}
		case hasWildcard:
			return Comparator{}, "", errors.New("unexpected patch version after wildcard")
		default:
			var patch uint64
			if patch, rest, err = parseNumeric(rest, "patch"); err != nil {
				return Comparator{}, "", err
			}
			comparator.Patch = &patch
		}
	}

	if comparator.Patch != nil && strings.HasPrefix(rest, "-") {
		var pre string
		if pre, rest, err = parseIdentifiers(rest[1:], "pre-release", true); err != nil {
			return Comparator{}, "", err
		}
		comparator.Pre = pre
	}

	// build metadata is accepted and ignored
	if comparator.Patch != nil && strings.HasPrefix(rest, "+") {
		if _, rest, err = parseIdentifiers(rest[1:], "build metadata", false); err != nil {
			return Comparator{}, "", err
		}
	}

	return comparator, rest, nil
}

func parseOp(text string) (Op, string, bool) {
	for _, op := range []Op{OpGreaterEqual, OpLessEqual, OpExact, OpGreater, OpLess, OpTilde, OpCaret} {
		if strings.HasPrefix(text, string(op)) {
			return op, text[len(op):], true
		}
	}
	return "", text, false
}

func parseNumeric(text, position string) (uint64, string, error) {
	end := 0
	for end < len(text) && isDigit(text[end]) {
		end++
	}
	if end == 0 {
		if text == "" {
			return 0, "", fmt.Errorf("unexpected end of input while parsing %s version number", position)
		}
		return 0, "", fmt.Errorf("unexpected character %q while parsing %s version number", text[0], position)
	}

	digits := text[:end]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, "", fmt.Errorf("invalid leading zero in %s version number", position)
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("value of %s version number exceeds uint64", position)
	}
	return value, text[end:], nil
}

// parseIdentifiers consumes a dot separated list of [0-9A-Za-z-] identifiers.
func parseIdentifiers(text, position string, rejectLeadingZero bool) (string, string, error) {
	end := 0
	for end < len(text) && isIdentifierChar(text[end]) {
		end++
	}

	value := text[:end]
	if value == "" {
		return "", "", fmt.Errorf("empty identifier segment in %s", position)
	}

	for _, segment := range strings.Split(value, ".") {
		if segment == "" {
			return "", "", fmt.Errorf("empty identifier segment in %s", position)
		}
		if rejectLeadingZero && len(segment) > 1 && segment[0] == '0' && isNumeric(segment) {
			return "", "", fmt.Errorf("invalid leading zero in %s identifier", position)
		}
	}

	return value, text[end:], nil
}

func trimSpaces(s string) string {
	return strings.TrimLeft(s, " \t")
}

func isWildcard(c byte) bool {
	return c == '*' || c == 'x' || c == 'X'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierChar(c byte) bool {
	return isDigit(c) || c == '.' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumeric(s string) bool {
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
