// Package ndtm implements the evaluator for a nondeterministic Turing
// machine: a transition table, an accepting set, a copy-on-write tape,
// and a breadth-first execution engine that produces a three-valued
// verdict (accept, reject, undetermined) under a global step budget.
package ndtm

import "fmt"

// Blank is the implicit content of any tape cell never written.
const Blank byte = '_'

// alphabetSize is the cardinality of the fixed symbol domain: digits,
// uppercase letters, underscore, lowercase letters.
const alphabetSize = 63

// MaxStates is the upper bound on state identifiers a TransitionTable
// will accept.
const MaxStates = 10000

// symbolSlot maps a symbol byte to its dense index in the 63-symbol
// alphabet, or -1 if the byte is outside the alphabet. The ordering
// (digits, then uppercase, then underscore, then lowercase) follows the
// original reference implementation's hash-table index function so that
// machine descriptions sharing its symbol layout behave identically.
func symbolSlot(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c == Blank:
		return 36
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 37
	default:
		return -1
	}
}

// IsSymbol reports whether c belongs to the 63-symbol alphabet.
func IsSymbol(c byte) bool {
	return symbolSlot(c) >= 0
}

// validateSymbol returns an error naming the offending byte if c is not
// a member of the alphabet.
func validateSymbol(c byte) error {
	if !IsSymbol(c) {
		return fmt.Errorf("ndtm: symbol %q is outside the 63-character alphabet", c)
	}
	return nil
}
