// Package parser reads a machine description from the fixed-order wire
// format (tr/acc/max/run sections) and builds the data structures the
// execution engine evaluates, plus the one-line verdict writer on the
// output side.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

// ParseError reports a malformed line encountered while reading a
// machine description, naming the section it occurred in and the
// 1-based line number within the overall stream.
type ParseError struct {
	Line    int
	Section string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: line %d (%s section): %s", e.Line, e.Section, e.Message)
}

// Machine bundles everything the Execution Engine needs, built once
// from a parsed description: the transition table, the accepting set,
// the per-input step budget, and the run-section input strings.
type Machine struct {
	Table      *ndtm.TransitionTable
	Accepting  *ndtm.AcceptingSet
	StepBudget uint64
	Inputs     []string
}

// moveLetters maps the wire-format move letters to ndtm.Move values.
var moveLetters = map[string]ndtm.Move{
	"L": ndtm.MoveLeft,
	"S": ndtm.MoveStay,
	"R": ndtm.MoveRight,
}

// lineReader advances a bufio.Scanner one line at a time, tracking the
// 1-based line number for error reporting.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next line with surrounding whitespace trimmed, and
// false once the stream is exhausted.
func (lr *lineReader) next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	lr.line++
	return strings.TrimSpace(lr.scanner.Text()), true
}

// expectHeader consumes the next non-blank line and requires it to
// equal name exactly.
func (lr *lineReader) expectHeader(name string) error {
	for {
		line, ok := lr.next()
		if !ok {
			return &ParseError{Line: lr.line + 1, Section: name, Message: "unexpected end of input, expected section header " + name}
		}
		if line == "" {
			continue
		}
		if line != name {
			return &ParseError{Line: lr.line, Section: name, Message: fmt.Sprintf("expected section header %q, got %q", name, line)}
		}
		return nil
	}
}

// Parse reads a complete machine description from r: the tr, acc, max,
// and run sections in that fixed order. It returns a *ParseError for
// any malformed field, out-of-alphabet symbol, or missing section; the
// engine itself never sees or handles these — they are reported by the
// caller (see internal/parser.Parse's caller in cmd/ndtmsim) before any
// input is evaluated.
func Parse(r io.Reader) (*Machine, error) {
	lr := newLineReader(r)
	m := &Machine{
		Table:     ndtm.NewTransitionTable(),
		Accepting: ndtm.NewAcceptingSet(),
	}

	if err := lr.expectHeader("tr"); err != nil {
		return nil, err
	}
	if err := parseTransitions(lr, m.Table); err != nil {
		return nil, err
	}

	if err := parseAccepting(lr, m.Accepting); err != nil {
		return nil, err
	}

	budget, err := parseBudget(lr)
	if err != nil {
		return nil, err
	}
	m.StepBudget = budget

	if err := lr.expectHeader("run"); err != nil {
		return nil, err
	}
	m.Inputs = parseInputs(lr)

	return m, nil
}

// parseTransitions consumes lines of the form "S r w m D" until it
// reaches the "acc" header, adding each to table.
func parseTransitions(lr *lineReader, table *ndtm.TransitionTable) error {
	for {
		line, ok := lr.next()
		if !ok {
			return &ParseError{Line: lr.line + 1, Section: "tr", Message: "unexpected end of input, expected section header acc"}
		}
		if line == "" {
			continue
		}
		if line == "acc" {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return &ParseError{Line: lr.line, Section: "tr", Message: fmt.Sprintf("expected 5 fields (S r w m D), got %d", len(fields))}
		}

		source, err := strconv.Atoi(fields[0])
		if err != nil {
			return &ParseError{Line: lr.line, Section: "tr", Message: "source state is not an integer: " + fields[0]}
		}
		if len(fields[1]) != 1 || len(fields[2]) != 1 {
			return &ParseError{Line: lr.line, Section: "tr", Message: "read/write symbols must be single characters"}
		}
		move, ok := moveLetters[fields[3]]
		if !ok {
			return &ParseError{Line: lr.line, Section: "tr", Message: "move must be one of L, S, R, got " + fields[3]}
		}
		dest, err := strconv.Atoi(fields[4])
		if err != nil {
			return &ParseError{Line: lr.line, Section: "tr", Message: "dest state is not an integer: " + fields[4]}
		}

		if err := table.Add(source, fields[1][0], fields[2][0], move, dest); err != nil {
			return &ParseError{Line: lr.line, Section: "tr", Message: err.Error()}
		}
	}
}

// parseAccepting consumes accepting-state integers until it reaches the
// "max" header.
func parseAccepting(lr *lineReader, accepting *ndtm.AcceptingSet) error {
	for {
		line, ok := lr.next()
		if !ok {
			return &ParseError{Line: lr.line + 1, Section: "acc", Message: "unexpected end of input, expected section header max"}
		}
		if line == "" {
			continue
		}
		if line == "max" {
			return nil
		}

		state, err := strconv.Atoi(line)
		if err != nil {
			return &ParseError{Line: lr.line, Section: "acc", Message: "accepting state is not an integer: " + line}
		}
		accepting.Add(state)
	}
}

// parseBudget consumes the single step-budget line.
func parseBudget(lr *lineReader) (uint64, error) {
	line, ok := lr.next()
	if !ok {
		return 0, &ParseError{Line: lr.line + 1, Section: "max", Message: "unexpected end of input, expected step budget"}
	}
	budget, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: lr.line, Section: "max", Message: "step budget is not a non-negative integer: " + line}
	}
	return budget, nil
}

// parseInputs collects every remaining whitespace-delimited token as a
// separate run input, mirroring the original reference implementation's
// token-at-a-time reads (inputs need not be strictly one per line).
func parseInputs(lr *lineReader) []string {
	var inputs []string
	for {
		line, ok := lr.next()
		if !ok {
			return inputs
		}
		if line == "" {
			continue
		}
		inputs = append(inputs, strings.Fields(line)...)
	}
}
