package ndtm

import "fmt"

// Move is a tape-head displacement: left, stay, or right.
type Move int

const (
	MoveLeft  Move = -1
	MoveStay  Move = 0
	MoveRight Move = 1
)

// String renders a Move using the wire-format letters L/S/R.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "L"
	case MoveStay:
		return "S"
	case MoveRight:
		return "R"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Transition is a single (write, move, dest) outcome for a fixed
// (state, read) key. The Read symbol is not stored on the Transition
// itself; it is implied by the TransitionTable slot it lives in.
type Transition struct {
	Write byte
	Move  Move
	Dest  int
}

// TransitionTable maps (state, read-symbol) to an ordered list of
// Transitions. Storage is sparse across both states and symbols: a
// per-state slot array is allocated lazily, the first time a transition
// is added for that state, mirroring the lazy row allocation of the
// original reference implementation's adjacency list.
type TransitionTable struct {
	rows map[int][][]Transition // state -> (63-slot sparse row, indexed by symbolSlot)
}

// NewTransitionTable returns an empty table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{rows: make(map[int][][]Transition)}
}

// Add appends a transition under key (source, read), preserving
// insertion order within the key. Add returns an error if source,
// dest, or read fall outside their respective valid domains.
func (t *TransitionTable) Add(source int, read, write byte, move Move, dest int) error {
	if source < 0 || source >= MaxStates {
		return fmt.Errorf("ndtm: source state %d out of range [0, %d)", source, MaxStates)
	}
	if dest < 0 || dest >= MaxStates {
		return fmt.Errorf("ndtm: dest state %d out of range [0, %d)", dest, MaxStates)
	}
	if err := validateSymbol(read); err != nil {
		return err
	}
	if err := validateSymbol(write); err != nil {
		return err
	}

	row := t.rows[source]
	if row == nil {
		row = make([][]Transition, alphabetSize)
		t.rows[source] = row
	}
	slot := symbolSlot(read)
	row[slot] = append(row[slot], Transition{Write: write, Move: move, Dest: dest})
	return nil
}

// Lookup returns the (possibly empty) transition list for (state, read).
// A missing state or read slot returns a nil slice; this is not an
// error: undefined transitions are a routine state, not a failure.
func (t *TransitionTable) Lookup(state int, read byte) []Transition {
	row, ok := t.rows[state]
	if !ok {
		return nil
	}
	slot := symbolSlot(read)
	if slot < 0 {
		return nil
	}
	return row[slot]
}
