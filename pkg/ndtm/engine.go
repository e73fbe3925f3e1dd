package ndtm

import "fmt"

// Verdict is the three-valued outcome of evaluating one input string.
type Verdict int

const (
	// Reject means every branch exhausted its transition list before
	// acceptance, and no branch was cut off or benign-looped.
	Reject Verdict = iota
	// Accept means some branch reached an accepting state within budget.
	Accept
	// Undetermined means no branch accepted, and at least one branch was
	// cut off by the step budget or pruned as a benign self-loop.
	Undetermined
)

// String renders a Verdict using the wire-format characters 1/0/U.
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "1"
	case Reject:
		return "0"
	case Undetermined:
		return "U"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Observer receives optional instrumentation callbacks from Run. All
// methods are called synchronously on the engine's own goroutine; a nil
// Observer (the default) means Run makes no such calls.
type Observer interface {
	ConfigurationExpanded()
	TapeSharedNoOp()
	TapeMutatedInPlace()
	TapeDuplicated()
	Verdict(kind string)
	ObserveQueueDepth(depth int)
}

// Engine evaluates a fixed Transition Table and Accepting Set against a
// stream of input strings, one at a time, to completion: single-threaded
// and synchronous, with no suspension points.
type Engine struct {
	table         *TransitionTable
	accepting     *AcceptingSet
	stepBudget    uint64
	queueCapacity int
	observer      Observer
}

// DefaultQueueCapacity mirrors the original reference implementation's
// fixed ring size; callers with wider branching inputs should raise it
// via EngineOption.
const DefaultQueueCapacity = 256

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithQueueCapacity overrides the configuration queue's fixed capacity.
func WithQueueCapacity(capacity int) EngineOption {
	return func(e *Engine) { e.queueCapacity = capacity }
}

// WithObserver attaches an Observer that receives instrumentation
// callbacks during Run. Passing nil disables instrumentation.
func WithObserver(observer Observer) EngineOption {
	return func(e *Engine) { e.observer = observer }
}

// NewEngine builds an engine over a fixed table, accepting set, and
// per-input step budget. The table and accepting set are built once by
// the caller, built once and never mutated thereafter, and shared
// read-only across every input this engine evaluates.
func NewEngine(table *TransitionTable, accepting *AcceptingSet, stepBudget uint64, opts ...EngineOption) *Engine {
	e := &Engine{
		table:         table,
		accepting:     accepting,
		stepBudget:    stepBudget,
		queueCapacity: DefaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates input to a Verdict via the main breadth-first
// expansion loop.
//
// Initialization seeds a tape from input (right half high-water mark
// equal to len(input), left half empty) and enqueues the initial
// configuration (state 0, head 0, the engine's full step budget).
//
// The loop dequeues configurations breadth-first, consults the
// Transition Table for the symbol under the head, and for each
// transition: short-circuits to Accept if the destination is accepting;
// prunes provably-benign same-state self-loops as Undetermined without
// enqueueing a successor; otherwise derives a successor tape (sharing
// on a no-op write, copy-on-write otherwise) and enqueues the successor
// if the step budget allows, or marks the branch Undetermined if cut
// off. Run returns ErrQueueOverflow if the fixed-capacity queue fills.
func (e *Engine) Run(input string) (Verdict, error) {
	queue := NewConfigurationQueue(e.queueCapacity)
	tape := NewTape(input)

	if err := queue.Enqueue(Configuration{State: 0, Head: 0, StepsRemaining: e.stepBudget, Tape: tape}); err != nil {
		tape.Release()
		return Reject, err
	}

	undetermined := false

	for !queue.Empty() {
		c := queue.Dequeue()
		if e.observer != nil {
			e.observer.ConfigurationExpanded()
			e.observer.ObserveQueueDepth(queue.Len())
		}
		r := c.Tape.Read(c.Head)
		transitions := e.table.Lookup(c.State, r)

		for _, t := range transitions {
			if e.accepting.Contains(t.Dest) {
				c.Tape.Release()
				queue.DrainReleasing()
				e.observeVerdict(Accept)
				return Accept, nil
			}

			if t.Dest == c.State && (t.Move == MoveStay || (r == Blank && c.Tape.IsTriviallyLooped(c.Head, t.Move))) {
				undetermined = true
				continue
			}

			// An earlier sibling may have overwritten this cell in place; the
			// tape is shared as-is only while the cell still holds r, and
			// otherwise Write restores r on a duplicate.
			var successor *Tape
			if t.Write == r && c.Tape.Read(c.Head) == r {
				successor = c.Tape
				successor.Retain()
				if e.observer != nil {
					e.observer.TapeSharedNoOp()
				}
			} else {
				before := c.Tape
				successor = c.Tape.Write(c.Head, t.Write)
				if e.observer != nil {
					if successor == before {
						e.observer.TapeMutatedInPlace()
					} else {
						e.observer.TapeDuplicated()
					}
				}
			}

			if c.StepsRemaining > 1 {
				next := Configuration{
					State:          t.Dest,
					Head:           c.Head + int(t.Move),
					StepsRemaining: c.StepsRemaining - 1,
					Tape:           successor,
				}
				if err := queue.Enqueue(next); err != nil {
					successor.Release()
					c.Tape.Release()
					queue.DrainReleasing()
					return Reject, err
				}
			} else {
				successor.Release()
				undetermined = true
			}
		}

		c.Tape.Release()
	}

	if undetermined {
		e.observeVerdict(Undetermined)
		return Undetermined, nil
	}
	e.observeVerdict(Reject)
	return Reject, nil
}

func (e *Engine) observeVerdict(v Verdict) {
	if e.observer != nil {
		e.observer.Verdict(v.String())
	}
}
