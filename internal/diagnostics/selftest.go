package diagnostics

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

// Check is one independent, read-only self-test against a freshly
// constructed engine or tape.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of running one Check.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// RunAll submits every check to pool and waits for all of them to
// finish, returning one Result per check in the same order checks were
// given (independent of completion order).
func RunAll(ctx context.Context, pool *Pool, checks []Check) []Result {
	results := make([]Result, len(checks))
	var wg sync.WaitGroup

	for i, check := range checks {
		wg.Add(1)
		i, check := i, check
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = Result{Name: check.Name, Err: check.Run()}
		})
		if err != nil {
			results[i] = Result{Name: check.Name, Err: err}
			wg.Done()
		}
	}

	wg.Wait()
	return results
}

func mustAdd(table *ndtm.TransitionTable, source int, read, write byte, move ndtm.Move, dest int) {
	if err := table.Add(source, read, write, move, dest); err != nil {
		panic(err) // fixture construction; a bad fixture is a programming error, not a runtime one
	}
}

func expect(condition bool, format string, args ...any) error {
	if !condition {
		return fmt.Errorf(format, args...)
	}
	return nil
}

// DefaultChecks returns the fixed checklist `ndtmsim selftest` runs:
// tape read/write/copy-on-write behavior, and engine verdict behavior
// against small fixture machines.
func DefaultChecks() []Check {
	return []Check{
		{Name: "tape-read-past-high-water-is-blank", Run: checkTapeReadPastHighWaterIsBlank},
		{Name: "tape-write-then-read-roundtrips", Run: checkTapeWriteThenReadRoundtrips},
		{Name: "tape-no-op-write-shares-handle", Run: checkTapeNoOpWriteSharesHandle},
		{Name: "tape-shared-write-duplicates", Run: checkTapeSharedWriteDuplicates},
		{Name: "engine-verdict-is-one-of-three", Run: checkEngineVerdictIsOneOfThree},
		{Name: "engine-accepts-within-budget", Run: checkEngineAcceptsWithinBudget},
		{Name: "engine-verdict-is-deterministic", Run: checkEngineVerdictIsDeterministic},
		{Name: "engine-self-loop-does-not-falsely-accept", Run: checkEngineSelfLoopDoesNotFalselyAccept},
	}
}

func checkTapeReadPastHighWaterIsBlank() error {
	tape := ndtm.NewTape("ab")
	if err := expect(tape.Read(2) == ndtm.Blank, "tape.Read(2) = %q, want blank", tape.Read(2)); err != nil {
		return err
	}
	return expect(tape.Read(-1) == ndtm.Blank, "tape.Read(-1) = %q, want blank", tape.Read(-1))
}

func checkTapeWriteThenReadRoundtrips() error {
	tape := ndtm.NewTape("aaa")
	written := tape.Write(1, 'X')
	if err := expect(written.Read(1) == 'X', "written.Read(1) = %q, want X", written.Read(1)); err != nil {
		return err
	}
	return expect(written.Read(0) == 'a', "written.Read(0) = %q, want unchanged a", written.Read(0))
}

func checkTapeNoOpWriteSharesHandle() error {
	tape := ndtm.NewTape("abc")
	before := tape.RefCount()
	same := tape.Write(1, 'b')
	return expect(same == tape && same.RefCount() == before+1, "no-op write should share the tape and increment its reference count")
}

func checkTapeSharedWriteDuplicates() error {
	tape := ndtm.NewTape("aa")
	tape.Retain()
	dup := tape.Write(0, 'z')
	if err := expect(dup != tape, "write on a shared tape should return a distinct handle"); err != nil {
		return err
	}
	return expect(tape.Read(0) == 'a', "original tape should be unaffected by a sibling's write, got %q", tape.Read(0))
}

func checkEngineVerdictIsOneOfThree() error {
	table := ndtm.NewTransitionTable()
	mustAdd(table, 0, 'a', 'b', ndtm.MoveRight, 1)
	acc := ndtm.NewAcceptingSet()
	acc.Add(9)
	engine := ndtm.NewEngine(table, acc, 4)

	for _, input := range []string{"a", "b", "", "aaaa"} {
		v, err := engine.Run(input)
		if err != nil {
			return fmt.Errorf("Run(%q): %w", input, err)
		}
		if v != ndtm.Accept && v != ndtm.Reject && v != ndtm.Undetermined {
			return fmt.Errorf("Run(%q) = %v, want one of accept/reject/undetermined", input, v)
		}
	}
	return nil
}

func checkEngineAcceptsWithinBudget() error {
	table := ndtm.NewTransitionTable()
	mustAdd(table, 0, 'a', 'a', ndtm.MoveRight, 1)
	mustAdd(table, 1, 'a', 'a', ndtm.MoveRight, 2)
	acc := ndtm.NewAcceptingSet()
	acc.Add(2)

	engine := ndtm.NewEngine(table, acc, 2)
	v, err := engine.Run("aa")
	if err != nil {
		return err
	}
	return expect(v == ndtm.Accept, "budget sufficient for the shortest accepting path should accept, got %v", v)
}

func checkEngineVerdictIsDeterministic() error {
	table := ndtm.NewTransitionTable()
	mustAdd(table, 0, 'a', 'a', ndtm.MoveRight, 0)
	mustAdd(table, 0, 'a', 'a', ndtm.MoveStay, 1)
	mustAdd(table, 1, 'a', 'a', ndtm.MoveStay, 2)
	acc := ndtm.NewAcceptingSet()
	acc.Add(2)

	engine := ndtm.NewEngine(table, acc, 10)
	first, err := engine.Run("aaaa")
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		again, err := engine.Run("aaaa")
		if err != nil {
			return err
		}
		if again != first {
			return fmt.Errorf("repeated Run returned %v, want %v (first run's verdict)", again, first)
		}
	}
	return nil
}

func checkEngineSelfLoopDoesNotFalselyAccept() error {
	table := ndtm.NewTransitionTable()
	mustAdd(table, 0, 'a', 'a', ndtm.MoveStay, 0)
	acc := ndtm.NewAcceptingSet()
	acc.Add(1)

	engine := ndtm.NewEngine(table, acc, 3)
	v, err := engine.Run("a")
	if err != nil {
		return err
	}
	return expect(v == ndtm.Undetermined, "a stay-in-place self-loop should be pruned as undetermined, got %v", v)
}
