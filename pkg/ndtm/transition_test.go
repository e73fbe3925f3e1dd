package ndtm

import "testing"

func TestTransitionTableAddAndLookup(t *testing.T) {
	table := NewTransitionTable()

	if err := table.Add(0, 'a', 'b', MoveRight, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := table.Add(0, 'a', 'c', MoveRight, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := table.Lookup(0, 'a')
	if len(got) != 2 {
		t.Fatalf("Lookup returned %d transitions, want 2", len(got))
	}
	// Insertion order is preserved.
	if got[0].Write != 'b' || got[0].Dest != 1 {
		t.Errorf("first transition = %+v, want write=b dest=1", got[0])
	}
	if got[1].Write != 'c' || got[1].Dest != 2 {
		t.Errorf("second transition = %+v, want write=c dest=2", got[1])
	}
}

func TestTransitionTableLookupMissingKeyIsEmpty(t *testing.T) {
	table := NewTransitionTable()
	if got := table.Lookup(5, 'z'); len(got) != 0 {
		t.Errorf("Lookup on undefined key = %v, want empty", got)
	}
	if err := table.Add(0, 'a', 'a', MoveStay, 0); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := table.Lookup(0, 'b'); len(got) != 0 {
		t.Errorf("Lookup on undefined symbol = %v, want empty", got)
	}
}

func TestTransitionTableRejectsOutOfRangeStates(t *testing.T) {
	table := NewTransitionTable()
	if err := table.Add(-1, 'a', 'a', MoveStay, 0); err == nil {
		t.Error("Add with negative source should fail")
	}
	if err := table.Add(0, 'a', 'a', MoveStay, MaxStates); err == nil {
		t.Error("Add with out-of-range dest should fail")
	}
	if err := table.Add(0, '!', 'a', MoveStay, 0); err == nil {
		t.Error("Add with out-of-alphabet read symbol should fail")
	}
}
