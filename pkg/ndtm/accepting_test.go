package ndtm

import "testing"

func TestAcceptingSetMembership(t *testing.T) {
	set := NewAcceptingSet()
	for _, s := range []int{42, 7, 100, 7} { // duplicate 7 is allowed
		set.Add(s)
	}

	t.Run("members found", func(t *testing.T) {
		for _, s := range []int{7, 42, 100} {
			if !set.Contains(s) {
				t.Errorf("Contains(%d) = false, want true", s)
			}
		}
	})

	t.Run("non-members absent", func(t *testing.T) {
		for _, s := range []int{0, 6, 8, 99, 101} {
			if set.Contains(s) {
				t.Errorf("Contains(%d) = true, want false", s)
			}
		}
	})

	t.Run("duplicates retained in Len", func(t *testing.T) {
		if set.Len() != 4 {
			t.Errorf("Len() = %d, want 4", set.Len())
		}
	})
}

func TestAcceptingSetEmpty(t *testing.T) {
	set := NewAcceptingSet()
	if set.Contains(0) {
		t.Error("empty set should contain nothing")
	}
}
