package ndtm

import "testing"

func TestIsSymbol(t *testing.T) {
	cases := []struct {
		c    byte
		want bool
	}{
		{'0', true}, {'9', true},
		{'A', true}, {'Z', true},
		{'_', true},
		{'a', true}, {'z', true},
		{' ', false}, {'!', false}, {0, false},
	}
	for _, tc := range cases {
		if got := IsSymbol(tc.c); got != tc.want {
			t.Errorf("IsSymbol(%q) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestSymbolSlotDistinct(t *testing.T) {
	seen := make(map[int]byte)
	alphabet := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		slot := symbolSlot(c)
		if slot < 0 || slot >= alphabetSize {
			t.Fatalf("symbolSlot(%q) = %d out of range", c, slot)
		}
		if prev, ok := seen[slot]; ok {
			t.Fatalf("slot %d assigned to both %q and %q", slot, prev, c)
		}
		seen[slot] = c
	}
	if len(seen) != alphabetSize {
		t.Fatalf("expected %d distinct slots, got %d", alphabetSize, len(seen))
	}
}
