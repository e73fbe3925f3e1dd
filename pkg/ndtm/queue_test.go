package ndtm

import "testing"

func TestConfigurationQueueFIFO(t *testing.T) {
	q := NewConfigurationQueue(3)
	if !q.Empty() {
		t.Fatal("new queue should be empty")
	}

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(Configuration{State: i}); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	if err := q.Enqueue(Configuration{State: 99}); err != ErrQueueOverflow {
		t.Fatalf("Enqueue past capacity = %v, want ErrQueueOverflow", err)
	}

	for i := 0; i < 3; i++ {
		c := q.Dequeue()
		if c.State != i {
			t.Errorf("Dequeue() = state %d, want %d (FIFO order)", c.State, i)
		}
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after draining")
	}
}

func TestConfigurationQueueWrapsAroundRing(t *testing.T) {
	q := NewConfigurationQueue(2)
	q.Enqueue(Configuration{State: 1})
	q.Enqueue(Configuration{State: 2})
	q.Dequeue()
	q.Enqueue(Configuration{State: 3})

	if got := q.Dequeue().State; got != 2 {
		t.Errorf("got state %d, want 2", got)
	}
	if got := q.Dequeue().State; got != 3 {
		t.Errorf("got state %d, want 3", got)
	}
}

func TestConfigurationQueueDrainReleasing(t *testing.T) {
	q := NewConfigurationQueue(4)
	tapes := []*Tape{NewTape("a"), NewTape("b")}
	for _, tp := range tapes {
		q.Enqueue(Configuration{Tape: tp})
	}

	q.DrainReleasing()

	if !q.Empty() {
		t.Fatal("queue should be empty after DrainReleasing")
	}
	for i, tp := range tapes {
		if tp.RefCount() != 0 {
			t.Errorf("tape %d refcount = %d, want 0", i, tp.RefCount())
		}
	}
}
