package ndtm

import "fmt"

// Configuration is one pending exploration-frontier node: a control
// state, head position, remaining step budget, and a shared handle to
// the tape this branch is executing against.
type Configuration struct {
	State          int
	Head           int
	StepsRemaining uint64
	Tape           *Tape
}

// ErrQueueOverflow is returned by Enqueue when the configuration queue is
// at capacity. This is a fatal, unrecoverable condition — it indicates
// an input whose fan-out exceeds what this design's fixed-capacity ring
// can support.
var ErrQueueOverflow = fmt.Errorf("ndtm: configuration queue overflow")

// ConfigurationQueue is a bounded circular buffer of Configurations.
// Capacity is fixed at construction; Enqueue past capacity fails rather
// than growing, on the assumption that branching factor times bound
// depth stays within that capacity for inputs the caller cares to run.
type ConfigurationQueue struct {
	buf        []Configuration
	head, tail int
	size       int
}

// NewConfigurationQueue returns an empty queue with the given capacity.
func NewConfigurationQueue(capacity int) *ConfigurationQueue {
	return &ConfigurationQueue{buf: make([]Configuration, capacity)}
}

// Len returns the number of configurations currently queued.
func (q *ConfigurationQueue) Len() int {
	return q.size
}

// Cap returns the queue's fixed capacity.
func (q *ConfigurationQueue) Cap() int {
	return len(q.buf)
}

// Empty reports whether the queue has no pending configurations.
func (q *ConfigurationQueue) Empty() bool {
	return q.size == 0
}

// Enqueue appends c at the tail. It returns ErrQueueOverflow if the
// queue is already at capacity.
func (q *ConfigurationQueue) Enqueue(c Configuration) error {
	if q.size == len(q.buf) {
		return ErrQueueOverflow
	}
	q.buf[q.tail] = c
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++
	return nil
}

// Dequeue removes and returns the configuration at the head. It panics
// if called on an empty queue — callers must check Empty first, exactly
// as the main expansion loop in Engine.Run does.
func (q *ConfigurationQueue) Dequeue() Configuration {
	if q.size == 0 {
		panic("ndtm: Dequeue called on an empty ConfigurationQueue")
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return c
}

// DrainReleasing removes every remaining configuration from the queue,
// releasing each one's tape reference. The engine calls it when it exits
// early (acceptance or queue overflow) to guarantee that no queued
// configuration's tape handle is left unreleased.
func (q *ConfigurationQueue) DrainReleasing() {
	for !q.Empty() {
		c := q.Dequeue()
		c.Tape.Release()
	}
}
