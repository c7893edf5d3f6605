// @focus: #event { queue }
package events

import "github.com/ajikmega/GAME-SURF/constants"

// EventQueue is a fixed-size ring buffer of game events
// Owned by the loop goroutine: systems push during a tick, the router drains after it
// Overflow: oldest unread events are overwritten and counted
type EventQueue struct {
	ring    [constants.EventQueueSize]GameEvent
	head    uint64 // next slot to read
	tail    uint64 // next slot to write
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest unread one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.ring[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head++
		eq.dropped++
	}
}

// Consume returns pending events oldest first and empties the queue
// Events pushed while the caller handles the batch land in the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	batch := make([]GameEvent, n)
	for i := range batch {
		slot := (eq.head + uint64(i)) & constants.EventBufferMask
		batch[i] = eq.ring[slot]
		eq.ring[slot] = GameEvent{}
	}
	eq.head = eq.tail
	return batch
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
