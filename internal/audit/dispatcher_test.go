package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_FlushesOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	id := uint(7)
	d.Dispatch(Event{Action: ActionBookingCreated, Entity: "booking", EntityID: &id})
	d.Dispatch(Event{Action: ActionBookingCancelled, Entity: "booking", EntityID: &id})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, ActionBookingCreated, sink.events[0].Action)
}

func TestDispatcher_IgnoresAfterClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: ActionScheduleClosed})
	assert.Empty(t, sink.events)
}

func TestDispatcher_SinkErrorsDoNotStopWorker(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: ActionScheduleClosed})
	d.Dispatch(Event{Action: ActionScheduleOpened})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionScheduleClosed}) })
}
